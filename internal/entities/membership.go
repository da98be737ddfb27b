// Package entities contains core business entities.
package entities

// Membership grants a user an access level within a group.
type Membership struct {
	GroupID     int
	UserID      int
	Username    string
	AccessLevel AccessLevel
}
