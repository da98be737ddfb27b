// Package entities contains core business entities.
package entities

// User is a GitLab user resolved from a configured identifier.
type User struct {
	ID       int
	Username string
	Name     string
}
