// Package entities contains core business entities.
package entities

import "fmt"

// AccessLevel is GitLab's integer-coded permission tier.
type AccessLevel int

// GitLab access level values.
const (
	NoAccess         AccessLevel = 0
	GuestAccess      AccessLevel = 10
	ReporterAccess   AccessLevel = 20
	DeveloperAccess  AccessLevel = 30
	MaintainerAccess AccessLevel = 40
	OwnerAccess      AccessLevel = 50
)

var accessLevelNames = map[AccessLevel]string{
	NoAccess:         "None",
	GuestAccess:      "Guest",
	ReporterAccess:   "Reporter",
	DeveloperAccess:  "Developer",
	MaintainerAccess: "Maintainer",
	OwnerAccess:      "Owner",
}

// Valid reports whether the level belongs to the closed GitLab set.
func (l AccessLevel) Valid() bool {
	_, ok := accessLevelNames[l]
	return ok
}

func (l AccessLevel) String() string {
	if name, ok := accessLevelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("AccessLevel(%d)", int(l))
}
