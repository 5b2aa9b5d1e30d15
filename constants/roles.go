package constants

import "fmt"

// Role is the closed set of positions a user can hold. Role strings
// arrive from clients (login claims, user creation, list filters) and
// must pass through ParseRole before they reach storage or policy.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

var AllRoles = []Role{RoleAdmin, RoleManager, RoleEmployee}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) String() string {
	return string(r)
}
