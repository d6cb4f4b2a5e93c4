package authorization

import "fmt"

// Role is the closed set of account roles. The string values are stored in the
// database and guarded there by a CHECK constraint.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "pracownik"
	RoleClient   Role = "klient"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee || r == RoleClient
}

// ParseRole validates s against the role enumeration. An invalid value is an
// error rather than a silent fallback so that a bad role never reaches storage.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %q", s)
	}
	return role, nil
}

func AllRoles() []Role {
	return []Role{RoleAdmin, RoleEmployee, RoleClient}
}
