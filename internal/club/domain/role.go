package domain

// Role is a club membership role. Administrators are never invited through
// the invitation flow; they are created at bootstrap.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleAthlete   Role = "athlete"
	RoleSupporter Role = "supporter"
)

// Invitable reports whether the role may be granted via an invitation.
func (r Role) Invitable() bool {
	return r == RoleAthlete || r == RoleSupporter
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAthlete, RoleSupporter:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
