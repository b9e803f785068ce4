package authorization

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	// RoleAdmin is never assigned at registration; admin accounts are
	// provisioned out-of-band for complaint moderation.
	RoleAdmin UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsStudent() bool {
	return r == RoleStudent
}

func (r UserRole) IsFaculty() bool {
	return r == RoleFaculty
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleStudent || r == RoleFaculty || r == RoleAdmin
}

// IsRegisterable reports whether the role may be chosen at registration.
func (r UserRole) IsRegisterable() bool {
	return r == RoleStudent || r == RoleFaculty
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	if role.IsValid() {
		return role, true
	}
	return "", false
}
