package user

type Role string

const (
	RoleGuest   Role = "guest"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleGuest, RoleManager, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageReservations reports whether the role may act on reservations it
// does not own (listing all of them, rejecting on behalf of the property).
func (r Role) CanManageReservations() bool {
	return r == RoleManager || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
