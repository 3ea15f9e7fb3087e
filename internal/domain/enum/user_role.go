package enum

// UserRole represents a user's role in the system
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// Valid reports whether the role is a known value
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

func (r UserRole) String() string {
	return string(r)
}
