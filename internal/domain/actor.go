package domain

// Role enumerates caller roles.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleSupport  Role = "support"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleSupport, RoleAdmin:
		return true
	}
	return false
}

// Staff reports whether r may work requests (support or admin).
func (r Role) Staff() bool {
	return r == RoleSupport || r == RoleAdmin
}

// Actor is the user invoking an operation.
type Actor struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}
