package model

// Role is the access level carried in a session token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is the acting user resolved from a session token.
type User struct {
	ID    string
	Email string
	Role  Role
}

// IsAdmin reports whether the user may perform back-office operations.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
