package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

// User is a logged-in operator.
type User struct {
	ID       string
	Username string
	Role     Role
}

// Credential is an entry in the fixed login list.
type Credential struct {
	ID       string
	Username string
	Password string
	Role     Role
}
