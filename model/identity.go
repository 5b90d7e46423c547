// model/identity.go
package model

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Identity is the verified caller handed in by token verification.
type Identity struct {
	SubjectID string `json:"sub"`
	Role      string `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
