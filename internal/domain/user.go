package domain

// UserRole represents the role of an authenticated user
type UserRole string

const (
	RolePlayer UserRole = "player"
	RoleAdmin  UserRole = "admin"
)

// IsValid returns true if the role is one of the known roles
func (r UserRole) IsValid() bool {
	return r == RolePlayer || r == RoleAdmin
}

// Actor аутентифицированный пользователь, выполняющий операцию
// Идентификация выполняется внешним шлюзом, сервису передаются только
// id пользователя и его роль
type Actor struct {
	UserID string
	Role   UserRole
}

// IsAdmin returns true if the actor has the admin role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
