package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin        = "admin"
	RoleModuleLeader = "module_leader"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidEmailDomain = errors.New("email must belong to the institutional domain")
	ErrUserExists         = errors.New("user already exists")

	// ErrUserNotFound is a repository-level sentinel. It never reaches the
	// HTTP surface for login: the auth service collapses it into
	// ErrInvalidCredentials so failures cannot be told apart.
	ErrUserNotFound = errors.New("user not found")
)

// User models a registered account: an administrator or a module/program leader.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ValidRole reports whether role is one of the two fixed roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleModuleLeader
}
