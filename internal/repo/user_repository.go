package repo

import (
	"errors"

	"github.com/rogerio-castellano/ink-to-doc/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for credential-store operations.
type UserRepository interface {
	Create(u models.User) (models.User, error)
	GetByEmail(email string) (models.User, error)
	GetByID(id string) (models.User, error)
	Update(u models.User) (models.User, error)
	Delete(id string) error
}
