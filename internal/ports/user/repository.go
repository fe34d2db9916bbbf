package user

import (
	"context"

	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
)

// UserRepository storage port for users
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// DTOs for the use cases
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Family   string `json:"family"`
}

func NewUserDTO(u *user.User) *UserDTO {
	if u == nil || u.Username == "" {
		return nil
	}
	return &UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Family:   u.Family,
	}
}
