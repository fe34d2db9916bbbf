package database

import (
	"context"

	"inkwell/internal/core/user"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// UserRepositoryDatabase gorm implementation of UserRepository
type UserRepositoryDatabase struct {
	db *gorm.DB
}

// NewUserRepositoryDatabase constructor
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{db: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, user *user.User) (*user.User, error) {
	if err := repo.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (repo *UserRepositoryDatabase) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}
