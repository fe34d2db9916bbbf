package database

import (
	"errors"

	"inkwell/internal/core/apperr"
	"inkwell/internal/core/comment"
	"inkwell/internal/core/follower"
	"inkwell/internal/core/group"
	"inkwell/internal/core/post"
	"inkwell/internal/core/user"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&group.Group{},
		&post.Post{},
		&comment.Comment{},
		&follower.Follower{},
	)
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrDuplicate
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		// the referenced user, post or group is gone
		return apperr.ErrNotFound
	}
	return err
}
