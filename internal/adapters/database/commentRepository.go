package database

import (
	"context"

	"inkwell/internal/core/comment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepositoryDatabase gorm implementation of CommentRepository
type CommentRepositoryDatabase struct {
	db *gorm.DB
}

// NewCommentRepositoryDatabase constructor
func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (repo *CommentRepositoryDatabase) ListByPost(ctx context.Context, postID uint64) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	err := repo.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("pub_date DESC").
		Order("id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
