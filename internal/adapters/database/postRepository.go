package database

import (
	"context"

	"inkwell/internal/core/follower"
	"inkwell/internal/core/post"
	postPort "inkwell/internal/ports/post"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase gorm implementation of PostRepository
type PostRepositoryDatabase struct {
	db *gorm.DB
}

// NewPostRepositoryDatabase constructor
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, post *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(post).Error; err != nil {
		return nil, translate(err)
	}
	return post, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint64) (*post.Post, error) {
	var p post.Post
	if err := repo.db.WithContext(ctx).Preload("User").Preload("Group").First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	err := repo.db.WithContext(ctx).
		Model(p).
		Omit(clause.Associations).
		Select("Text", "GroupID", "Image", "UpdatedAt").
		Updates(p).Error
	return translate(err)
}

func (repo *PostRepositoryDatabase) List(ctx context.Context, filter postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	err := repo.filtered(ctx, filter).
		Preload("User").
		Preload("Group").
		Order("posts.pub_date DESC").
		Order("posts.id DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, filter postPort.Filter) (int64, error) {
	var count int64
	if err := repo.filtered(ctx, filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *PostRepositoryDatabase) filtered(ctx context.Context, filter postPort.Filter) *gorm.DB {
	q := repo.db.WithContext(ctx).Model(&post.Post{})
	switch {
	case filter.GroupID != nil:
		q = q.Where("posts.group_id = ?", *filter.GroupID)
	case filter.AuthorID != nil:
		q = q.Where("posts.user_id = ?", *filter.AuthorID)
	case filter.FollowedBy != nil:
		followed := repo.db.Model(&follower.Follower{}).
			Select("user_id").
			Where("follower_id = ?", *filter.FollowedBy)
		q = q.Where("posts.user_id IN (?)", followed)
	}
	return q
}
