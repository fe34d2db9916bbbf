package database

import (
	"context"

	"inkwell/internal/core/apperr"
	"inkwell/internal/core/group"
	"inkwell/internal/core/post"

	"gorm.io/gorm"
)

// GroupRepositoryDatabase gorm implementation of GroupRepository
type GroupRepositoryDatabase struct {
	db *gorm.DB
}

// NewGroupRepositoryDatabase constructor
func NewGroupRepositoryDatabase(db *gorm.DB) *GroupRepositoryDatabase {
	return &GroupRepositoryDatabase{db: db}
}

func (repo *GroupRepositoryDatabase) Create(ctx context.Context, g *group.Group) (*group.Group, error) {
	if err := repo.db.WithContext(ctx).Create(g).Error; err != nil {
		return nil, translate(err)
	}
	return g, nil
}

func (repo *GroupRepositoryDatabase) FindBySlug(ctx context.Context, slug string) (*group.Group, error) {
	var g group.Group
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&g).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) FindByID(ctx context.Context, id uint) (*group.Group, error) {
	var g group.Group
	if err := repo.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, translate(err)
	}
	return &g, nil
}

func (repo *GroupRepositoryDatabase) List(ctx context.Context) ([]*group.Group, error) {
	var groups []*group.Group
	if err := repo.db.WithContext(ctx).Order("title DESC").Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

// Delete posts keep living without a group
func (repo *GroupRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&post.Post{}).Where("group_id = ?", id).Update("group_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&group.Group{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}
