package database

import (
	"context"

	"inkwell/internal/core/apperr"
	"inkwell/internal/core/follower"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowerRepositoryDatabase gorm implementation of FollowerRepository
type FollowerRepositoryDatabase struct {
	db *gorm.DB
}

// NewFollowerRepositoryDatabase constructor
func NewFollowerRepositoryDatabase(db *gorm.DB) *FollowerRepositoryDatabase {
	return &FollowerRepositoryDatabase{db: db}
}

// FollowUser relies on uniq_follower_user: a conflicting insert affects no rows
func (repo *FollowerRepositoryDatabase) FollowUser(ctx context.Context, f *follower.Follower) (bool, error) {
	res := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(f)
	if res.Error != nil {
		return false, translate(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (repo *FollowerRepositoryDatabase) UnfollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error {
	res := repo.db.WithContext(ctx).
		Where("follower_id = ? AND user_id = ?", followerID, followeeID).
		Delete(&follower.Follower{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (repo *FollowerRepositoryDatabase) GetFollowersByUserID(ctx context.Context, userID uuid.UUID) ([]*follower.Follower, error) {
	var followers []*follower.Follower
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Follower").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&followers).Error
	if err != nil {
		return nil, err
	}
	return followers, nil
}

func (repo *FollowerRepositoryDatabase) GetFollowingByUserID(ctx context.Context, followerID uuid.UUID) ([]*follower.Follower, error) {
	var following []*follower.Follower
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Follower").
		Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&following).Error
	if err != nil {
		return nil, err
	}
	return following, nil
}

func (repo *FollowerRepositoryDatabase) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&follower.Follower{}).Where("follower_id = ? AND user_id = ?", followerID, followeeID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
