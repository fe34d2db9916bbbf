package follower

import (
	"context"

	"inkwell/internal/core/follower"

	"github.com/gofrs/uuid"
)

// FollowerRepository storage port for follow edges
type FollowerRepository interface {
	// FollowUser inserts the edge unless it already exists; created is false for an existing edge
	FollowUser(ctx context.Context, follower *follower.Follower) (created bool, err error)
	// UnfollowUser removes the edge or returns apperr.ErrNotFound
	UnfollowUser(ctx context.Context, followerID, followeeID uuid.UUID) error
	GetFollowersByUserID(ctx context.Context, userID uuid.UUID) ([]*follower.Follower, error)
	GetFollowingByUserID(ctx context.Context, followerID uuid.UUID) ([]*follower.Follower, error)
	IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}

// DTOs for the use cases
type FollowerDTO struct {
	ID               string `json:"id"`
	UserID           string `json:"userId"`
	Username         string `json:"username"`
	FollowerID       string `json:"followerId"`
	FollowerUsername string `json:"followerUsername"`
}

type FollowResultDTO struct {
	Author  string `json:"author"`
	Created bool   `json:"created"`
}

type FollowStateDTO struct {
	Author    string `json:"author"`
	Following bool   `json:"following"`
}
