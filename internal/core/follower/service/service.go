package followerapp

import (
	"context"
	"fmt"

	followerEntity "inkwell/internal/core/follower"
	"inkwell/internal/metrics"
	followerPort "inkwell/internal/ports/follower"
	userPort "inkwell/internal/ports/user"

	"github.com/gofrs/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// FollowerService the follow registry. Follow is idempotent, unfollow must hit an edge.
type FollowerService struct {
	FollowerRepository followerPort.FollowerRepository
	UserRepository     userPort.UserRepository
	logger             *zap.Logger
}

func NewFollowerService(repo followerPort.FollowerRepository, users userPort.UserRepository, logger *zap.Logger) *FollowerService {
	return &FollowerService{
		FollowerRepository: repo,
		UserRepository:     users,
		logger:             logger,
	}
}

// FollowUser makes followerID follow the user called username.
// Following yourself or someone already followed is a NoOp, never an error.
func (s *FollowerService) FollowUser(ctx context.Context, followerID, username string) (followerEntity.Outcome, error) {
	fid, err := uuid.FromString(followerID)
	if err != nil {
		return followerEntity.NoOp, fmt.Errorf("invalid follower id: %w", err)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return followerEntity.NoOp, fmt.Errorf("user %q: %w", username, err)
	}

	outcome := followerEntity.NoOp
	if author.ID == fid {
		s.logger.Debug("ignoring self follow", zap.String("userID", followerID))
	} else {
		created, err := s.FollowerRepository.FollowUser(ctx, &followerEntity.Follower{
			UserID:     author.ID,
			FollowerID: fid,
		})
		if err != nil {
			return followerEntity.NoOp, fmt.Errorf("follow %q: %w", username, err)
		}
		if created {
			outcome = followerEntity.Created
		}
	}

	metrics.Follows.WithLabelValues(outcome.String()).Inc()
	s.logger.Info("follow",
		zap.String("followerID", followerID),
		zap.String("authorID", author.ID.String()),
		zap.Stringer("outcome", outcome),
	)
	return outcome, nil
}

// UnfollowUser removes the edge; apperr.ErrNotFound when the user or the edge is missing
func (s *FollowerService) UnfollowUser(ctx context.Context, followerID, username string) error {
	fid, err := uuid.FromString(followerID)
	if err != nil {
		return fmt.Errorf("invalid follower id: %w", err)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("user %q: %w", username, err)
	}
	if err := s.FollowerRepository.UnfollowUser(ctx, fid, author.ID); err != nil {
		return fmt.Errorf("unfollow %q: %w", username, err)
	}

	s.logger.Info("unfollow", zap.String("followerID", followerID), zap.String("authorID", author.ID.String()))
	return nil
}

// GetFollowers who follows username
func (s *FollowerService) GetFollowers(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return lo.Map(followers, toDTO), nil
}

// GetFollowing whom username follows
func (s *FollowerService) GetFollowing(ctx context.Context, username string) ([]*followerPort.FollowerDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", username, err)
	}
	following, err := s.FollowerRepository.GetFollowingByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return lo.Map(following, toDTO), nil
}

// IsFollowing whether followerID receives the posts of username
func (s *FollowerService) IsFollowing(ctx context.Context, followerID, username string) (bool, error) {
	fid, err := uuid.FromString(followerID)
	if err != nil {
		return false, fmt.Errorf("invalid follower id: %w", err)
	}
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return false, fmt.Errorf("user %q: %w", username, err)
	}
	return s.FollowerRepository.IsFollowing(ctx, fid, author.ID)
}

func toDTO(f *followerEntity.Follower, _ int) *followerPort.FollowerDTO {
	return &followerPort.FollowerDTO{
		ID:               f.ID.String(),
		UserID:           f.UserID.String(),
		Username:         f.User.Username,
		FollowerID:       f.FollowerID.String(),
		FollowerUsername: f.Follower.Username,
	}
}
