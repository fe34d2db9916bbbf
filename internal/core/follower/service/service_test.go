package followerapp_test

import (
	"context"
	"testing"

	"inkwell/internal/adapters/database"
	"inkwell/internal/core/apperr"
	"inkwell/internal/core/follower"
	followerapp "inkwell/internal/core/follower/service"
	"inkwell/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newService(t *testing.T) (*followerapp.FollowerService, *gorm.DB) {
	t.Helper()
	db := testutil.NewDB(t)
	svc := followerapp.NewFollowerService(
		database.NewFollowerRepositoryDatabase(db),
		database.NewUserRepositoryDatabase(db),
		zap.NewNop(),
	)
	return svc, db
}

func edgeCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&follower.Follower{}).Count(&n).Error)
	return n
}

func TestFollowSelfIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	a := testutil.CreateUser(t, db, "alice")

	for i := 0; i < 2; i++ {
		outcome, err := svc.FollowUser(ctx, a.ID.String(), "alice")
		require.NoError(t, err)
		assert.Equal(t, follower.NoOp, outcome)
	}
	assert.Zero(t, edgeCount(t, db))
}

func TestFollowTwiceLeavesOneEdge(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	a := testutil.CreateUser(t, db, "alice")
	testutil.CreateUser(t, db, "bob")

	outcome, err := svc.FollowUser(ctx, a.ID.String(), "bob")
	require.NoError(t, err)
	assert.Equal(t, follower.Created, outcome)

	outcome, err = svc.FollowUser(ctx, a.ID.String(), "bob")
	require.NoError(t, err)
	assert.Equal(t, follower.NoOp, outcome)

	assert.EqualValues(t, 1, edgeCount(t, db))
}

func TestFollowUnknownUser(t *testing.T) {
	svc, db := newService(t)
	a := testutil.CreateUser(t, db, "alice")

	_, err := svc.FollowUser(context.Background(), a.ID.String(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	a := testutil.CreateUser(t, db, "alice")
	testutil.CreateUser(t, db, "bob")
	c := testutil.CreateUser(t, db, "carol")

	err := svc.UnfollowUser(ctx, a.ID.String(), "bob")
	assert.ErrorIs(t, err, apperr.ErrNotFound, "no edge yet")

	_, err = svc.FollowUser(ctx, a.ID.String(), "bob")
	require.NoError(t, err)
	_, err = svc.FollowUser(ctx, a.ID.String(), "carol")
	require.NoError(t, err)
	_, err = svc.FollowUser(ctx, c.ID.String(), "bob")
	require.NoError(t, err)

	require.NoError(t, svc.UnfollowUser(ctx, a.ID.String(), "bob"))
	assert.EqualValues(t, 2, edgeCount(t, db))

	following, err := svc.IsFollowing(ctx, a.ID.String(), "bob")
	require.NoError(t, err)
	assert.False(t, following)

	following, err = svc.IsFollowing(ctx, a.ID.String(), "carol")
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.IsFollowing(ctx, c.ID.String(), "bob")
	require.NoError(t, err)
	assert.True(t, following)

	_, err = svc.IsFollowing(ctx, a.ID.String(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, svc.UnfollowUser(ctx, a.ID.String(), "bob"), apperr.ErrNotFound)
}

func TestFollowerLists(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)
	a := testutil.CreateUser(t, db, "alice")
	c := testutil.CreateUser(t, db, "carol")
	testutil.CreateUser(t, db, "bob")

	_, err := svc.FollowUser(ctx, a.ID.String(), "bob")
	require.NoError(t, err)
	_, err = svc.FollowUser(ctx, c.ID.String(), "bob")
	require.NoError(t, err)

	followers, err := svc.GetFollowers(ctx, "bob")
	require.NoError(t, err)
	names := []string{}
	for _, f := range followers {
		assert.Equal(t, "bob", f.Username)
		names = append(names, f.FollowerUsername)
	}
	assert.ElementsMatch(t, []string{"alice", "carol"}, names)

	following, err := svc.GetFollowing(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, "bob", following[0].Username)

	none, err := svc.GetFollowing(ctx, "bob")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
