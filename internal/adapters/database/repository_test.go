package database_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"inkwell/internal/adapters/database"
	"inkwell/internal/core/apperr"
	"inkwell/internal/core/comment"
	"inkwell/internal/core/follower"
	"inkwell/internal/core/group"
	"inkwell/internal/core/post"
	"inkwell/internal/core/user"
	postPort "inkwell/internal/ports/post"
	"inkwell/internal/testutil"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostListOrderAndFilters(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := database.NewPostRepositoryDatabase(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	news := testutil.CreateGroup(t, db, "news")

	same := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	older := testutil.CreatePost(t, db, alice, nil, "older", same.Add(-time.Hour))
	tieA := testutil.CreatePost(t, db, alice, news, "tie a", same)
	tieB := testutil.CreatePost(t, db, bob, news, "tie b", same)

	all, err := repo.List(ctx, postPort.Filter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint64{tieB.ID, tieA.ID, older.ID}, []uint64{all[0].ID, all[1].ID, all[2].ID},
		"equal timestamps fall back to id descending")
	assert.Equal(t, "bob", all[0].User.Username)
	require.NotNil(t, all[0].Group)
	assert.Equal(t, "news", all[0].Group.Slug)

	byGroup, err := repo.Count(ctx, postPort.Filter{GroupID: &news.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, byGroup)

	byAuthor, err := repo.List(ctx, postPort.Filter{AuthorID: &alice.ID}, 1, 10)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, older.ID, byAuthor[0].ID)
}

func TestFollowedByFilter(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	posts := database.NewPostRepositoryDatabase(db)
	follows := database.NewFollowerRepositoryDatabase(db)

	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")
	carol := testutil.CreateUser(t, db, "carol")
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	testutil.CreatePost(t, db, bob, nil, "bob", at)
	testutil.CreatePost(t, db, carol, nil, "carol", at.Add(time.Minute))

	created, err := follows.FollowUser(ctx, &follower.Follower{FollowerID: alice.ID, UserID: bob.ID})
	require.NoError(t, err)
	require.True(t, created)

	list, err := posts.List(ctx, postPort.Filter{FollowedBy: &alice.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].Text)

	count, err := posts.Count(ctx, postPort.Filter{FollowedBy: &bob.ID})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestFollowUserIsInsertIfAbsent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := database.NewFollowerRepositoryDatabase(db)
	alice := testutil.CreateUser(t, db, "alice")
	bob := testutil.CreateUser(t, db, "bob")

	const attempts = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.FollowUser(ctx, &follower.Follower{FollowerID: alice.ID, UserID: bob.ID})
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	var edges int64
	require.NoError(t, db.Model(&follower.Follower{}).Count(&edges).Error)
	assert.EqualValues(t, 1, edges)

	require.NoError(t, repo.UnfollowUser(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, repo.UnfollowUser(ctx, alice.ID, bob.ID), apperr.ErrNotFound)
}

func TestUniqueColumnsReportDuplicates(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)

	testutil.CreateUser(t, db, "alice")
	_, err := database.NewUserRepositoryDatabase(db).Create(ctx, &user.User{Name: "A", Family: "B", Username: "alice", Password: "x"})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)

	testutil.CreateGroup(t, db, "news")
	_, err = database.NewGroupRepositoryDatabase(db).Create(ctx, &group.Group{Title: "News", Slug: "news"})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestGroupDeleteDetachesPosts(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	groups := database.NewGroupRepositoryDatabase(db)
	posts := database.NewPostRepositoryDatabase(db)
	alice := testutil.CreateUser(t, db, "alice")
	news := testutil.CreateGroup(t, db, "news")
	p := testutil.CreatePost(t, db, alice, news, "story", time.Now().UTC())

	require.NoError(t, groups.Delete(ctx, news.ID))

	got, err := posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Group)

	assert.ErrorIs(t, groups.Delete(ctx, news.ID), apperr.ErrNotFound)
	_, err = groups.FindBySlug(ctx, "news")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMissingReferencesReportNotFound(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	ghost := uuid.Must(uuid.NewV4())
	author := testutil.CreateUser(t, db, "writer")
	existing := testutil.CreatePost(t, db, author, nil, "hello", time.Now())

	posts := database.NewPostRepositoryDatabase(db)
	_, err := posts.Create(ctx, &post.Post{Text: "orphan", PubDate: time.Now(), UserID: ghost})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	missingGroup := uint(4242)
	existing.GroupID = &missingGroup
	assert.ErrorIs(t, posts.Update(ctx, existing), apperr.ErrNotFound)

	_, err = database.NewCommentRepositoryDatabase(db).Create(ctx, &comment.Comment{
		PostID: existing.ID, UserID: ghost, Text: "hi", PubDate: time.Now(),
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = database.NewFollowerRepositoryDatabase(db).FollowUser(ctx, &follower.Follower{
		FollowerID: ghost, UserID: author.ID,
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
