package commentapp_test

import (
	"context"
	"testing"
	"time"

	"inkwell/internal/adapters/database"
	"inkwell/internal/adapters/storage"
	"inkwell/internal/core/apperr"
	commentapp "inkwell/internal/core/comment/service"
	postapp "inkwell/internal/core/post/service"
	"inkwell/internal/testutil"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateComment(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	clock := testutil.NewClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	postRepo := database.NewPostRepositoryDatabase(db)
	commentRepo := database.NewCommentRepositoryDatabase(db)
	comments := commentapp.NewCommentService(commentRepo, postRepo, database.NewUserRepositoryDatabase(db), zap.NewNop()).
		WithClock(clock.Now)
	posts := postapp.NewPostService(postRepo, database.NewGroupRepositoryDatabase(db), commentRepo,
		storage.NewDiskStore(t.TempDir(), "/media/", zap.NewNop()), zap.NewNop())

	author := testutil.CreateUser(t, db, "writer")
	reader := testutil.CreateUser(t, db, "reader")
	p := testutil.CreatePost(t, db, author, nil, "post", clock.Now())

	c, err := comments.CreateComment(ctx, p.ID, reader.ID.String(), " nice ")
	require.NoError(t, err)
	assert.Equal(t, "nice", c.Text)
	assert.Equal(t, "reader", c.Author.Username)
	assert.Equal(t, p.ID, c.PostID)

	_, err = comments.CreateComment(ctx, p.ID, author.ID.String(), "thanks")
	require.NoError(t, err)

	_, err = comments.CreateComment(ctx, p.ID, reader.ID.String(), "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = comments.CreateComment(ctx, p.ID+100, reader.ID.String(), "lost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// a token can outlive its account
	_, err = comments.CreateComment(ctx, p.ID, uuid.Must(uuid.NewV4()).String(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	detail, err := posts.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 2)
	assert.Equal(t, "thanks", detail.Comments[0].Text, "newest first")
	assert.Equal(t, "nice", detail.Comments[1].Text)
}
