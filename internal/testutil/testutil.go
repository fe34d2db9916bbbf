// Package testutil wires throwaway SQLite databases and fixtures for package tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"inkwell/internal/adapters/database"
	"inkwell/internal/config"
	"inkwell/internal/core/group"
	"inkwell/internal/core/post"
	"inkwell/internal/core/user"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// NewDB opens a private in-memory SQLite database with the production schema
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", name, dbSeq.Add(1))

	db, err := config.OpenDatabase("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDB(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

// Clock hands out strictly increasing instants, one second apart
type Clock struct {
	ticks atomic.Int64
	at    time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{at: start}
}

func (c *Clock) Now() time.Time {
	n := c.ticks.Add(1)
	return c.at.Add(time.Duration(n) * time.Second)
}

// Password used by every fixture user
const Password = "s3cret-pass"

func CreateUser(t testing.TB, db *gorm.DB, username string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(Password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &user.User{
		Name:     username,
		Family:   "Tester",
		Username: username,
		Password: string(hash),
	}
	_, err = database.NewUserRepositoryDatabase(db).Create(context.Background(), u)
	require.NoError(t, err)
	return u
}

func CreateGroup(t testing.TB, db *gorm.DB, slug string) *group.Group {
	t.Helper()
	g := &group.Group{Title: strings.ToUpper(slug[:1]) + slug[1:], Slug: slug, Description: "about " + slug}
	_, err := database.NewGroupRepositoryDatabase(db).Create(context.Background(), g)
	require.NoError(t, err)
	return g
}

// CreatePost stores a post directly, bypassing validation
func CreatePost(t testing.TB, db *gorm.DB, author *user.User, g *group.Group, text string, at time.Time) *post.Post {
	t.Helper()
	p := &post.Post{Text: text, PubDate: at, UserID: author.ID}
	if g != nil {
		p.GroupID = &g.ID
	}
	_, err := database.NewPostRepositoryDatabase(db).Create(context.Background(), p)
	require.NoError(t, err)
	return p
}
