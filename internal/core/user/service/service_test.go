package userapp_test

import (
	"context"
	"testing"

	"inkwell/internal/adapters/database"
	"inkwell/internal/core/apperr"
	userapp "inkwell/internal/core/user/service"
	"inkwell/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *userapp.UserService {
	t.Helper()
	db := testutil.NewDB(t)
	return userapp.NewUserService(database.NewUserRepositoryDatabase(db), []byte("test-secret"), zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	u, err := svc.RegisterUser(ctx, "Ada", "Lovelace", "ada", "ada@example.com", "analytical")
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Username)
	assert.NotEmpty(t, u.ID)

	login, err := svc.LoginUser(ctx, "ada", "analytical")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)

	userID, err := svc.ParseToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)

	_, err = svc.LoginUser(ctx, "ada", "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
	_, err = svc.LoginUser(ctx, "nobody", "analytical")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)

	found, err := svc.GetByUsername(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, "Lovelace", found.Family)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	_, err := svc.RegisterUser(ctx, "Ada", "Lovelace", "ada", "", "analytical")
	require.NoError(t, err)

	tests := []struct {
		name                                      string
		first, family, username, email, password string
		field                                     string
	}{
		{"taken username", "A", "B", "ada", "", "password1", "username"},
		{"bad email", "A", "B", "bob", "not-an-email", "password1", "email"},
		{"short password", "A", "B", "bob", "", "short", "password"},
		{"missing name", "", "B", "bob", "", "password1", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(ctx, tt.first, tt.family, tt.username, tt.email, tt.password)
			require.ErrorIs(t, err, apperr.ErrValidation)
			assert.Contains(t, apperr.FieldErrors(err), tt.field)
		})
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	repo := database.NewUserRepositoryDatabase(db)
	issuer := userapp.NewUserService(repo, []byte("one"), zap.NewNop())
	verifier := userapp.NewUserService(repo, []byte("two"), zap.NewNop())

	testutil.CreateUser(t, db, "ada")
	login, err := issuer.LoginUser(ctx, "ada", testutil.Password)
	require.NoError(t, err)

	_, err = verifier.ParseToken(login.Token)
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
	_, err = verifier.ParseToken("garbage")
	assert.ErrorIs(t, err, apperr.ErrAuthRequired)
}

func TestGetByUsernameNotFound(t *testing.T) {
	_, err := newService(t).GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
