package admins

import (
	"context"
	"testing"
	"time"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"
	"course-marketplace/src/repositories/memory"
	"course-marketplace/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newService(t *testing.T) (*Service, *memory.AdminRepository, *utils.TokenManager) {
	t.Helper()
	tokens, err := utils.NewTokenManager([]byte("secret"), time.Hour)
	require.NoError(t, err)
	repo := memory.NewAdminRepository()
	return NewService(repo, tokens, bcrypt.MinCost), repo, tokens
}

func TestSignupStoresHashAndIssuesAdminToken(t *testing.T) {
	s, repo, tokens := newService(t)
	ctx := context.Background()

	token, err := s.Signup(ctx, models.Credentials{Username: "a", Password: "p"})
	require.NoError(t, err)

	claims, err := tokens.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "a", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)

	stored, err := repo.FindByUsername(ctx, "a")
	require.NoError(t, err)
	assert.NotEqual(t, "p", stored.Password)
	assert.True(t, utils.CheckPassword(stored.Password, "p"))
}

func TestSignupTwiceConflicts(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, models.Credentials{Username: "a", Password: "p"})
	require.NoError(t, err)

	_, err = s.Signup(ctx, models.Credentials{Username: "a", Password: "p2"})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.EqualError(t, err, "Admin already exists")
}

func TestSignupAndLoginRequireFields(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	for _, creds := range []models.Credentials{{Username: "a"}, {Password: "p"}, {}} {
		_, err := s.Signup(ctx, creds)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
		_, err = s.Login(ctx, creds)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	}
}

func TestLogin(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, models.Credentials{Username: "a", Password: "p"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		token, err := s.Login(ctx, models.Credentials{Username: "a", Password: "p"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = s.Login(ctx, models.Credentials{Username: "a", Password: "wrong"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	}

	_, err = s.Login(ctx, models.Credentials{Username: "nobody", Password: "p"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetSelf(t *testing.T) {
	s, _, _ := newService(t)
	ctx := context.Background()

	_, err := s.Signup(ctx, models.Credentials{Username: "a", Password: "p"})
	require.NoError(t, err)

	admin, err := s.GetSelf(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", admin.Username)

	_, err = s.GetSelf(ctx, "ghost")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
