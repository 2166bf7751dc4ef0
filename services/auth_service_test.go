package services

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"roomhub/auth"
	"roomhub/errors"
	"roomhub/repositories"
)

func newAuthService(t *testing.T) IAuthService {
	t.Helper()
	store, err := repositories.OpenStore(t.TempDir(), slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewAuthService(repositories.NewUserRepository(store), time.Hour)
}

func Test_Login_Rejects_Empty_DisplayName(t *testing.T) {
	req := require.New(t)
	service := newAuthService(t)

	_, _, err := service.Login("")
	req.ErrorIs(err, errors.ErrValidation)
}

func Test_Login_Is_Idempotent_And_Issues_Valid_Token(t *testing.T) {
	req := require.New(t)
	service := newAuthService(t)

	user, token, err := service.Login("alice")
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := auth.ValidateToken(string(token))
	req.NoError(err)
	req.Equal(user.ID, claims.UserID)
	req.Equal("alice", claims.DisplayName)

	again, _, err := service.Login("alice")
	req.NoError(err)
	req.Equal(user.ID, again.ID)
}
