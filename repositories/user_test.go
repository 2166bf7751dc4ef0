package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"roomhub/errors"
)

func Test_FindOrCreateUser_Is_Idempotent_Per_DisplayName(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestStore(t))

	alice, err := repository.FindOrCreateUser("alice")
	req.NoError(err)
	req.NotEmpty(alice.ID)

	again, err := repository.FindOrCreateUser("alice")
	req.NoError(err)
	req.Equal(alice.ID, again.ID)
	req.Equal(alice.CreatedAt, again.CreatedAt)

	bob, err := repository.FindOrCreateUser("bob")
	req.NoError(err)
	req.NotEqual(alice.ID, bob.ID)

	users, err := repository.ListUsers()
	req.NoError(err)
	req.Len(users, 2)
}

func Test_GetUser_Unknown_Is_NotFound(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestStore(t))

	_, err := repository.GetUser("nobody")
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_GetUser_Roundtrip(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openTestStore(t))

	created, err := repository.FindOrCreateUser("clara")
	req.NoError(err)

	fetched, err := repository.GetUser(created.ID)
	req.NoError(err)
	req.Equal(created, fetched)
}
