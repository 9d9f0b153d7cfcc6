package repo

import (
	"testing"

	"github.com/rogerio-castellano/ink-to-doc/internal/models"
	"github.com/stretchr/testify/require"
)

func TestInMemoryUserRepository_CreateAndLookup(t *testing.T) {
	r := NewInMemoryUserRepository()

	created, err := r.Create(models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	byEmail, err := r.GetByEmail("a@x.com")
	require.NoError(t, err)
	require.Equal(t, created.ID, byEmail.ID)

	byID, err := r.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
}

func TestInMemoryUserRepository_DuplicateEmail(t *testing.T) {
	r := NewInMemoryUserRepository()

	_, err := r.Create(models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	_, err = r.Create(models.User{Username: "bob", Email: "a@x.com"})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestInMemoryUserRepository_UpdateKeepsOtherFields(t *testing.T) {
	r := NewInMemoryUserRepository()

	created, err := r.Create(models.User{Username: "alice", Email: "a@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	created.Username = "alice2"
	updated, err := r.Update(created)
	require.NoError(t, err)
	require.Equal(t, "alice2", updated.Username)
	require.Equal(t, "a@x.com", updated.Email)
	require.Equal(t, "hash", updated.PasswordHash)
}

func TestInMemoryUserRepository_UpdateDuplicateEmail(t *testing.T) {
	r := NewInMemoryUserRepository()

	_, err := r.Create(models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)
	bob, err := r.Create(models.User{Username: "bob", Email: "b@x.com"})
	require.NoError(t, err)

	bob.Email = "a@x.com"
	_, err = r.Update(bob)
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestInMemoryUserRepository_Delete(t *testing.T) {
	r := NewInMemoryUserRepository()

	created, err := r.Create(models.User{Username: "alice", Email: "a@x.com"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(created.ID))
	require.ErrorIs(t, r.Delete(created.ID), ErrUserNotFound)

	_, err = r.GetByID(created.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}
