//go:build unit

package memstore_test

import (
	"context"
	"testing"

	"github.com/ferdinandetchu/real-estate-cameroon/internal/domain/user"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra"
	"github.com/ferdinandetchu/real-estate-cameroon/internal/infra/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(t *testing.T, email string) *user.User {
	t.Helper()
	addr, err := user.NewEmail(email)
	require.NoError(t, err)
	return user.NewUser(addr, "Jane", "hash", user.RoleViewer, testNow)
}

func TestUserStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and look up by id and email", func(t *testing.T) {
		store := memstore.NewUserStore()
		u := newUser(t, "jane@example.com")
		require.NoError(t, store.Create(ctx, u))

		byID, err := store.FindByID(ctx, u.ID())
		require.NoError(t, err)
		assert.Equal(t, u.ID(), byID.ID())

		addr, err := user.NewEmail("jane@example.com")
		require.NoError(t, err)
		byEmail, err := store.FindByEmail(ctx, addr)
		require.NoError(t, err)
		assert.Equal(t, u.ID(), byEmail.ID())
	})

	t.Run("email index is case-insensitive", func(t *testing.T) {
		store := memstore.NewUserStore()
		require.NoError(t, store.Create(ctx, newUser(t, "jane@example.com")))

		dup := newUser(t, "Jane@Example.com")
		err := store.Create(ctx, dup)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

		addr, err := user.NewEmail("JANE@EXAMPLE.COM")
		require.NoError(t, err)
		_, err = store.FindByEmail(ctx, addr)
		assert.NoError(t, err)
	})

	t.Run("unknown lookups report not found", func(t *testing.T) {
		store := memstore.NewUserStore()

		_, err := store.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		addr, mailErr := user.NewEmail("ghost@example.com")
		require.NoError(t, mailErr)
		_, err = store.FindByEmail(ctx, addr)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
