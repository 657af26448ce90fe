package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/store"
)

func newTestService() (*Service, *identity.Service) {
	kv := store.NewMemoryKV()
	ident := identity.New(kv)
	return New(kv, ident), ident
}

func TestCurrent_ResolvesThroughIdentityStore(t *testing.T) {
	ctx := context.Background()
	svc, ident := newTestService()

	_, err := ident.Add(ctx, models.User{
		Email:    "a@b.com",
		Password: "pw123456",
		Type:     models.TypeFreelancer,
		Wilaya:   "الجزائر",
	})
	require.NoError(t, err)

	require.NoError(t, svc.SetCurrent(ctx, "a@b.com"))

	u, ok := svc.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, models.TypeFreelancer, u.Type)
	assert.Equal(t, "الجزائر", u.Wilaya)
}

func TestCurrent_NoPointer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	_, ok := svc.Current(ctx)
	assert.False(t, ok)
}

func TestCurrent_DanglingPointer(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	// pointer names an account that does not exist
	require.NoError(t, svc.SetCurrent(ctx, "gone@example.com"))

	_, ok := svc.Current(ctx)
	assert.False(t, ok)
}

func TestLogout_ClearsPointer(t *testing.T) {
	ctx := context.Background()
	svc, ident := newTestService()

	_, err := ident.Add(ctx, models.User{Email: "a@b.com", Password: "pw123456", Type: models.TypeClient})
	require.NoError(t, err)
	require.NoError(t, svc.SetCurrent(ctx, "a@b.com"))

	require.NoError(t, svc.Logout(ctx))

	_, ok := svc.Current(ctx)
	assert.False(t, ok)
}
