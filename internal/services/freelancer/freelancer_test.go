package freelancer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/services/portfolio"
	"github.com/saahla-dz/saahla_be/internal/store"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

func newTestService() (*Service, *identity.Service, *portfolio.Service) {
	kv := store.NewMemoryKV()
	ident := identity.New(kv)
	pf := portfolio.New(kv)
	return New(ident, pf), ident, pf
}

func TestAll_CatalogOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	all := svc.All(ctx)
	assert.Len(t, all, len(Catalog))
	assert.Equal(t, "محمد أحمد", all[0].Name)
}

func TestAll_RegisteredComeFirstWithDerivedID(t *testing.T) {
	ctx := context.Background()
	svc, ident, pf := newTestService()

	_, err := ident.Add(ctx, models.User{
		Name:     "كريم",
		Email:    "karim@example.com",
		Password: "pw123456",
		Type:     models.TypeFreelancer,
		Wilaya:   "وهران",
	})
	require.NoError(t, err)

	fid := utils.DeriveIDFromEmail("karim@example.com")
	item, err := pf.Add(ctx, fid, models.PortfolioItem{
		Title:       "موقع شركة",
		Category:    "web",
		Image:       "https://example.com/p.png",
		Description: "موقع تعريفي",
	})
	require.NoError(t, err)

	all := svc.All(ctx)
	require.Len(t, all, len(Catalog)+1)

	got := all[0]
	assert.Equal(t, fid, got.ID)
	assert.Equal(t, "كريم", got.Name)
	assert.Equal(t, "مستقل من وهران", got.Title)
	assert.Equal(t, "مستقل متخصص من ولاية وهران.", got.Description)
	assert.Zero(t, got.Rating)
	assert.Zero(t, got.Reviews)
	assert.Empty(t, got.Skills)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, item.ID, got.Projects[0].ID)
	assert.Equal(t, "موقع شركة", got.Projects[0].Title)
	assert.Equal(t, "https://example.com/p.png", got.Projects[0].Img)
}

func TestAll_NoWilayaDefaults(t *testing.T) {
	ctx := context.Background()
	svc, ident, _ := newTestService()

	_, err := ident.Add(ctx, models.User{
		Name:     "سمير",
		Email:    "samir@example.com",
		Password: "pw123456",
		Type:     models.TypeFreelancer,
	})
	require.NoError(t, err)

	got := svc.All(ctx)[0]
	assert.Equal(t, "مستقل محترف", got.Title)
	assert.Equal(t, "عضو جديد في منصة سهلة.", got.Description)
}

func TestAll_ClientsExcluded(t *testing.T) {
	ctx := context.Background()
	svc, ident, _ := newTestService()

	_, err := ident.Add(ctx, models.User{
		Email:    "client@example.com",
		Password: "pw123456",
		Type:     models.TypeClient,
	})
	require.NoError(t, err)

	assert.Len(t, svc.All(ctx), len(Catalog))
}

func TestAll_RegisteredShadowsSameNamedCatalogEntry(t *testing.T) {
	ctx := context.Background()
	svc, ident, _ := newTestService()

	_, err := ident.Add(ctx, models.User{
		Name:     "سارة علي", // same display name as catalog #2
		Email:    "sara@example.com",
		Password: "pw123456",
		Type:     models.TypeFreelancer,
	})
	require.NoError(t, err)

	all := svc.All(ctx)
	assert.Len(t, all, len(Catalog)) // one shadowed, one added

	count := 0
	for _, f := range all {
		if f.Name == "سارة علي" {
			count++
		}
	}
	assert.Equal(t, 1, count)
	// the surviving entry is the registered one
	assert.Equal(t, utils.DeriveIDFromEmail("sara@example.com"), all[0].ID)
}

func TestByID(t *testing.T) {
	ctx := context.Background()
	svc, ident, _ := newTestService()

	_, err := ident.Add(ctx, models.User{
		Name:     "كريم",
		Email:    "karim@example.com",
		Password: "pw123456",
		Type:     models.TypeFreelancer,
	})
	require.NoError(t, err)

	f, ok := svc.ByID(ctx, utils.DeriveIDFromEmail("karim@example.com"))
	require.True(t, ok)
	assert.Equal(t, "كريم", f.Name)

	f, ok = svc.ByID(ctx, 3)
	require.True(t, ok)
	assert.Equal(t, "يوسف خالد", f.Name)

	_, ok = svc.ByID(ctx, -1)
	assert.False(t, ok)
}
