package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/store"
)

func newTestService() (*Service, *store.MemoryKV) {
	kv := store.NewMemoryKV()
	return New(kv), kv
}

func TestAdd_PrependsAndStamps(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	draft := models.PortfolioItem{
		Title:       "متجر إلكتروني",
		Category:    "web",
		Image:       "https://example.com/shot.png",
		MoreImages:  []string{"https://example.com/2.png"},
		Description: "متجر كامل",
		ProjectLink: "https://example.com",
		ToolsUsed:   []string{"React", "Go"},
		Features:    []string{"دفع إلكتروني"},
	}

	first, err := svc.Add(ctx, 7, draft)
	require.NoError(t, err)
	assert.Len(t, first.ID, 9)
	assert.NotEmpty(t, first.Date)

	second, err := svc.Add(ctx, 7, models.PortfolioItem{Title: "شعار", Category: "design"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	items := svc.Items(ctx, 7)
	require.Len(t, items, 2)
	// newest first
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)

	// stored fields match the draft apart from the stamps
	got := items[1]
	got.ID, got.Date = "", ""
	assert.Equal(t, draft, got)
}

func TestAdd_UniqueIDsAcrossRun(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		item, err := svc.Add(ctx, 3, models.PortfolioItem{Title: "مشروع", Category: "web"})
		require.NoError(t, err)
		assert.False(t, seen[item.ID], "id %q repeated", item.ID)
		seen[item.ID] = true
	}
}

func TestDelete_RemovesOnlyMatch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	a, _ := svc.Add(ctx, 5, models.PortfolioItem{Title: "A", Category: "web"})
	b, _ := svc.Add(ctx, 5, models.PortfolioItem{Title: "B", Category: "web"})
	c, _ := svc.Add(ctx, 5, models.PortfolioItem{Title: "C", Category: "web"})

	require.NoError(t, svc.Delete(ctx, 5, b.ID))

	items := svc.Items(ctx, 5)
	require.Len(t, items, 2)
	// relative order preserved (newest first: C then A)
	assert.Equal(t, c.ID, items[0].ID)
	assert.Equal(t, a.ID, items[1].ID)
}

func TestDelete_MissingIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	a, _ := svc.Add(ctx, 5, models.PortfolioItem{Title: "A", Category: "web"})

	require.NoError(t, svc.Delete(ctx, 5, "nope"))

	items := svc.Items(ctx, 5)
	require.Len(t, items, 1)
	assert.Equal(t, a.ID, items[0].ID)
}

func TestSave_RoundTripIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	svc.Add(ctx, 7, models.PortfolioItem{Title: "A", Category: "web"})
	svc.Add(ctx, 7, models.PortfolioItem{Title: "B", Category: "design"})

	once := svc.Items(ctx, 7)
	require.NoError(t, svc.Save(ctx, 7, once))
	twice := svc.Items(ctx, 7)
	assert.Equal(t, once, twice)
}

func TestItems_CorruptSlotReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestService()

	require.NoError(t, kv.Set(ctx, store.PortfolioKeyPrefix+"9", "{not json"))
	assert.Empty(t, svc.Items(ctx, 9))
}

func TestItems_SlotsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	svc.Add(ctx, 1, models.PortfolioItem{Title: "mine", Category: "web"})

	assert.Len(t, svc.Items(ctx, 1), 1)
	assert.Empty(t, svc.Items(ctx, 2))
}
