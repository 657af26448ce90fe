package portfolio

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/store"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

// Service persists one ordered project list per derived freelancer ID,
// most recent first. Side effects stay inside that one slot.
type Service struct {
	KV store.KV
}

func New(kv store.KV) *Service {
	return &Service{KV: kv}
}

func slotKey(freelancerID int64) string {
	return store.PortfolioKeyPrefix + strconv.FormatInt(freelancerID, 10)
}

// Items returns the stored list, or an empty list if the slot is
// absent or unparsable.
func (s *Service) Items(ctx context.Context, freelancerID int64) []models.PortfolioItem {
	raw, ok, err := s.KV.Get(ctx, slotKey(freelancerID))
	if err != nil {
		log.Printf("Failed to read portfolio slot %d: %v", freelancerID, err)
		return []models.PortfolioItem{}
	}
	if !ok {
		return []models.PortfolioItem{}
	}
	var items []models.PortfolioItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Failed to parse portfolio slot %d: %v", freelancerID, err)
		return []models.PortfolioItem{}
	}
	return items
}

// Save overwrites the slot wholesale.
func (s *Service) Save(ctx context.Context, freelancerID int64, items []models.PortfolioItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, slotKey(freelancerID), string(raw))
}

// Add stamps the draft with a generated ID and today's date and
// prepends it, so index 0 is always the newest project.
func (s *Service) Add(ctx context.Context, freelancerID int64, draft models.PortfolioItem) (models.PortfolioItem, error) {
	draft.ID = utils.RandomToken(9)
	draft.Date = time.Now().Format("2/1/2006")

	updated := append([]models.PortfolioItem{draft}, s.Items(ctx, freelancerID)...)
	if err := s.Save(ctx, freelancerID, updated); err != nil {
		return models.PortfolioItem{}, err
	}
	return draft, nil
}

// Delete removes the matching entry; a miss still persists the
// filtered (unchanged) list.
func (s *Service) Delete(ctx context.Context, freelancerID int64, itemID string) error {
	items := s.Items(ctx, freelancerID)
	updated := make([]models.PortfolioItem, 0, len(items))
	for _, it := range items {
		if it.ID != itemID {
			updated = append(updated, it)
		}
	}
	return s.Save(ctx, freelancerID, updated)
}
