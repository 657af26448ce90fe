package session

import (
	"context"
	"log"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/store"
)

// Service is the session pointer: one slot naming the signed-in
// account by email. The authoritative record always lives in the
// identity store; this is just a lookup key. No expiry.
type Service struct {
	KV       store.KV
	Identity *identity.Service
}

func New(kv store.KV, ident *identity.Service) *Service {
	return &Service{KV: kv, Identity: ident}
}

func (s *Service) SetCurrent(ctx context.Context, email string) error {
	return s.KV.Set(ctx, store.CurrentUserKey, email)
}

// Current resolves the stored email through the identity store.
// Returns false if no pointer is set or the pointed-to user no longer
// exists.
func (s *Service) Current(ctx context.Context) (models.User, bool) {
	email, ok, err := s.KV.Get(ctx, store.CurrentUserKey)
	if err != nil {
		log.Printf("Failed to read session slot: %v", err)
		return models.User{}, false
	}
	if !ok || email == "" {
		return models.User{}, false
	}
	return s.Identity.Find(ctx, email)
}

func (s *Service) Logout(ctx context.Context) error {
	return s.KV.Del(ctx, store.CurrentUserKey)
}
