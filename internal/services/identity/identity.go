package identity

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/store"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone already registered")
	ErrNotFound       = errors.New("user not found")
)

// Service is the identity store: the persisted list of user accounts
// in a single slot. Writes are wholesale last-writer-wins overwrites.
type Service struct {
	KV store.KV
}

func New(kv store.KV) *Service {
	return &Service{KV: kv}
}

// Users returns the persisted list, or an empty list if the slot is
// absent or unparsable. Failures are logged, never returned.
func (s *Service) Users(ctx context.Context) []models.User {
	raw, ok, err := s.KV.Get(ctx, store.UsersKey)
	if err != nil {
		log.Printf("Failed to read users slot: %v", err)
		return []models.User{}
	}
	if !ok {
		return []models.User{}
	}
	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		log.Printf("Failed to parse users slot: %v", err)
		return []models.User{}
	}
	return users
}

// SaveUsers overwrites the whole slot.
func (s *Service) SaveUsers(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.KV.Set(ctx, store.UsersKey, string(raw))
}

// Find matches case-insensitively on email or exactly on phone.
func (s *Service) Find(ctx context.Context, identifier string) (models.User, bool) {
	if identifier == "" {
		return models.User{}, false
	}
	for _, u := range s.Users(ctx) {
		if strings.EqualFold(u.Email, identifier) {
			return u, true
		}
		if u.Phone != "" && u.Phone == identifier {
			return u, true
		}
	}
	return models.User{}, false
}

// Add appends a new account after uniqueness checks, synthesizing a
// generated avatar when the caller supplied none, and returns the
// stored record.
func (s *Service) Add(ctx context.Context, u models.User) (models.User, error) {
	if _, exists := s.Find(ctx, u.Email); exists {
		return models.User{}, ErrDuplicateEmail
	}
	if strings.TrimSpace(u.Phone) != "" {
		if _, exists := s.Find(ctx, u.Phone); exists {
			return models.User{}, ErrDuplicatePhone
		}
	}

	if u.Avatar.IsZero() {
		u.Avatar = models.Avatar{Config: GenerateAvatar(u.Type)}
	}

	users := append(s.Users(ctx), u)
	if err := s.SaveUsers(ctx, users); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Changes is a partial update; nil fields are left untouched.
type Changes struct {
	Name     *string
	Phone    *string
	Password *string
	Wilaya   *string
	Avatar   *models.Avatar
}

// Update shallow-merges changes onto the record matching email.
// Uniqueness is not re-checked here, only at Add time.
func (s *Service) Update(ctx context.Context, email string, ch Changes) (models.User, error) {
	users := s.Users(ctx)
	for i := range users {
		if !strings.EqualFold(users[i].Email, email) {
			continue
		}
		if ch.Name != nil {
			users[i].Name = *ch.Name
		}
		if ch.Phone != nil {
			users[i].Phone = *ch.Phone
		}
		if ch.Password != nil {
			users[i].Password = *ch.Password
		}
		if ch.Wilaya != nil {
			users[i].Wilaya = *ch.Wilaya
		}
		if ch.Avatar != nil {
			users[i].Avatar = *ch.Avatar
		}
		if err := s.SaveUsers(ctx, users); err != nil {
			return models.User{}, err
		}
		return users[i], nil
	}
	return models.User{}, ErrNotFound
}
