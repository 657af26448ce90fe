package freelancer

import (
	"context"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/services/portfolio"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

// Service merges registered freelancer accounts with the static
// catalog into one addressable list. Recomputed on every call, no
// caching; fine at this data volume.
type Service struct {
	Identity  *identity.Service
	Portfolio *portfolio.Service
}

func New(ident *identity.Service, pf *portfolio.Service) *Service {
	return &Service{Identity: ident, Portfolio: pf}
}

// fallbackAvatar replaces URL avatars in the synthesized view, which
// only renders generated configs.
func fallbackAvatar() models.Avatar {
	return models.Avatar{Config: &models.AvatarConfig{
		BgColor:     "#3B82F6",
		TextColor:   "#FFF",
		BorderColor: "#FFF",
		BorderSize:  2,
		FontSize:    "large",
	}}
}

// All lists registered freelancers first, then every catalog entry
// whose display name is not already taken. Registered users shadow
// same-named catalog freelancers.
func (s *Service) All(ctx context.Context) []models.Freelancer {
	var combined []models.Freelancer

	for _, u := range s.Identity.Users(ctx) {
		if u.Type != models.TypeFreelancer {
			continue
		}
		fid := utils.DeriveIDFromEmail(u.Email)
		saved := s.Portfolio.Items(ctx, fid)

		title := "مستقل محترف"
		description := "عضو جديد في منصة سهلة."
		if u.Wilaya != "" {
			title = "مستقل من " + u.Wilaya
			description = "مستقل متخصص من ولاية " + u.Wilaya + "."
		}

		avatar := u.Avatar
		if avatar.Config == nil {
			avatar = fallbackAvatar()
		}

		projects := make([]models.Project, 0, len(saved))
		for _, p := range saved {
			projects = append(projects, models.Project{
				ID:          p.ID,
				Title:       p.Title,
				Img:         p.Image,
				Description: p.Description,
			})
		}

		combined = append(combined, models.Freelancer{
			ID:          fid,
			Name:        u.Name,
			Title:       title,
			Rating:      0,
			Reviews:     0,
			Avatar:      avatar,
			Description: description,
			Skills:      []string{},
			Category:    "web",
			Subcategory: "webdev",
			Bio:         "",
			Projects:    projects,
		})
	}

	for _, mock := range Catalog {
		taken := false
		for _, f := range combined {
			if f.Name == mock.Name {
				taken = true
				break
			}
		}
		if !taken {
			combined = append(combined, mock)
		}
	}

	return combined
}

// ByID is a linear scan over All.
func (s *Service) ByID(ctx context.Context, id int64) (models.Freelancer, bool) {
	for _, f := range s.All(ctx) {
		if f.ID == id {
			return f, true
		}
	}
	return models.Freelancer{}, false
}
