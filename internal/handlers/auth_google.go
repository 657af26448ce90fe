package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/saahla-dz/saahla_be/internal/models"
	"github.com/saahla-dz/saahla_be/internal/services/identity"
	"github.com/saahla-dz/saahla_be/internal/services/session"
	"github.com/saahla-dz/saahla_be/internal/utils"
)

type GoogleOAuthHandler struct {
	Identity        *identity.Service
	Session         *session.Service
	JWTSecret       string
	Expires         int
	GoogleClientID  string
	GoogleSecret    string
	GoogleRedirect  string
	FrontendBaseURL string
}

func (h *GoogleOAuthHandler) oauthCfg() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.GoogleClientID,
		ClientSecret: h.GoogleSecret,
		RedirectURL:  h.GoogleRedirect,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}
}

func randomState(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func (h *GoogleOAuthHandler) GoogleStart(c *fiber.Ctx) error {
	next := c.Query("next", "/")
	st := randomState(32)

	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    st,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   10 * 60,
	})
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_next",
		Value:    next,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   10 * 60,
	})

	authURL := h.oauthCfg().AuthCodeURL(st, oauth2.AccessTypeOffline)
	return c.Redirect(authURL, http.StatusTemporaryRedirect)
}

type googleUserInfo struct {
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func (h *GoogleOAuthHandler) GoogleCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")

	if code == "" || state == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Missing code/state")
	}

	stCookie := c.Cookies("oauth_state")
	next := c.Cookies("oauth_next")
	if next == "" {
		next = "/"
	}

	if stCookie == "" || stCookie != state {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid state")
	}

	tok, err := h.oauthCfg().Exchange(c.Context(), code)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to exchange code")
	}

	client := h.oauthCfg().Client(c.Context(), tok)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to fetch userinfo")
	}
	defer resp.Body.Close()

	var gu googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&gu); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Failed to decode userinfo")
	}

	email := strings.ToLower(strings.TrimSpace(gu.Email))
	name := strings.TrimSpace(gu.Name)
	if email == "" {
		return c.Status(fiber.StatusBadRequest).SendString("Email not found from Google")
	}

	u, found := h.Identity.Find(c.Context(), email)
	if !found {
		// Manual login for this account stays possible only with the
		// random token below, which nobody knows.
		u = models.User{
			Name:     name,
			Email:    email,
			Password: randomState(24),
			Type:     models.TypeClient,
			Avatar:   models.Avatar{URL: gu.Picture},
		}
		created, err := h.Identity.Add(c.Context(), u)
		if err != nil {
			log.Println("Error creating user via Google:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"message": "فشل إنشاء الحساب",
			})
		}
		u = created
	} else if name != "" && u.Name != name {
		updated, err := h.Identity.Update(c.Context(), email, identity.Changes{Name: &name})
		if err == nil {
			u = updated
		}
	}

	if err := h.Session.SetCurrent(c.Context(), u.Email); err != nil {
		log.Println("Error setting session pointer:", err)
	}

	jwtToken, err := utils.SignJWT(h.JWTSecret, u.Email, string(u.Type), h.Expires)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to sign jwt")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "sa_token",
		Value:    jwtToken,
		Path:     "/",
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})

	c.Cookie(&fiber.Cookie{Name: "oauth_state", Value: "", Path: "/", MaxAge: -1, HTTPOnly: true, Secure: false, SameSite: "Lax"})
	c.Cookie(&fiber.Cookie{Name: "oauth_next", Value: "", Path: "/", MaxAge: -1, HTTPOnly: true, Secure: false, SameSite: "Lax"})

	redirectURL := h.FrontendBaseURL + next
	if !strings.HasPrefix(next, "/") {
		redirectURL = h.FrontendBaseURL + "/"
	}

	return c.Redirect(redirectURL, http.StatusTemporaryRedirect)
}
