package models

import (
	"bytes"
	"encoding/json"
)

type AccountType string

const (
	TypeClient     AccountType = "client"
	TypeFreelancer AccountType = "freelancer"
)

// AvatarConfig describes a generated initial-avatar: colored circle,
// contrasting text, border tinted by account type.
type AvatarConfig struct {
	BgColor     string `json:"bgColor"`
	TextColor   string `json:"textColor"`
	BorderColor string `json:"borderColor"`
	BorderSize  int    `json:"borderSize"`
	FontSize    string `json:"fontSize"`
}

// Avatar is either an opaque image URL or a generated AvatarConfig.
// The stored JSON keeps the original union shape: a plain string for
// URLs, an object for configs.
type Avatar struct {
	URL    string
	Config *AvatarConfig
}

func (a Avatar) IsZero() bool {
	return a.URL == "" && a.Config == nil
}

func (a Avatar) MarshalJSON() ([]byte, error) {
	if a.Config != nil {
		return json.Marshal(a.Config)
	}
	return json.Marshal(a.URL)
}

func (a *Avatar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = Avatar{}
		return nil
	}
	if data[0] == '"' {
		a.Config = nil
		return json.Unmarshal(data, &a.URL)
	}
	a.URL = ""
	a.Config = &AvatarConfig{}
	return json.Unmarshal(data, a.Config)
}

// User is an identity record as persisted in the users slot.
// Password is stored and compared as a plain string so records stay
// interchangeable with what earlier clients wrote; a known weakness,
// see DESIGN.md.
type User struct {
	Name     string      `json:"name,omitempty"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone,omitempty"`
	Password string      `json:"password,omitempty"`
	Type     AccountType `json:"type"`
	Wilaya   string      `json:"wilaya,omitempty"`
	Avatar   Avatar      `json:"avatar"`
}
