package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatar_MarshalURLAsString(t *testing.T) {
	u := User{Email: "a@b.com", Type: TypeClient, Avatar: Avatar{URL: "https://example.com/me.png"}}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"avatar":"https://example.com/me.png"`)
}

func TestAvatar_MarshalConfigAsObject(t *testing.T) {
	u := User{Email: "a@b.com", Type: TypeFreelancer, Avatar: Avatar{Config: &AvatarConfig{
		BgColor:     "#AABBCC",
		TextColor:   "#1F2937",
		BorderColor: "#2E3D80",
		BorderSize:  2,
		FontSize:    "large",
	}}}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"avatar":{"bgColor":"#AABBCC"`)
}

func TestAvatar_UnmarshalBothShapes(t *testing.T) {
	var fromString User
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@b.com","type":"client","avatar":"https://example.com/x.png"}`), &fromString))
	assert.Equal(t, "https://example.com/x.png", fromString.Avatar.URL)
	assert.Nil(t, fromString.Avatar.Config)

	var fromObject User
	require.NoError(t, json.Unmarshal([]byte(`{"email":"b@b.com","type":"freelancer","avatar":{"bgColor":"#8899AA","textColor":"#FFFFFF","borderColor":"#2E3D80","borderSize":2,"fontSize":"large"}}`), &fromObject))
	assert.Empty(t, fromObject.Avatar.URL)
	require.NotNil(t, fromObject.Avatar.Config)
	assert.Equal(t, "#8899AA", fromObject.Avatar.Config.BgColor)
}

func TestAvatar_RoundTrip(t *testing.T) {
	orig := Avatar{Config: &AvatarConfig{BgColor: "#DDEEFF", TextColor: "#1F2937", BorderColor: "#F28123", BorderSize: 2, FontSize: "large"}}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Avatar
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig, back)
}

func TestAvatar_UnmarshalNull(t *testing.T) {
	var a Avatar
	require.NoError(t, json.Unmarshal([]byte(`null`), &a))
	assert.True(t, a.IsZero())
}
