package identity

import (
	"crypto/rand"
	"strconv"

	"github.com/saahla-dz/saahla_be/internal/models"
)

// Bright half of the hex digits so generated backgrounds never land
// near black.
const brightHex = "89ABCDEF"

const (
	freelancerBorder = "#2E3D80"
	clientBorder     = "#F28123"
)

// GenerateAvatar builds the default initial-avatar for accounts that
// register without an image: random light background, text color
// picked for contrast via the luma formula, border tinted by account
// type.
func GenerateAvatar(t models.AccountType) *models.AvatarConfig {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	digits := make([]byte, 6)
	for i := range b {
		digits[i] = brightHex[int(b[i])%len(brightHex)]
	}
	bg := "#" + string(digits)

	r, _ := strconv.ParseInt(string(digits[0:2]), 16, 64)
	g, _ := strconv.ParseInt(string(digits[2:4]), 16, 64)
	bl, _ := strconv.ParseInt(string(digits[4:6]), 16, 64)
	brightness := (r*299 + g*587 + bl*114) / 1000

	textColor := "#FFFFFF"
	if brightness > 125 {
		textColor = "#1F2937"
	}

	border := clientBorder
	if t == models.TypeFreelancer {
		border = freelancerBorder
	}

	return &models.AvatarConfig{
		BgColor:     bg,
		TextColor:   textColor,
		BorderColor: border,
		BorderSize:  2,
		FontSize:    "large",
	}
}
