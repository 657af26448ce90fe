package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomToken_LengthAndCharset(t *testing.T) {
	for i := 0; i < 100; i++ {
		tok := RandomToken(9)
		require.Len(t, tok, 9)
		for _, r := range tok {
			assert.Contains(t, base36, string(r))
		}
	}
}

func TestRandomToken_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		tok := RandomToken(9)
		assert.False(t, seen[tok], "token %q repeated", tok)
		seen[tok] = true
	}
}
