package utils

import "crypto/rand"

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomToken returns n random base-36 characters. Used for portfolio
// item IDs; collision probability is accepted as negligible and not
// checked.
func RandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = base36[int(b[i])%len(base36)]
	}
	return string(b)
}
