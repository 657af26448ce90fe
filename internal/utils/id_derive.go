package utils

import "unicode/utf16"

// DeriveIDFromEmail maps an email to a stable non-negative integer,
// used as a pseudo primary key for registered freelancers that never
// got a catalog ID. Polynomial rolling hash over UTF-16 code units
// with 32-bit signed wraparound, then absolute value; the same email
// always derives the same ID. Collisions across distinct emails are
// possible and not handled here.
func DeriveIDFromEmail(email string) int64 {
	var acc int32
	for _, unit := range utf16.Encode([]rune(email)) {
		acc = (acc << 5) - acc + int32(unit)
	}
	id := int64(acc)
	if id < 0 {
		id = -id
	}
	return id
}
