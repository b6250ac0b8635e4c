package usecase

import "strings"

// Sanitize drops ASCII control characters (0x00-0x1F and 0x7F) and trims
// surrounding whitespace. Applying it twice gives the same result as once.
func Sanitize(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, s)

	return strings.TrimSpace(cleaned)
}
