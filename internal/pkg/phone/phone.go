// Package phone canonicalizes US phone numbers into the
// "(XXX) XXX-XXXX" shape used across the portal.
package phone

import "strings"

// Format strips every non-digit character and regroups what remains:
// up to 3 digits stay bare, 4-6 digits become "(XXX) XXX", and 7 or
// more become "(XXX) XXX-XXXX" (digits past the tenth are dropped).
// Formatting an already-formatted number yields the same string.
func Format(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if b.Len() == 10 {
				break
			}
		}
	}
	digits := b.String()

	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return "(" + digits[:3] + ") " + digits[3:]
	default:
		return "(" + digits[:3] + ") " + digits[3:6] + "-" + digits[6:]
	}
}
