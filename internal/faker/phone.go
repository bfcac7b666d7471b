package faker

import "regexp"

const phoneDigits = 11

var nonDigit = regexp.MustCompile(`\D`)

// NormalizePhone strips every non-digit from raw. An 11-digit result is
// returned as is; anything else is discarded in favour of fallback, which must
// itself return 11 digits.
func NormalizePhone(raw string, fallback func() string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) != phoneDigits {
		return fallback()
	}
	return digits
}
