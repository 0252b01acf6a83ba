package client

import "strings"

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
	localDigits    = 9
)

// NormalizePhone reduces raw to digits and puts it in international form for
// countryCode: a leading trunk 0 is replaced by the country code and bare
// 9-digit local numbers get it prepended. Numbers already carrying the code
// are returned unchanged.
func NormalizePhone(raw, countryCode string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)

	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, countryCode):
		return digits
	case strings.HasPrefix(digits, "0"):
		return countryCode + digits[1:]
	case len(digits) == localDigits:
		return countryCode + digits
	default:
		return digits
	}
}

// IsValidPhone reports whether a normalized number has an acceptable length.
func IsValidPhone(normalized string) bool {
	if len(normalized) < minPhoneDigits || len(normalized) > maxPhoneDigits {
		return false
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
