package format

import "strings"

// NormalizePhone strips everything but ASCII digits and puts the number in
// international form: a leading 0 becomes the country code, and the code is
// prepended when missing. It returns "" when no digits remain.
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
	case strings.HasPrefix(digits, "0"):
		return countryCode + digits[1:]
	case strings.HasPrefix(digits, countryCode):
		return digits
	}

	return countryCode + digits
}
