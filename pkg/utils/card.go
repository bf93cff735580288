package utils

import (
	"fmt"
	"strconv"
	"strings"

	"jetsetter-booking/internal/domain/entity"
)

// ValidateCardNumber checks a card number with the Luhn algorithm.
// Whitespace is stripped first; any remaining non-digit fails the check.
func ValidateCardNumber(raw string) bool {
	digits := strings.ReplaceAll(raw, " ", "")
	if digits == "" {
		return false
	}

	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	return sum%10 == 0
}

// ParseExpiry parses an "MM/YY" expiry string. The two-digit year is
// interpreted as 2000+YY. Already-expired dates are not rejected here.
func ParseExpiry(raw string) (month, year int, err error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected MM/YY, got %q", entity.ErrExpiryFormat, raw)
	}

	month, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad month %q", entity.ErrExpiryFormat, parts[0])
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: month %d out of range", entity.ErrExpiryFormat, month)
	}

	yy, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || yy < 0 {
		return 0, 0, fmt.Errorf("%w: bad year %q", entity.ErrExpiryFormat, parts[1])
	}

	return month, 2000 + yy, nil
}

// MaskCardNumber reduces a card number to its last four digits. Anything
// shorter than four digits is fully masked.
func MaskCardNumber(raw string) string {
	digits := strings.ReplaceAll(raw, " ", "")
	if len(digits) < 4 {
		return "****"
	}
	return "****" + digits[len(digits)-4:]
}
