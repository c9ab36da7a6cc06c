// file: common/card_number.go

package common

import "strings"

// MaskCardNumber replaces every digit except the trailing four with '*',
// preserving the overall length. Inputs of four characters or fewer are
// returned unchanged.
func MaskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}

// ValidateCardNumber reports whether the given digit string passes the Luhn
// checksum. The caller must strip whitespace and separators first; any
// non-digit character fails the check.
func ValidateCardNumber(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	// Walk from the least significant digit; double every second one.
	for i := 0; i < len(number); i++ {
		c := number[len(number)-1-i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}

	return sum%10 == 0
}
