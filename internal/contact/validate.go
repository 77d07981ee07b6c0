package contact

import "regexp"

var (
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
)

// IsValidPhone reports whether s is exactly ten decimal digits.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidEmail reports whether s is empty or has the local@domain.tld shape.
// This is not RFC 5322 validation.
func IsValidEmail(s string) bool {
	return s == "" || emailPattern.MatchString(s)
}
