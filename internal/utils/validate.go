package utils

import (
	"regexp"
	"strings"
)

var (
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)
)

// IsValidMobile reports whether mobile is exactly ten ASCII digits.
func IsValidMobile(mobile string) bool {
	return mobilePattern.MatchString(mobile)
}

// IsValidEmail reports whether email has a basic local@domain shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Clean trims surrounding whitespace from user-supplied text.
func Clean(value string) string {
	return strings.TrimSpace(value)
}
