package middleware

import (
	"fmt"
	"regexp"
	"strings"
)

// Input validation and sanitization utilities

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	localhostOrigin = regexp.MustCompile(`^http://(localhost|127\.0\.0\.1):\d+$`)
)

// ValidateEmail checks the basic shape of an email address
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// IsLocalDevOrigin reports whether the origin is a localhost origin on any
// port, allowed for development convenience.
func IsLocalDevOrigin(origin string) bool {
	return localhostOrigin.MatchString(origin)
}
