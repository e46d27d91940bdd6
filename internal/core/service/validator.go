package service

import (
	"regexp"

	"github.com/minauth/auth-service/internal/core/domain"
)

var (
	usernameCharsRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe         = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateUsername checks length and character-set rules. Length is checked
// before the character set so the reported reason is deterministic.
func ValidateUsername(username string) error {
	if len(username) < 3 || len(username) > 20 {
		return &domain.ValidationError{Reason: "Username must be between 3 and 20 characters"}
	}
	if !usernameCharsRe.MatchString(username) {
		return &domain.ValidationError{Reason: "Username can only contain letters, numbers and underscores"}
	}
	return nil
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return &domain.ValidationError{Reason: "Invalid email format"}
	}
	return nil
}

// ValidatePassword checks the password strength rules in a fixed order:
// length, digit, uppercase, lowercase. The first unmet rule is reported.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &domain.ValidationError{Reason: "Password must be at least 8 characters long"}
	}
	var hasDigit, hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		}
	}
	if !hasDigit {
		return &domain.ValidationError{Reason: "Password must contain at least one number"}
	}
	if !hasUpper {
		return &domain.ValidationError{Reason: "Password must contain at least one uppercase letter"}
	}
	if !hasLower {
		return &domain.ValidationError{Reason: "Password must contain at least one lowercase letter"}
	}
	return nil
}
