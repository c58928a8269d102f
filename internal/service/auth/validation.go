package auth

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field validation errors surface inline next to the offending input.
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("please enter a valid email address")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooWeak  = errors.New("password must contain uppercase, lowercase, number and special character")
	ErrNameTooShort     = errors.New("full name must be at least 2 characters")
	ErrUniversityBlank  = errors.New("please select your university")
)

// ValidateEmail checks presence and basic shape.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidateLoginPassword enforces the lighter login-side minimum.
func ValidateLoginPassword(password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if len(password) < 6 {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

// ValidateRegistration checks the full registration form.
func ValidateRegistration(data RegisterData) error {
	if len(strings.TrimSpace(data.FullName)) < 2 {
		return ErrNameTooShort
	}
	if err := ValidateEmail(data.Email); err != nil {
		return err
	}
	if data.Password == "" {
		return ErrPasswordRequired
	}
	if len(data.Password) < 8 {
		return ErrPasswordTooShort
	}
	if !hasUpper(data.Password) || !hasLower(data.Password) || !hasDigit(data.Password) || !hasSpecial(data.Password) {
		return ErrPasswordTooWeak
	}
	if strings.TrimSpace(data.University) == "" || data.University == "Select your university" {
		return ErrUniversityBlank
	}
	return nil
}

// PasswordStrength scores 0-5 and maps to the weak/medium/strong bands
// shown by the registration meter.
func PasswordStrength(password string) (score int, label string) {
	if len(password) >= 8 {
		score++
	}
	if hasLower(password) {
		score++
	}
	if hasUpper(password) {
		score++
	}
	if hasDigit(password) {
		score++
	}
	if hasSpecial(password) {
		score++
	}

	switch {
	case score <= 2:
		label = "Weak"
	case score <= 3:
		label = "Medium"
	default:
		label = "Strong"
	}
	return score, label
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasLower(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasSpecial(s string) bool {
	return strings.ContainsAny(s, "@$!%*?&")
}
