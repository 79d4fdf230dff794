// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MinUsernameLen and MaxUsernameLen bound registered usernames; comment
	// display names share only the upper bound.
	MinUsernameLen = 2
	MaxUsernameLen = 20

	// MaxEmailLen matches the column width of users.email.
	MaxEmailLen = 120

	// MaxCommentLen bounds comment bodies.
	MaxCommentLen = 200

	// MaxTitleLen bounds idea titles.
	MaxTitleLen = 100

	// MaxPasswordLen is bcrypt's input limit; GenerateFromPassword errors on
	// anything longer.
	MaxPasswordLen = 72
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateUsername checks the length of a registered username.
func ValidateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < MinUsernameLen || n > MaxUsernameLen {
		return fmt.Errorf("username must be between %d and %d characters", MinUsernameLen, MaxUsernameLen)
	}
	return nil
}

// ValidateEmail checks the basic shape and length of an email address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("email is not a valid address")
	}
	return nil
}

// ValidatePassword rejects empty passwords and ones beyond bcrypt's limit.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("password must not exceed %d characters", MaxPasswordLen)
	}
	return nil
}

// ValidateDisplayName checks a self-reported comment display name.
func ValidateDisplayName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("display name is required")
	}
	if utf8.RuneCountInString(name) > MaxUsernameLen {
		return fmt.Errorf("display name must not exceed %d characters", MaxUsernameLen)
	}
	return nil
}

// ValidateCommentBody checks a comment body against its bound.
func ValidateCommentBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("comment is required")
	}
	if utf8.RuneCountInString(body) > MaxCommentLen {
		return fmt.Errorf("comment must not exceed %d characters", MaxCommentLen)
	}
	return nil
}
