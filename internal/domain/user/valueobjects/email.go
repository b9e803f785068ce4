package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// DefaultAllowedDomains is the institutional email domain set accepted at
// registration when no override is configured.
var DefaultAllowedDomains = []string{"muj.manipal.edu", "jaipur.manipal.edu"}

// Email represents a normalized email address value object.
type Email struct {
	value string
}

// NewEmail creates an Email with format validation only. The address is
// trimmed and lower-cased before validation.
func NewEmail(value string) (*Email, error) {
	normalized := strings.TrimSpace(strings.ToLower(value))

	if normalized == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	if len(normalized) > 255 {
		return nil, fmt.Errorf("email cannot exceed 255 characters")
	}

	if !emailRegex.MatchString(normalized) {
		return nil, fmt.Errorf("invalid email format: %s", value)
	}

	return &Email{value: normalized}, nil
}

// NewCollegeEmail creates an Email and additionally requires its domain to be
// a member of allowedDomains. A nil or empty slice falls back to
// DefaultAllowedDomains.
func NewCollegeEmail(value string, allowedDomains []string) (*Email, error) {
	email, err := NewEmail(value)
	if err != nil {
		return nil, err
	}

	if len(allowedDomains) == 0 {
		allowedDomains = DefaultAllowedDomains
	}

	domain := email.Domain()
	for _, allowed := range allowedDomains {
		if domain == strings.TrimPrefix(strings.ToLower(allowed), "@") {
			return email, nil
		}
	}

	return nil, fmt.Errorf("email must be a college email (%s)", formatDomainList(allowedDomains))
}

func formatDomainList(domains []string) string {
	formatted := make([]string, len(domains))
	for i, d := range domains {
		formatted[i] = "@" + strings.TrimPrefix(strings.ToLower(d), "@")
	}
	return strings.Join(formatted, " or ")
}

// String returns the normalized address.
func (e *Email) String() string {
	return e.value
}

// Equals checks if two email objects are equal
func (e *Email) Equals(other *Email) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.value == other.value
}

// Domain returns the domain part of the email
func (e *Email) Domain() string {
	parts := strings.Split(e.value, "@")
	if len(parts) == 2 {
		return parts[1]
	}
	return ""
}
