package valueobjects

import "fmt"

// MinPasswordLength is the minimum accepted plaintext password length.
const MinPasswordLength = 6

// Password wraps a validated plaintext password prior to hashing.
type Password struct {
	value string
}

func NewPassword(value string) (*Password, error) {
	if value == "" {
		return nil, fmt.Errorf("password cannot be empty")
	}
	if len(value) < MinPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if len(value) > 128 {
		return nil, fmt.Errorf("password cannot exceed 128 characters")
	}
	return &Password{value: value}, nil
}

func (p *Password) String() string {
	return p.value
}
