// Package directory holds the faculty directory profile entity. Profiles are
// imported out-of-band and are related to registered accounts only by
// normalized email equality; there is no foreign key between the two.
package directory

import (
	"fmt"
	"strings"
	"time"
)

type Profile struct {
	id          uint
	name        string
	department  string
	email       string
	designation string
	phone       string
	office      string
	bio         string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProfile(name, department, email, designation, phone, office, bio string) (*Profile, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if department == "" {
		return nil, fmt.Errorf("department is required")
	}
	email = NormalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}

	now := time.Now()
	return &Profile{
		name:        name,
		department:  department,
		email:       email,
		designation: designation,
		phone:       phone,
		office:      office,
		bio:         bio,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProfile(
	id uint,
	name, department, email, designation, phone, office, bio string,
	createdAt, updatedAt time.Time,
) (*Profile, error) {
	if id == 0 {
		return nil, fmt.Errorf("profile ID cannot be zero")
	}
	return &Profile{
		id:          id,
		name:        name,
		department:  department,
		email:       NormalizeEmail(email),
		designation: designation,
		phone:       phone,
		office:      office,
		bio:         bio,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

// NormalizeEmail applies the same normalization used when matching a profile
// to a registered account.
func NormalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (p *Profile) ID() uint            { return p.id }
func (p *Profile) Name() string        { return p.name }
func (p *Profile) Department() string  { return p.department }
func (p *Profile) Email() string       { return p.email }
func (p *Profile) Designation() string { return p.designation }
func (p *Profile) Phone() string       { return p.phone }
func (p *Profile) Office() string      { return p.office }
func (p *Profile) Bio() string         { return p.bio }
func (p *Profile) CreatedAt() time.Time { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time { return p.updatedAt }

func (p *Profile) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("profile ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("profile ID cannot be zero")
	}
	p.id = id
	return nil
}
