package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail_Normalization(t *testing.T) {
	email, err := NewEmail("  Some.One@JAIPUR.MANIPAL.EDU ")
	require.NoError(t, err)
	assert.Equal(t, "some.one@jaipur.manipal.edu", email.String())
	assert.Equal(t, "jaipur.manipal.edu", email.Domain())
}

func TestNewEmail_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"missing at", "someone.example.com"},
		{"missing domain", "someone@"},
		{"missing tld", "someone@example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEmail(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestNewCollegeEmail_DomainSet(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		domains []string
		wantErr bool
	}{
		{"default domain muj", "a@muj.manipal.edu", nil, false},
		{"default domain jaipur", "f@jaipur.manipal.edu", nil, false},
		{"outside default set", "a@gmail.com", nil, true},
		{"outside default set for faculty address", "prof@manipal.edu", nil, true},
		{"custom set match", "x@example.edu", []string{"example.edu"}, false},
		{"custom set with at prefix", "x@example.edu", []string{"@example.edu"}, false},
		{"custom set mismatch", "x@other.edu", []string{"example.edu"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, err := NewCollegeEmail(tt.input, tt.domains)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, email)
		})
	}
}

func TestEmail_Equals(t *testing.T) {
	a, err := NewEmail("Same@muj.manipal.edu")
	require.NoError(t, err)
	b, err := NewEmail("same@MUJ.MANIPAL.EDU")
	require.NoError(t, err)
	c, err := NewEmail("other@muj.manipal.edu")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
	assert.False(t, a.Equals(nil))
}
