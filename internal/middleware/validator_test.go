package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		ok    bool
	}{
		{"ada@example.com", true},
		{"  ada@example.com  ", true},
		{"ada+tag@sub.example.co", true},
		{"", false},
		{"   ", false},
		{"not-an-email", false},
		{"a b@example.com", false},
		{"ada@example", false},
	}
	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if tt.ok {
			assert.NoError(t, err, tt.email)
		} else {
			assert.Error(t, err, tt.email)
		}
	}
}

func TestIsLocalDevOrigin(t *testing.T) {
	assert.True(t, IsLocalDevOrigin("http://localhost:4200"))
	assert.True(t, IsLocalDevOrigin("http://127.0.0.1:9999"))
	assert.False(t, IsLocalDevOrigin("https://localhost:4200"))
	assert.False(t, IsLocalDevOrigin("http://localhost"))
	assert.False(t, IsLocalDevOrigin("http://evil.com/localhost:4200"))
	assert.False(t, IsLocalDevOrigin("http://localhost:4200.evil.com"))
}
