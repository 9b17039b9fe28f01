package syncstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"hotel-main", true},
		{"pethotel_2025.backup", true},
		{"", false},
		{"../etc/passwd", false},
		{"a/b", false},
		{"a..b", false},
		{".hidden", false},
		{"空白", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			err := ValidateKey(tt.key)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidKey)
			}
		})
	}
}
