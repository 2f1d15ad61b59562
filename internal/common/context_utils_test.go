package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSubdomain(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "acme", "acme", false},
		{"with digits and hyphens", "acme-corp-2", "acme-corp-2", false},
		{"uppercase normalized", "ACME", "acme", false},
		{"surrounding whitespace", "  acme  ", "acme", false},
		{"empty", "", "", true},
		{"spaces inside", "acme corp", "", true},
		{"punctuation", "acme!", "", true},
		{"underscore", "acme_corp", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateSubdomain(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateHexColor(t *testing.T) {
	assert.NoError(t, ValidateHexColor("#3498db", "primary_color"))
	assert.NoError(t, ValidateHexColor("#2ECC71", "secondary_color"))
	assert.Error(t, ValidateHexColor("3498db", "primary_color"))
	assert.Error(t, ValidateHexColor("#34db", "primary_color"))
	assert.Error(t, ValidateHexColor("#34zzdb", "primary_color"))
	assert.Error(t, ValidateHexColor("", "primary_color"))
}

func TestValidatePaginationParams(t *testing.T) {
	limit, offset := ValidatePaginationParams(0, 0)
	assert.Equal(t, 50, limit)
	assert.Equal(t, 0, offset)

	limit, offset = ValidatePaginationParams(5000, -3)
	assert.Equal(t, 1000, limit)
	assert.Equal(t, 0, offset)

	limit, offset = ValidatePaginationParams(25, 100)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 100, offset)
}
