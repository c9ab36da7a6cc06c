package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full card number", "4532015112830366", "************0366"},
		{"short input is identity", "123", "123"},
		{"exactly four digits", "0366", "0366"},
		{"empty input", "", ""},
		{"five digits", "12345", "*2345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			masked := MaskCardNumber(tt.input)
			assert.Equal(t, tt.expected, masked)
			assert.Len(t, masked, len(tt.input), "masking must preserve length")
		})
	}
}

func TestValidateCardNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect bool
	}{
		{"valid visa test number", "4532015112830366", true},
		{"invalid sequential number", "1234567890123456", false},
		{"valid short number", "0", true},
		{"single digit failing checksum", "1", false},
		{"empty string", "", false},
		{"non-digit characters", "4532 0151 1283 0366", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ValidateCardNumber(tt.input))
		})
	}
}
