package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLuna(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid number", input: "2377225624", expected: true},
		{name: "Wrong check digit", input: "2377225625", expected: false},
		{name: "Letters", input: "abc", expected: false},
		{name: "Empty", input: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLuna(tt.input))
		})
	}
}

func TestIsOrderNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid order number", input: "ZVR-17000000000001-0123456789ABCDEF", expected: true},
		{name: "Bad check digit", input: "ZVR-17000000000007-0123456789ABCDEF", expected: false},
		{name: "Lowercase suffix", input: "ZVR-17000000000001-0123456789abcdef", expected: false},
		{name: "Wrong prefix", input: "ABC-17000000000001-0123456789ABCDEF", expected: false},
		{name: "Short suffix", input: "ZVR-17000000000001-0123", expected: false},
		{name: "Garbage", input: "not-an-order", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsOrderNumber(tt.input))
		})
	}
}

func TestIsPhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "International", input: "+7 (999) 123-45-67", expected: true},
		{name: "Digits only", input: "89991234567", expected: true},
		{name: "Too short", input: "12345", expected: false},
		{name: "Twenty characters", input: "+7 (999) 123-45-6789", expected: true},
		{name: "Too long", input: "+7 999999999999999999", expected: false},
		{name: "Letters", input: "+7 999 CALL-ME", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPhone(tt.input))
		})
	}
}
