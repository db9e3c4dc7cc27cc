package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$15", 15},
		{"$0.10", 0.10},
		{"$1,500", 1500},
		{"15", 15},
		{"$ 23.50 ", 23.5},
		{"", 0},
		{"-", 0},
		{"N/A", 0},
		{"Contact us", 0},
		{"$1.2.3", 0}, // two decimal points never parse
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePrice(tt.in), "input %q", tt.in)
	}
}
