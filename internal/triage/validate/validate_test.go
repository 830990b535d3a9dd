package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"normal reply", "Thanks for reaching out, happy to help.", true},
		{"exactly 10 chars is invalid", strings.Repeat("a", 10), false},
		{"11 chars is valid", strings.Repeat("a", 11), true},
		{"999 chars is valid", strings.Repeat("a", 999), true},
		{"exactly 1000 chars is invalid", strings.Repeat("a", 1000), false},
		{"too short", "Hi", false},
		{"empty", "", false},
		{"whitespace only", strings.Repeat(" ", 20), false},
		{"500 thai chars is valid despite 1500 bytes", strings.Repeat("ก", 500), true},
		{"999 thai chars is valid", strings.Repeat("ก", 999), true},
		{"1000 thai chars is invalid", strings.Repeat("ก", 1000), false},
		{"4 multibyte chars is too short", strings.Repeat("ก", 4), false},
		{"11 multibyte chars is valid", strings.Repeat("ก", 11), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Response(tt.text))
		})
	}
}
