package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my design file", "my-design-file"},
		{"Hero Section / Desktop", "hero-section-desktop"},
		{"Card#2 (final)", "card-2-final"},
		{"--already--kebab--", "already-kebab"},
		{"ÜberWidget", "berwidget"},
		{"", "component"},
		{"!!!", "component"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveFileName(tt.in), "input %q", tt.in)
	}
}
