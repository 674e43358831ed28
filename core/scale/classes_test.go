package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpacing(t *testing.T) {
	assert.Equal(t, "0", Spacing(0))
	assert.Equal(t, "1", Spacing(4))
	assert.Equal(t, "4", Spacing(17))
	assert.Equal(t, "-2", Spacing(-8))
	assert.Equal(t, "96", Spacing(1000))
}

func TestSpacingClass(t *testing.T) {
	assert.Equal(t, "p-4", SpacingClass("p", 16))
	assert.Equal(t, "gap-2", SpacingClass("gap", 8))
	assert.Equal(t, "-mt-2", SpacingClass("mt", -8))
}

func TestFontSize(t *testing.T) {
	assert.Equal(t, "text-xs", FontSize(11))
	assert.Equal(t, "text-base", FontSize(16))
	assert.Equal(t, "text-9xl", FontSize(400))

	// 19px sits exactly between text-lg (18) and text-xl (20); the
	// equidistant tie resolves to the lower entry.
	assert.Equal(t, "text-lg", FontSize(19))
}

func TestCornerRadius(t *testing.T) {
	assert.Equal(t, "rounded-none", CornerRadius(0))
	assert.Equal(t, "rounded", CornerRadius(4))
	assert.Equal(t, "rounded-lg", CornerRadius(9))
	assert.Equal(t, "rounded-3xl", CornerRadius(40))

	// At or above the threshold everything collapses to rounded-full.
	assert.Equal(t, "rounded-full", CornerRadius(100))
	assert.Equal(t, "rounded-full", CornerRadius(9999))
	assert.Equal(t, "rounded-full", CornerRadius(50, 50))
}
