package scale

import "fmt"

// Default Tailwind scales. Spacing labels are bare because they compose
// into many class families (p-4, gap-2, -mt-1); font size and radius
// labels are complete class names.

var spacingScale = MustNew(
	[]float64{0, 1, 2, 4, 6, 8, 10, 12, 14, 16, 20, 24, 28, 32, 36, 40, 44, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 208, 224, 240, 256, 288, 320, 384},
	[]string{"0", "px", "0.5", "1", "1.5", "2", "2.5", "3", "3.5", "4", "5", "6", "7", "8", "9", "10", "11", "12", "14", "16", "20", "24", "28", "32", "36", "40", "44", "48", "52", "56", "60", "64", "72", "80", "96"},
)

var fontSizeScale = MustNew(
	[]float64{12, 14, 16, 18, 20, 24, 30, 36, 48, 60, 72, 96, 128},
	[]string{"text-xs", "text-sm", "text-base", "text-lg", "text-xl", "text-2xl", "text-3xl", "text-4xl", "text-5xl", "text-6xl", "text-7xl", "text-8xl", "text-9xl"},
)

// The 4px entry is the unprefixed default class.
var radiusScale = MustNew(
	[]float64{0, 2, 4, 6, 8, 12, 16, 24},
	[]string{"rounded-none", "rounded-sm", "rounded", "rounded-md", "rounded-lg", "rounded-xl", "rounded-2xl", "rounded-3xl"},
)

// FullRadiusThreshold is the corner radius at or above which any value
// collapses to rounded-full regardless of numeric distance. Design tools
// express "fully rounded" as an arbitrarily large radius.
const FullRadiusThreshold float64 = 100

// Spacing maps a pixel quantity onto the spacing scale, returning a bare
// numeric label ("4", "-2") ready to compose into a class family.
func Spacing(px float64) string {
	return spacingScale.Map(px)
}

// SpacingClass maps px onto the spacing scale and attaches the given
// family prefix, moving the negation marker in front of the prefix the
// way Tailwind writes negative utilities (-mt-2, not mt--2).
func SpacingClass(prefix string, px float64) string {
	label := spacingScale.Map(px)
	if len(label) > 0 && label[0] == '-' {
		return fmt.Sprintf("-%s-%s", prefix, label[1:])
	}
	return fmt.Sprintf("%s-%s", prefix, label)
}

// FontSize maps a pixel font size onto the text-* scale.
func FontSize(px float64) string {
	return fontSizeScale.Map(px)
}

// CornerRadius maps a pixel corner radius onto the rounded* scale.
// threshold overrides FullRadiusThreshold when provided.
func CornerRadius(px float64, threshold ...float64) string {
	t := FullRadiusThreshold
	if len(threshold) > 0 {
		t = threshold[0]
	}
	if px >= t {
		return "rounded-full"
	}
	return radiusScale.Map(px)
}

// SpacingScale exposes the fixed spacing scale for tolerance-gated
// mapping by callers that must refuse off-scale values.
func SpacingScale() *Scale { return spacingScale }

// FontSizeScale exposes the fixed font-size scale.
func FontSizeScale() *Scale { return fontSizeScale }

// RadiusScale exposes the fixed corner-radius scale.
func RadiusScale() *Scale { return radiusScale }
