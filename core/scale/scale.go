// Package scale maps arbitrary pixel measurements onto the closed
// Tailwind utility-class vocabulary by nearest-neighbor quantization.
package scale

import (
	"fmt"
	"math"
	"sort"
)

// Scale is an ordered, ascending sequence of raw pixel values paired 1:1
// with class labels. A Scale is fixed at construction and never mutated.
type Scale struct {
	values []float64
	labels []string
}

// New builds a Scale from parallel values/labels slices. The slices must
// have equal, non-zero length and values must be non-decreasing.
func New(values []float64, labels []string) (*Scale, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("scale: empty value set")
	}
	if len(values) != len(labels) {
		return nil, fmt.Errorf("scale: %d values but %d labels", len(values), len(labels))
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return nil, fmt.Errorf("scale: values not ascending at index %d", i)
		}
	}
	s := &Scale{
		values: append([]float64(nil), values...),
		labels: append([]string(nil), labels...),
	}
	return s, nil
}

// MustNew is New for package-level fixed scales.
func MustNew(values []float64, labels []string) *Scale {
	s, err := New(values, labels)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of entries.
func (s *Scale) Len() int {
	return len(s.values)
}

// nearest returns the index of the entry with minimum absolute distance
// to v. Binary search locates the insertion point, then the neighbor scan
// checks candidates in ascending index order with a strict comparison, so
// an exact tie keeps the lower index. Values beyond either end clamp to
// the boundary entry.
func (s *Scale) nearest(v float64) int {
	if v <= s.values[0] {
		return 0
	}
	last := len(s.values) - 1
	if v >= s.values[last] {
		return last
	}

	i := sort.SearchFloat64s(s.values, v)
	best := i - 1
	bestDist := math.Abs(v - s.values[best])
	for _, c := range []int{i, i + 1} {
		if c > last {
			break
		}
		if d := math.Abs(v - s.values[c]); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Map returns the label of the nearest scale entry. Negative input maps
// its magnitude and prefixes the result with a negation marker.
func (s *Scale) Map(v float64) string {
	if v < 0 {
		return "-" + s.Map(-v)
	}
	return s.labels[s.nearest(v)]
}

// DefaultTolerance computes the acceptance threshold for a matched raw
// value: half the value itself, floored at 2 absolute pixels so tiny
// entries do not reject everything.
func DefaultTolerance(matched float64) float64 {
	return math.Max(0.5*matched, 2)
}

// MapWithinTolerance returns the nearest label and true when the distance
// to the matched entry is acceptable, or ("", false) when the input is too
// far off-scale to map honestly. A value exactly on an entry always maps.
// Pass an explicit tolerance to override the default.
func (s *Scale) MapWithinTolerance(v float64, tolerance ...float64) (string, bool) {
	neg := v < 0
	if neg {
		v = -v
	}

	idx := s.nearest(v)
	dist := math.Abs(v - s.values[idx])

	tol := DefaultTolerance(s.values[idx])
	if len(tolerance) > 0 {
		tol = tolerance[0]
	}
	if dist > tol {
		return "", false
	}

	label := s.labels[idx]
	if neg {
		label = "-" + label
	}
	return label, true
}

// Value returns the raw value backing the entry nearest to v.
func (s *Scale) Value(v float64) float64 {
	return s.values[s.nearest(math.Abs(v))]
}
