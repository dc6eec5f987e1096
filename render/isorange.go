package render

import "math"

// isoSteps is the number of Increment steps spanning an IsoRange.
const isoSteps = 50

// IsoRange holds an iso value selectable within the value range of a volume.
type IsoRange struct {
	Min, Max  float64
	Increment float64
	Value     float64
}

// NewIsoRange returns an IsoRange over [min, max] with Value at its center.
func NewIsoRange(min, max float64) IsoRange {
	return IsoRange{
		Min:       min,
		Max:       max,
		Increment: math.Abs(max-min) / isoSteps,
		Value:     min + (max-min)/2,
	}
}

// Rescale moves the range to [min, max] keeping Value at the same relative
// position. A previously empty range places Value at the new range's center.
func (r *IsoRange) Rescale(min, max float64) {
	rel := 0.5
	if span := r.Max - r.Min; span != 0 {
		rel = (r.Value - r.Min) / span
	}
	r.Min, r.Max = min, max
	r.Value = min + rel*(max-min)
	r.Increment = math.Abs(max-min) / isoSteps
}

// Step moves Value by n increments, clamped to the range.
func (r *IsoRange) Step(n int) {
	v := r.Value + float64(n)*r.Increment
	lo, hi := math.Min(r.Min, r.Max), math.Max(r.Min, r.Max)
	r.Value = math.Max(lo, math.Min(hi, v))
}
