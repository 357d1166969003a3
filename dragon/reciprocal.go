package dragon

import "math"

const (
	reciprocalMinScale   = 0.8
	reciprocalScaleRange = 0.4
	reciprocalFloor      = 0.3
	reciprocalFadePerHit = 0.05
)

// ReciprocalDecay damps how strongly a dragon reacts to an event it did not
// initiate. It fades with familiarity but never drops below 0.3.
func ReciprocalDecay(count int) float64 {
	return math.Max(reciprocalFloor, 1-float64(count)*reciprocalFadePerHit)
}

// ApplyReciprocal updates d's view of other after other initiated an
// interaction with d. The base delta is rescaled to 80-120% and damped by
// ReciprocalDecay, so both sides usually move the same way by different
// amounts. The applied delta is returned.
func (d *Dragon) ApplyReciprocal(other *Dragon, description string, baseDelta int, r Rand) (float64, error) {
	if d.ID == other.ID {
		return 0, ErrSelfInteraction
	}
	scaled := math.Round(float64(baseDelta) * (reciprocalMinScale + r.Float64()*reciprocalScaleRange))
	rel := d.relationshipWith(other)
	delta := scaled * ReciprocalDecay(rel.InteractionCount)
	rel.Apply(delta, description, d.CompatibilityWith(other))
	return delta, nil
}
