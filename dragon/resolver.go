package dragon

// Outcome is the result of one interaction from the initiating dragon's side.
type Outcome struct {
	Description   string `json:"description"`
	OpinionChange int    `json:"opinionChange"`
	Kind          Kind   `json:"kind"`

	Compatibility         float64 `json:"compatibility"`
	AdjustedCompatibility float64 `json:"adjustedCompatibility"`
	FinalCompatibility    float64 `json:"finalCompatibility"`
	ValueAlignment        float64 `json:"valueAlignment"`
}

const (
	opinionInfluence   = 30 // points of compatibility a full +/-100 opinion adds
	alignmentInfluence = 20 // points of compatibility a full +/-100 alignment adds
)

func (d *Dragon) encounter(other *Dragon, prior float64) *encounter {
	compat := d.CompatibilityWith(other)
	adjusted := compat + prior/100*opinionInfluence
	alignment := d.ValueAlignmentWith(other)
	return &encounter{
		self:               d,
		other:              other,
		selfStyle:          d.Style(),
		otherStyle:         other.Style(),
		prior:              prior,
		compatibility:      compat,
		adjusted:           adjusted,
		alignment:          alignment,
		finalCompatibility: adjusted + alignment/100*alignmentInfluence,
	}
}

// Evaluate resolves an interaction without recording it. Before first
// contact the prior opinion is the one a new relationship would start at.
func (d *Dragon) Evaluate(other *Dragon, r Rand) (Outcome, error) {
	if d.ID == other.ID {
		return Outcome{}, ErrSelfInteraction
	}
	prior := d.CompatibilityWith(other) * initialOpinionShare
	if rel, ok := d.relationships[other.ID]; ok {
		prior = rel.Opinion
	}
	return resolve(d.encounter(other, prior), r), nil
}

// InteractWith resolves an interaction and applies its opinion change to d's
// relationship with other, creating the relationship on first contact.
// other is not modified; see ApplyReciprocal.
func (d *Dragon) InteractWith(other *Dragon, r Rand) (Outcome, error) {
	if d.ID == other.ID {
		return Outcome{}, ErrSelfInteraction
	}
	rel := d.relationshipWith(other)
	out := resolve(d.encounter(other, rel.Opinion), r)
	rel.Apply(float64(out.OpinionChange), out.Description, out.Compatibility)
	return out, nil
}
