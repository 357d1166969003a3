package dragon

import (
	"fmt"
	"math"
)

const (
	initialOpinionShare = 0.3 // opinion on first contact, as a share of compatibility
	targetOpinionShare  = 0.7 // long-run attractor, as a share of compatibility
	targetWeight        = 0.1
)

// Relationship is one dragon's view of another. It is owned by the observer
// and never synchronized with the subject's view of the observer.
type Relationship struct {
	Opinion          float64 `json:"opinion"`
	InteractionCount int     `json:"interactionCount"`
	LastInteraction  string  `json:"lastInteraction"`
	TargetOpinion    float64 `json:"targetOpinion"`
}

// NewRelationship starts a relationship at the given opinion and target.
func NewRelationship(initialOpinion, targetOpinion float64) *Relationship {
	return &Relationship{
		Opinion:       clampScore(initialOpinion),
		TargetOpinion: clampScore(targetOpinion),
	}
}

// newRelationshipFromCompatibility seeds opinion and target from raw compatibility.
func newRelationshipFromCompatibility(compatibility float64) *Relationship {
	return NewRelationship(compatibility*initialOpinionShare, compatibility*targetOpinionShare)
}

func (r *Relationship) SetTargetOpinion(target float64) {
	r.TargetOpinion = clampScore(target)
}

// DecayFactor is the weight the latest interaction receives once count
// interactions have happened: min(0.5, 10/(count+10)).
func DecayFactor(count int) float64 {
	return math.Min(0.5, 10/float64(count+10))
}

// Apply records an interaction. The new opinion blends three terms: the
// prior opinion (inertia), prior+delta (the latest interaction) weighted by
// DecayFactor, and the compatibility-derived target with a fixed 0.1 pull.
func (r *Relationship) Apply(delta float64, description string, compatibility float64) {
	r.InteractionCount++
	r.TargetOpinion = clampScore(compatibility * targetOpinionShare)

	prior := r.Opinion
	interactionValue := prior + delta
	decay := DecayFactor(r.InteractionCount)
	currentWeight := 1 - decay - targetWeight

	next := prior*currentWeight + interactionValue*decay + r.TargetOpinion*targetWeight
	r.Opinion = roundTenth(clampScore(next))
	r.LastInteraction = description
}

// Band returns the opinion band the relationship currently sits in.
func (r *Relationship) Band() Band { return BandFor(r.Opinion) }

// Band is one of the seven fixed opinion ranges.
type Band byte

const (
	BandRivals Band = iota
	BandUnfriendly
	BandDistant
	BandNeutral
	BandFriendly
	BandFriends
	BandCloseFriends
)

var BandDictionary = map[Band]string{
	BandCloseFriends: "close friends",
	BandFriends:      "friends",
	BandFriendly:     "friendly",
	BandNeutral:      "neutral",
	BandDistant:      "distant",
	BandUnfriendly:   "unfriendly",
	BandRivals:       "rivals",
}

var bandGlyphs = map[Band]string{
	BandCloseFriends: "❤️",
	BandFriends:      "😊",
	BandFriendly:     "🙂",
	BandNeutral:      "😐",
	BandDistant:      "😒",
	BandUnfriendly:   "😠",
	BandRivals:       "💢",
}

// BandFor maps an opinion to its band. Lower bounds are inclusive.
func BandFor(opinion float64) Band {
	switch {
	case opinion >= 80:
		return BandCloseFriends
	case opinion >= 50:
		return BandFriends
	case opinion >= 20:
		return BandFriendly
	case opinion >= -20:
		return BandNeutral
	case opinion >= -50:
		return BandDistant
	case opinion >= -80:
		return BandUnfriendly
	default:
		return BandRivals
	}
}

func (b Band) String() string { return BandDictionary[b] }
func (b Band) Glyph() string  { return bandGlyphs[b] }

// Summary is the read-only view of a relationship handed to presentation code.
type Summary struct {
	Status           string  `json:"status"`
	Symbol           string  `json:"symbol"`
	Opinion          float64 `json:"opinion"`
	InteractionCount int     `json:"interactionCount"`
}

func summarize(r *Relationship) Summary {
	if r == nil {
		return Summary{Status: BandNeutral.String(), Symbol: BandNeutral.Glyph()}
	}
	b := r.Band()
	return Summary{
		Status:           b.String(),
		Symbol:           b.Glyph(),
		Opinion:          r.Opinion,
		InteractionCount: r.InteractionCount,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("%s %s (%g/100, %d interactions)", s.Symbol, s.Status, s.Opinion, s.InteractionCount)
}
