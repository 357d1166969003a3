package dragon

// Style is the coarse behavioral category used to pick narratives.
type Style byte

const (
	StyleSerious Style = iota
	StyleAggressive
	StylePlayful
	StyleFriendly
	StyleShy
	StyleCurious
)

var StyleDictionary = map[Style]string{
	StyleSerious:    "serious",
	StyleAggressive: "aggressive",
	StylePlayful:    "playful",
	StyleFriendly:   "friendly",
	StyleShy:        "shy",
	StyleCurious:    "curious",
}

func (s Style) String() string { return StyleDictionary[s] }

// InteractionStyle applies the decision table in priority order; the first
// matching rule wins.
func InteractionStyle(t Traits) Style {
	switch {
	case t.Aggression > 70:
		return StyleAggressive
	case t.Friendliness > 70 && t.Playfulness > 60:
		return StylePlayful
	case t.Friendliness > 70:
		return StyleFriendly
	case t.Sociability < 30:
		return StyleShy
	case t.Curiosity > 70:
		return StyleCurious
	default:
		return StyleSerious
	}
}
