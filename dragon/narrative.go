package dragon

import (
	"fmt"

	"dragon-clan/element"
)

// Kind identifies which rule of the ladder produced an outcome.
type Kind byte

const (
	KindModerate Kind = iota
	KindHonorBond
	KindCommunityCooperation
	KindHarmonyPeacemaking
	KindWisdomDiscussion
	KindValueConflict
	KindHostile
	KindCool
	KindWarm
)

var KindDictionary = map[Kind]string{
	KindModerate:             "moderate",
	KindHonorBond:            "honor_bond",
	KindCommunityCooperation: "community_cooperation",
	KindHarmonyPeacemaking:   "harmony_peacemaking",
	KindWisdomDiscussion:     "wisdom_discussion",
	KindValueConflict:        "value_conflict",
	KindHostile:              "hostile",
	KindCool:                 "cool",
	KindWarm:                 "warm",
}

// AllKinds lists kinds in ladder priority order, moderate last.
var AllKinds = []Kind{
	KindHonorBond, KindCommunityCooperation, KindHarmonyPeacemaking, KindWisdomDiscussion,
	KindValueConflict, KindHostile, KindCool, KindWarm, KindModerate,
}

func (k Kind) String() string {
	if name, ok := KindDictionary[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", byte(k))
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range KindDictionary {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown interaction kind %q", string(text))
}

// encounter is everything a rule may look at. Scores are from self's side.
type encounter struct {
	self, other        *Dragon
	selfStyle          Style
	otherStyle         Style
	prior              float64
	compatibility      float64
	adjusted           float64
	alignment          float64
	finalCompatibility float64
}

func (e *encounter) say(template string) string {
	return fmt.Sprintf(template, e.self.Name, e.other.Name)
}

// sayAny picks uniformly among equally eligible templates.
func (e *encounter) sayAny(r Rand, templates []string) string {
	return e.say(pick(r, templates))
}

func (e *encounter) bothAbove(v Value, threshold int) bool {
	return e.self.Values.Get(v) > threshold && e.other.Values.Get(v) > threshold
}

func (e *encounter) eitherStyle(s Style) bool {
	return e.selfStyle == s || e.otherStyle == s
}

// rule is one rung of the narrative ladder. Rules are tried in order and the
// first whose match returns true narrates the outcome.
type rule struct {
	kind    Kind
	match   func(e *encounter) bool
	narrate func(e *encounter, r Rand) (string, int)
}

const (
	highValue        = 70
	strongAlignment  = 50
	conflictAlignLow = -30
)

// sharedValueRule fires when both dragons hold v above 70 and the final
// compatibility clears floor. Strong alignment adds bonus to the delta.
func sharedValueRule(kind Kind, v Value, floor float64, delta, bonus int, templates []string) rule {
	return rule{
		kind: kind,
		match: func(e *encounter) bool {
			return e.bothAbove(v, highValue) && e.finalCompatibility > floor
		},
		narrate: func(e *encounter, r Rand) (string, int) {
			d := delta
			if e.alignment > strongAlignment {
				d += bonus
			}
			return e.sayAny(r, templates), d
		},
	}
}

type valueConflict struct {
	mine, theirs Value
	delta        int
	template     string
}

var valueConflicts = []valueConflict{
	{ValueFreedom, ValueCommunity, -5, "%s chafes at %s's insistence on putting the clan first"},
	{ValueTradition, ValueGrowth, -4, "%s scolds %s for straying from the old ways"},
	{ValuePower, ValueHarmony, -6, "%s tries to dominate %s, who only wants peace"},
}

func (e *encounter) firstConflict() (valueConflict, bool) {
	for _, c := range valueConflicts {
		if e.self.Values.Get(c.mine) > highValue && e.other.Values.Get(c.theirs) > highValue {
			return c, true
		}
	}
	return valueConflict{}, false
}

var conflictRule = rule{
	kind: KindValueConflict,
	match: func(e *encounter) bool {
		if e.alignment >= conflictAlignLow || e.finalCompatibility >= 20 {
			return false
		}
		_, ok := e.firstConflict()
		return ok
	},
	narrate: func(e *encounter, _ Rand) (string, int) {
		c, _ := e.firstConflict()
		return e.say(c.template), c.delta
	},
}

var hostileRule = rule{
	kind:  KindHostile,
	match: func(e *encounter) bool { return e.finalCompatibility < -50 },
	narrate: func(e *encounter, r Rand) (string, int) {
		switch {
		case e.self.Traits.Aggression > 70:
			return e.say("%s picks a fight with %s over a sunny ledge"), randRange(r, -20, -15)
		case e.other.Traits.Aggression > 70:
			return e.say("%s is snapped at by %s and retreats with singed scales"), randRange(r, -15, -12)
		default:
			return e.say("%s and %s trade cold glares across the cavern"), randRange(r, -12, -10)
		}
	},
}

var coolRule = rule{
	kind:  KindCool,
	match: func(e *encounter) bool { return e.finalCompatibility < 0 },
	narrate: func(e *encounter, r Rand) (string, int) {
		return e.sayAny(r, []string{
			"%s gives %s a curt nod",
			"%s and %s pass each other without much to say",
			"%s listens politely while %s talks, then excuses themself",
		}), r.Intn(4) - 2
	},
}

var warmRule = rule{
	kind:  KindWarm,
	match: func(e *encounter) bool { return e.finalCompatibility > 50 },
	narrate: func(e *encounter, _ Rand) (string, int) {
		var desc string
		var delta int
		switch {
		case e.selfStyle == StylePlayful && e.otherStyle == StylePlayful:
			desc, delta = e.say("%s and %s chase each other through the clouds, laughing"), 12
		case e.eitherStyle(StyleCurious):
			desc, delta = e.say("%s and %s explore a hidden cave together"), 10
		case e.eitherStyle(StyleFriendly):
			desc, delta = e.say("%s shares a warm meal with %s"), 9
		default:
			desc, delta = e.say("%s and %s work side by side on the clan's hoard"), 7
		}
		switch {
		case e.prior > 50:
			delta += 3
		case e.prior > 20:
			delta++
		}
		return desc, delta
	},
}

var moderateTemplates = []string{
	"%s greets %s",
	"%s shares a story with %s",
	"%s and %s play together",
	"%s helps %s with something",
}

func elementalPair(a, b element.Element) (string, bool) {
	switch {
	case a == element.Fire && b == element.Water, a == element.Water && b == element.Fire:
		return "%s and %s have a friendly elemental discussion", true
	case a == element.Earth && b == element.Wind, a == element.Wind && b == element.Earth:
		return "%s and %s collaborate on a project", true
	}
	return "", false
}

var moderateRule = rule{
	kind:  KindModerate,
	match: func(*encounter) bool { return true },
	narrate: func(e *encounter, r Rand) (string, int) {
		if e.eitherStyle(StyleShy) {
			return e.say("%s exchanges a few quiet words with %s"), randRange(r, 2, 3)
		}
		if e.selfStyle == StyleAggressive && e.finalCompatibility > 0 {
			return e.say("%s challenges %s to a friendly sparring match"), randRange(r, 3, 4)
		}
		if tmpl, ok := elementalPair(e.self.Element, e.other.Element); ok && e.finalCompatibility > 20 {
			return e.say(tmpl), randRange(r, 5, 6)
		}
		return e.sayAny(r, moderateTemplates), 2 + r.Intn(5)
	},
}

// ladder is evaluated top to bottom. Value-driven rules pre-empt the
// compatibility bands; moderate always matches.
var ladder = []rule{
	sharedValueRule(KindHonorBond, ValueHonor, -20, 10, 5, []string{
		"%s and %s swear an oath of mutual honor",
		"%s and %s bond over their shared sense of honor",
	}),
	sharedValueRule(KindCommunityCooperation, ValueCommunity, 0, 8, 4, []string{
		"%s and %s organize a feast for the whole clan",
		"%s and %s work together to shore up the clan's nests",
	}),
	sharedValueRule(KindHarmonyPeacemaking, ValueHarmony, -30, 6, 3, []string{
		"%s and %s settle an old quarrel peacefully",
		"%s and %s meditate together by the waterfall",
	}),
	sharedValueRule(KindWisdomDiscussion, ValueWisdom, 0, 7, 3, []string{
		"%s and %s debate the nature of the stars late into the night",
		"%s and %s trade ancient riddles",
	}),
	conflictRule,
	hostileRule,
	coolRule,
	warmRule,
	moderateRule,
}

func resolve(e *encounter, r Rand) Outcome {
	for _, rl := range ladder {
		if !rl.match(e) {
			continue
		}
		desc, delta := rl.narrate(e, r)
		return Outcome{
			Description:           desc,
			OpinionChange:         delta,
			Kind:                  rl.kind,
			Compatibility:         e.compatibility,
			AdjustedCompatibility: e.adjusted,
			FinalCompatibility:    e.finalCompatibility,
			ValueAlignment:        e.alignment,
		}
	}
	// unreachable: moderateRule always matches
	return Outcome{Kind: KindModerate}
}
