package dragon

import (
	"fmt"
	"sort"
	"strings"

	"dragon-clan/element"
)

// Value names one of the ten moral/motivational fields.
type Value byte

const (
	ValueHonor Value = iota + 1
	ValueFreedom
	ValueTradition
	ValueGrowth
	ValueCommunity
	ValueAchievement
	ValueHarmony
	ValuePower
	ValueWisdom
	ValueProtection
)

var ValueDictionary = map[Value]string{
	ValueHonor:       "honor",
	ValueFreedom:     "freedom",
	ValueTradition:   "tradition",
	ValueGrowth:      "growth",
	ValueCommunity:   "community",
	ValueAchievement: "achievement",
	ValueHarmony:     "harmony",
	ValuePower:       "power",
	ValueWisdom:      "wisdom",
	ValueProtection:  "protection",
}

// AllValues lists values in declaration order.
var AllValues = []Value{
	ValueHonor, ValueFreedom, ValueTradition, ValueGrowth, ValueCommunity,
	ValueAchievement, ValueHarmony, ValuePower, ValueWisdom, ValueProtection,
}

func (v Value) String() string {
	if name, ok := ValueDictionary[v]; ok {
		return name
	}
	return fmt.Sprintf("value(%d)", byte(v))
}

// ParseValue resolves a value by name (case-insensitive).
func ParseValue(raw string) (Value, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	for _, v := range AllValues {
		if ValueDictionary[v] == s {
			return v, nil
		}
	}
	return 0, &InvalidProfileError{Kind: "value", Field: raw, Unknown: true}
}

func (v Value) MarshalText() ([]byte, error) {
	if _, ok := ValueDictionary[v]; !ok {
		return nil, fmt.Errorf("cannot marshal unknown value %d", byte(v))
	}
	return []byte(v.String()), nil
}

func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := ParseValue(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Values is a dragon's value system. Every field is in [0,100].
type Values struct {
	Honor       int `json:"honor" yaml:"honor"`
	Freedom     int `json:"freedom" yaml:"freedom"`
	Tradition   int `json:"tradition" yaml:"tradition"`
	Growth      int `json:"growth" yaml:"growth"`
	Community   int `json:"community" yaml:"community"`
	Achievement int `json:"achievement" yaml:"achievement"`
	Harmony     int `json:"harmony" yaml:"harmony"`
	Power       int `json:"power" yaml:"power"`
	Wisdom      int `json:"wisdom" yaml:"wisdom"`
	Protection  int `json:"protection" yaml:"protection"`
}

func (vs *Values) field(v Value) *int {
	switch v {
	case ValueHonor:
		return &vs.Honor
	case ValueFreedom:
		return &vs.Freedom
	case ValueTradition:
		return &vs.Tradition
	case ValueGrowth:
		return &vs.Growth
	case ValueCommunity:
		return &vs.Community
	case ValueAchievement:
		return &vs.Achievement
	case ValueHarmony:
		return &vs.Harmony
	case ValuePower:
		return &vs.Power
	case ValueWisdom:
		return &vs.Wisdom
	case ValueProtection:
		return &vs.Protection
	}
	return nil
}

func (vs Values) Get(v Value) int {
	if p := vs.field(v); p != nil {
		return *p
	}
	return 0
}

// Set stores a clamped score for v. Unknown values are ignored.
func (vs *Values) Set(v Value, score int) {
	if p := vs.field(v); p != nil {
		*p = clampInt(score, 0, 100)
	}
}

func (vs *Values) add(v Value, delta int) {
	vs.Set(v, vs.Get(v)+delta)
}

func (vs Values) Clamp() Values {
	out := vs
	for _, v := range AllValues {
		out.Set(v, vs.Get(v))
	}
	return out
}

func (vs Values) Validate() error {
	for _, v := range AllValues {
		if score := vs.Get(v); score < 0 || score > 100 {
			return &InvalidProfileError{Kind: "value", Field: v.String(), Value: score}
		}
	}
	return nil
}

func RandomValues(r Rand) Values {
	var vs Values
	for _, v := range AllValues {
		vs.Set(v, randomScore(r))
	}
	return vs
}

var valueAdjustments = map[element.Element][]adjustment[Value]{
	element.Fire:      {{ValuePower, 20}, {ValueAchievement, 15}, {ValueHarmony, -15}},
	element.Water:     {{ValueHarmony, 20}, {ValueProtection, 15}, {ValueWisdom, 10}},
	element.Earth:     {{ValueTradition, 25}, {ValueHonor, 15}, {ValueGrowth, -15}},
	element.Wind:      {{ValueFreedom, 25}, {ValueGrowth, 20}, {ValueTradition, -15}},
	element.Lightning: {{ValueAchievement, 20}, {ValuePower, 15}, {ValueHarmony, -15}},
	element.Ice:       {{ValueWisdom, 25}, {ValueHarmony, 15}, {ValueCommunity, -15}},
}

func (vs Values) ForElement(e element.Element) Values {
	out := vs
	for _, adj := range valueAdjustments[e] {
		out.add(adj.field, adj.delta)
	}
	return out
}

func RandomValuesFor(r Rand, e element.Element) Values {
	return RandomValues(r).ForElement(e)
}

// ValueScore pairs a value with its score.
type ValueScore struct {
	Value Value `json:"value"`
	Score int   `json:"score"`
}

// Top returns the count highest values. Ties keep declaration order.
func (vs Values) Top(count int) []ValueScore {
	out := make([]ValueScore, 0, len(AllValues))
	for _, v := range AllValues {
		out = append(out, ValueScore{Value: v, Score: vs.Get(v)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if count < 0 {
		count = 0
	}
	if count < len(out) {
		out = out[:count]
	}
	return out
}
