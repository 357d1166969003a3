// Package names draws dragon and clan names from fixed syllable tables.
package names

import (
	"errors"
	"fmt"

	"dragon-clan/element"
)

// ErrExhausted is returned when Unique cannot find enough distinct names.
var ErrExhausted = errors.New("names: not enough distinct names")

const (
	elementThemedChance = 0.7
	middleChance        = 0.5
	attemptsPerName     = 50
)

// Rand is the random source a Generator draws from.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

type Generator struct {
	r Rand
}

func NewGenerator(r Rand) *Generator {
	return &Generator{r: r}
}

func (g *Generator) pick(options []string) string {
	return options[g.r.Intn(len(options))]
}

// DragonName returns a name for a dragon of element e. With a valid element,
// most names are element-themed; element.Invalid always uses syllables.
func (g *Generator) DragonName(e element.Element) string {
	if themed, ok := byElement[e]; ok && g.r.Float64() < elementThemedChance {
		return g.pick(themed.prefixes) + g.pick(themed.suffixes)
	}
	middle := ""
	prefix := g.pick(prefixes)
	if g.r.Float64() < middleChance {
		middle = g.pick(middles)
	}
	return prefix + middle + g.pick(suffixes)
}

// ClanName returns "The <Adjective> <Noun>".
func (g *Generator) ClanName() string {
	return fmt.Sprintf("The %s %s", g.pick(clanAdjectives), g.pick(clanNouns))
}

// Unique returns count distinct dragon names in generation order.
func (g *Generator) Unique(count int, e element.Element) ([]string, error) {
	if count <= 0 {
		return nil, nil
	}
	seen := make(map[string]struct{}, count)
	out := make([]string, 0, count)
	for attempts := count * attemptsPerName; len(out) < count && attempts > 0; attempts-- {
		name := g.DragonName(e)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	if len(out) < count {
		return out, fmt.Errorf("%w: wanted %d, found %d", ErrExhausted, count, len(out))
	}
	return out, nil
}

// UniqueFrom is like DragonName but skips names already in taken.
func (g *Generator) UniqueFrom(taken map[string]struct{}, e element.Element) (string, error) {
	for i := 0; i < attemptsPerName; i++ {
		name := g.DragonName(e)
		if _, dup := taken[name]; !dup {
			return name, nil
		}
	}
	return "", ErrExhausted
}
