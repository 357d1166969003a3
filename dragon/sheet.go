package dragon

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

type scoreLine struct {
	label string
	score int
}

func sortedLines(lines []scoreLine) []scoreLine {
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].score > lines[j].score })
	return lines
}

func writeLines(b *strings.Builder, lines []scoreLine) {
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(b, "  %s: %d/100", l.label, l.score)
	}
}

// CharacterSheet lists the dragon's details with traits and values sorted
// from strongest to weakest. Ties keep declaration order.
func (d *Dragon) CharacterSheet() string {
	traits := make([]scoreLine, 0, len(AllTraits))
	for _, t := range AllTraits {
		traits = append(traits, scoreLine{titleCase.String(t.String()), d.Traits.Get(t)})
	}
	values := make([]scoreLine, 0, len(AllValues))
	for _, v := range AllValues {
		values = append(values, scoreLine{titleCase.String(v.String()), d.Values.Get(v)})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s's Details:\n", d.Name)
	fmt.Fprintf(&b, "  Element: %s\n  Age: %d\n  Energy: %d%%\n  Mood: %s\n\n", d.Element, d.Age, d.Energy, d.Mood)
	fmt.Fprintf(&b, "  Character:\n  Style: %s\n\n", d.Style())
	b.WriteString("  Traits:\n")
	writeLines(&b, sortedLines(traits))
	b.WriteString("\n\n  Values:\n")
	writeLines(&b, sortedLines(values))
	return b.String()
}

// TopValues returns the dragon's n strongest values.
func (d *Dragon) TopValues(n int) []ValueScore { return d.Values.Top(n) }
