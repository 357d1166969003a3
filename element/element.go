package element

import (
	"fmt"
	"strings"
)

// Element is the fixed category a dragon belongs to.
type Element byte

const (
	Invalid Element = iota
	Fire
	Water
	Earth
	Wind
	Lightning
	Ice
)

var ElementDictionary = map[Element]string{
	Fire:      "Fire",
	Water:     "Water",
	Earth:     "Earth",
	Wind:      "Wind",
	Lightning: "Lightning",
	Ice:       "Ice",
}

var all = []Element{Fire, Water, Earth, Wind, Lightning, Ice}

// All returns the six elements in declaration order.
func All() []Element {
	return append([]Element(nil), all...)
}

func (e Element) String() string {
	if name, ok := ElementDictionary[e]; ok {
		return name
	}
	return "Invalid"
}

func (e Element) Valid() bool {
	_, ok := ElementDictionary[e]
	return ok
}

// Parse resolves an element name, ignoring case and surrounding space.
func Parse(raw string) (Element, error) {
	s := strings.TrimSpace(raw)
	for _, e := range all {
		if strings.EqualFold(ElementDictionary[e], s) {
			return e, nil
		}
	}
	return Invalid, fmt.Errorf("unknown element %q", raw)
}

func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid element %d", byte(e))
	}
	return []byte(e.String()), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Contains reports whether target is in list.
func Contains(list []Element, target Element) bool {
	for _, e := range list {
		if e == target {
			return true
		}
	}
	return false
}
