package enumset

import (
	"maps"
	"slices"
)

// Pair is one name/value entry of an explicit-mode Definition.
type Pair struct {
	// Name is the symbol name, unique within the enum.
	Name string

	// Value is the symbol value: a boolean, string, or number.
	Value any
}

// Definition describes the symbols of an Enum before construction. It is a
// closed sum of two modes: self-valued (Names), where each name is also its
// own value, and explicit (Pairs, Mapping), where values are independently
// chosen. The mode decides whether value uniqueness is checked at
// construction — explicit mode checks it, self-valued mode does not need to
// because name uniqueness already guarantees it.
type Definition interface {
	// entries returns the name/value pairs in definition order.
	entries() []Pair

	// selfValued reports whether each value is derived from its name.
	selfValued() bool
}

type namesDefinition []string

func (d namesDefinition) entries() []Pair {
	pairs := make([]Pair, len(d))
	for i, name := range d {
		pairs[i] = Pair{Name: name, Value: name}
	}
	return pairs
}

func (d namesDefinition) selfValued() bool { return true }

type pairsDefinition []Pair

func (d pairsDefinition) entries() []Pair { return d }

func (d pairsDefinition) selfValued() bool { return false }

// Names builds a self-valued Definition: each name is both the symbol's name
// and its value, in the given order.
func Names(names ...string) Definition {
	return namesDefinition(names)
}

// Pairs builds an explicit Definition from ordered name/value pairs.
func Pairs(pairs ...Pair) Definition {
	return pairsDefinition(pairs)
}

// Mapping builds an explicit Definition from a name→value map. Go maps are
// unordered, so entries are ordered by sorted name to keep the resulting
// definition order deterministic. Use Pairs when the order matters.
func Mapping(m map[string]any) Definition {
	pairs := make([]Pair, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		pairs = append(pairs, Pair{Name: name, Value: m[name]})
	}
	return pairsDefinition(pairs)
}
