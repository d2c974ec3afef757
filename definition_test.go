package enumset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamesDefinitionOrder(t *testing.T) {
	def := Names("C", "A", "B")

	e, err := New(def)
	require.NoError(t, err)

	var order []string
	for name := range e.All() {
		order = append(order, name)
	}
	assert.Equal(t, []string{"C", "A", "B"}, order, "self-valued mode keeps the given order")
}

func TestPairsDefinitionOrder(t *testing.T) {
	def := Pairs(
		Pair{Name: "Z", Value: 1},
		Pair{Name: "A", Value: 2},
		Pair{Name: "M", Value: 3},
	)

	e, err := New(def)
	require.NoError(t, err)

	var order []string
	for name := range e.All() {
		order = append(order, name)
	}
	assert.Equal(t, []string{"Z", "A", "M"}, order, "explicit mode keeps the given order")
}

func TestMappingDefinitionSortedOrder(t *testing.T) {
	def := Mapping(map[string]any{
		"WARN":  30,
		"DEBUG": 10,
		"INFO":  20,
	})

	e, err := New(def)
	require.NoError(t, err)

	var order []string
	for name := range e.All() {
		order = append(order, name)
	}
	assert.Equal(t, []string{"DEBUG", "INFO", "WARN"}, order, "mapping mode orders by sorted name")
}
