package enumset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelfValued(t *testing.T) {
	names := []string{"RED", "GREEN", "BLUE"}

	e, err := New(Names(names...))
	require.NoError(t, err)
	require.Equal(t, len(names), e.Len())

	for _, name := range names {
		byName, ok := e.Get(name)
		require.True(t, ok, "Get(%q)", name)

		byValue, ok := e.ByValue(name)
		require.True(t, ok, "ByValue(%q)", name)

		assert.Same(t, byName, byValue)
		assert.True(t, IsSymbol(byName))
		assert.Equal(t, name, byName.Name())
		assert.Equal(t, name, byName.Value())
		assert.Same(t, e, byName.Enum())
	}
}

func TestNewExplicit(t *testing.T) {
	pairs := []Pair{
		{Name: "DEBUG", Value: 10},
		{Name: "INFO", Value: 20},
		{Name: "WARN", Value: 30},
		{Name: "VERBOSE", Value: true},
		{Name: "TAG", Value: "tag"},
	}

	e, err := New(Pairs(pairs...))
	require.NoError(t, err)
	require.Equal(t, len(pairs), e.Len())

	for _, p := range pairs {
		byName, ok := e.Get(p.Name)
		require.True(t, ok, "Get(%q)", p.Name)

		byValue, ok := e.ByValue(p.Value)
		require.True(t, ok, "ByValue(%v)", p.Value)

		assert.Same(t, byName, byValue)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		def     Definition
		errText string
	}{
		{
			name:    "nil definition",
			def:     nil,
			errText: "non-empty",
		},
		{
			name:    "empty names",
			def:     Names(),
			errText: "non-empty",
		},
		{
			name:    "empty pairs",
			def:     Pairs(),
			errText: "non-empty",
		},
		{
			name:    "empty mapping",
			def:     Mapping(nil),
			errText: "non-empty",
		},
		{
			name:    "duplicate name in self-valued mode",
			def:     Names("RED", "RED"),
			errText: `name "RED" is not unique`,
		},
		{
			name: "duplicate name in explicit mode",
			def: Pairs(
				Pair{Name: "RED", Value: "red"},
				Pair{Name: "RED", Value: "crimson"},
			),
			errText: `name "RED" is not unique`,
		},
		{
			name: "duplicate value in explicit mode",
			def: Pairs(
				Pair{Name: "RED", Value: "red"},
				Pair{Name: "FOO", Value: "red"},
			),
			errText: "value red is not unique",
		},
		{
			name: "duplicate numeric value across types",
			def: Pairs(
				Pair{Name: "A", Value: 1},
				Pair{Name: "B", Value: 1.0},
			),
			errText: "value 1 is not unique",
		},
		{
			name:    "empty symbol name",
			def:     Pairs(Pair{Name: "", Value: "red"}),
			errText: "non-empty string",
		},
		{
			name:    "aggregate value",
			def:     Pairs(Pair{Name: "RED", Value: []int{1}}),
			errText: "boolean, string, or number",
		},
		{
			name:    "nil value",
			def:     Pairs(Pair{Name: "RED", Value: nil}),
			errText: "boolean, string, or number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.def)
			require.Error(t, err)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

// Names whose values coincide is impossible in self-valued mode (name and
// value are identical), so only the name check runs there. The explicit
// mode keeps its value check. Preserving this asymmetry is deliberate.
func TestValueUniquenessAsymmetry(t *testing.T) {
	_, err := New(Names("RED", "GREEN"))
	assert.NoError(t, err)

	_, err = New(Pairs(
		Pair{Name: "RED", Value: "x"},
		Pair{Name: "GREEN", Value: "x"},
	))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

// Lookup is via named methods, so symbol names that would collide with
// accessor names in an index-based host are plain names here and accepted.
func TestAccessorLikeNamesAccepted(t *testing.T) {
	e, err := New(Names("has", "Get", "ByValue", "All"))
	require.NoError(t, err)
	assert.Equal(t, 4, e.Len())

	sym, ok := e.Get("has")
	require.True(t, ok)
	assert.Equal(t, "has", sym.Value())
}

func TestMustNew(t *testing.T) {
	assert.NotPanics(t, func() {
		e := MustNew(Names("RED"))
		assert.Equal(t, 1, e.Len())
	})

	assert.Panics(t, func() {
		MustNew(Names())
	})
}

func TestEnumAt(t *testing.T) {
	names := []string{"FIRST", "SECOND", "THIRD"}
	e := MustNew(Names(names...))

	for i, name := range names {
		sym, ok := e.At(i)
		require.True(t, ok, "At(%d)", i)
		assert.Equal(t, name, sym.Name())
	}

	_, ok := e.At(-1)
	assert.False(t, ok)
	_, ok = e.At(len(names))
	assert.False(t, ok)
}

func TestEnumByValueNormalization(t *testing.T) {
	e := MustNew(Pairs(Pair{Name: "THREE", Value: int64(3)}))

	for _, v := range []any{3, int32(3), uint8(3), 3.0} {
		sym, ok := e.ByValue(v)
		require.True(t, ok, "ByValue(%v %T)", v, v)
		assert.Equal(t, "THREE", sym.Name())
	}

	_, ok := e.ByValue(4)
	assert.False(t, ok)
	_, ok = e.ByValue([]int{3})
	assert.False(t, ok)
}

func TestEnumHas(t *testing.T) {
	e1 := MustNew(Names("RED", "GREEN"))
	e2 := MustNew(Names("RED"))

	own, _ := e1.Get("RED")
	foreign, _ := e2.Get("RED")

	ok, err := e1.Has(own)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e1.Has(foreign)
	require.NoError(t, err)
	assert.False(t, ok, "same-named symbol from a different enum instance is not a member")

	ok, err = e2.Has(own)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e1.Has(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEnumIteration(t *testing.T) {
	pairs := []Pair{
		{Name: "DEBUG", Value: 10},
		{Name: "INFO", Value: 20},
		{Name: "WARN", Value: 30},
	}
	e := MustNew(Pairs(pairs...))

	collect := func() []Pair {
		var got []Pair
		for name, value := range e.All() {
			got = append(got, Pair{Name: name, Value: value})
		}
		return got
	}

	want := []Pair{
		{Name: "DEBUG", Value: 10.0},
		{Name: "INFO", Value: 20.0},
		{Name: "WARN", Value: 30.0},
	}

	assert.Equal(t, want, collect())

	// Restartable: a second range starts over and yields the same sequence.
	assert.Equal(t, want, collect())

	// Early break stops cleanly.
	var first string
	for name := range e.All() {
		first = name
		break
	}
	assert.Equal(t, "DEBUG", first)
}

func TestEnumSymbolsCopy(t *testing.T) {
	e := MustNew(Names("RED", "GREEN"))

	syms := e.Symbols()
	require.Len(t, syms, 2)
	assert.Equal(t, "RED", syms[0].Name())
	assert.Equal(t, "GREEN", syms[1].Name())

	syms[0] = nil
	again, ok := e.At(0)
	require.True(t, ok)
	assert.Equal(t, "RED", again.Name())
}

func TestEnumEqualIsIdentity(t *testing.T) {
	e1 := MustNew(Names("RED"))
	e2 := MustNew(Names("RED"))

	assert.True(t, e1.Equal(e1))
	assert.False(t, e1.Equal(e2), "structurally equal enums are distinct instances")
	assert.False(t, e2.Equal(e1))
	assert.False(t, e1.Equal(nil))

	assert.NotEqual(t, e1.ID(), e2.ID())
}

func TestEnumImmutable(t *testing.T) {
	e := MustNew(Names("RED"))

	err := e.Set("GREEN", "green")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImmutableViolation)

	err = e.Set("RED", "crimson")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImmutableViolation)

	err = e.Delete("RED")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrImmutableViolation)

	// Still intact.
	assert.Equal(t, 1, e.Len())
	sym, ok := e.Get("RED")
	require.True(t, ok)
	assert.Equal(t, "RED", sym.Value())
}

func TestIsEnum(t *testing.T) {
	e := MustNew(Names("RED"))
	sym, _ := e.Get("RED")

	assert.True(t, IsEnum(e))
	assert.False(t, IsEnum(nil))
	assert.False(t, IsEnum((*Enum)(nil)))
	assert.False(t, IsEnum(sym))
	assert.False(t, IsEnum("enum"))
}

// Construction failure mid-definition leaves no observable partial state:
// the only reference to the half-built enum dies with the error return.
func TestNoPartialConstruction(t *testing.T) {
	e, err := New(Pairs(
		Pair{Name: "OK", Value: 1},
		Pair{Name: "BAD", Value: []int{2}},
	))
	require.Error(t, err)
	assert.Nil(t, e)
}
