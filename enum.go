package enumset

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
)

// Enum is an immutable, ordered, uniquely-keyed collection of Symbols.
//
// An Enum is constructed once from a Definition and sealed before it is
// returned to the caller; afterwards no symbol can be added, removed, or
// changed. Symbols keep their definition order and are indexed by name and
// by value. Enum equality is instance identity: two Enums built from the
// same definition are distinct, and each instance carries a unique identity
// token (see ID).
type Enum struct {
	id      uuid.UUID
	symbols []*Symbol
	byName  map[string]*Symbol
	byValue map[any]*Symbol
	sealed  bool
}

// New constructs an Enum from the given Definition.
//
// The definition must be non-empty. Every name must be unique; in explicit
// mode every value must be unique as well (self-valued definitions skip the
// value check because name uniqueness already guarantees it). Construction
// either fully succeeds or fails with an invalid-argument error before any
// usable instance exists — there is no partial-construction state.
func New(def Definition) (*Enum, error) {
	const op = "Enum.New"

	if def == nil {
		return nil, NewInvalidArgumentError(op, errors.New("must be a non-empty definition"))
	}
	pairs := def.entries()
	if len(pairs) == 0 {
		return nil, NewInvalidArgumentError(op, errors.New("must be a non-empty definition"))
	}

	e := &Enum{
		id:      uuid.New(),
		symbols: make([]*Symbol, 0, len(pairs)),
		byName:  make(map[string]*Symbol, len(pairs)),
		byValue: make(map[any]*Symbol, len(pairs)),
	}

	for _, p := range pairs {
		sym, err := newSymbol(e, p.Name, p.Value)
		if err != nil {
			return nil, err
		}

		if _, exists := e.byName[sym.name]; exists {
			return nil, NewInvalidArgumentError(op, fmt.Errorf("name %q is not unique", sym.name))
		}

		// Self-valued mode needs no value check: name and value are
		// identical, so the name check above already covers it.
		if !def.selfValued() {
			if _, exists := e.byValue[sym.value]; exists {
				return nil, NewInvalidArgumentError(op, fmt.Errorf("value %v is not unique", sym.value)).
					WithContext(map[string]any{"name": sym.name})
			}
		}

		e.symbols = append(e.symbols, sym)
		e.byName[sym.name] = sym
		e.byValue[sym.value] = sym
	}

	e.sealed = true
	return e, nil
}

// MustNew is like New but panics on construction failure. It is intended for
// package-level enum variables whose definitions are compile-time constants.
func MustNew(def Definition) *Enum {
	e, err := New(def)
	if err != nil {
		panic(err)
	}
	return e
}

// Get returns the Symbol with the given name, or false if no such name
// exists.
func (e *Enum) Get(name string) (*Symbol, bool) {
	sym, ok := e.byName[name]
	return sym, ok
}

// At returns the Symbol at position i in definition order (0-based), or
// false if i is out of range.
func (e *Enum) At(i int) (*Symbol, bool) {
	if i < 0 || i >= len(e.symbols) {
		return nil, false
	}
	return e.symbols[i], true
}

// ByValue returns the Symbol whose value equals v, or false if none matches.
// Numeric arguments are normalized before lookup, so any numeric type finds
// a numerically equal value. Non-scalar arguments match nothing.
func (e *Enum) ByValue(v any) (*Symbol, bool) {
	n, err := normalizeValue(v)
	if err != nil {
		return nil, false
	}
	sym, ok := e.byValue[n]
	return sym, ok
}

// Has reports whether sym is this Enum's own Symbol registered under its
// name. A same-named Symbol belonging to a different Enum instance is not a
// member. Fails with an invalid-argument error when sym is nil.
func (e *Enum) Has(sym *Symbol) (bool, error) {
	if sym == nil {
		return false, NewInvalidArgumentError("Enum.Has", errors.New("argument must be a Symbol"))
	}
	return e.byName[sym.name] == sym, nil
}

// Len returns the number of symbols.
func (e *Enum) Len() int {
	return len(e.symbols)
}

// Symbols returns the symbols in definition order. The returned slice is a
// copy; modifying it does not affect the Enum.
func (e *Enum) Symbols() []*Symbol {
	out := make([]*Symbol, len(e.symbols))
	copy(out, e.symbols)
	return out
}

// All returns an iterator over (name, value) pairs in definition order. The
// sequence is finite, deterministic, and restartable: every range over it
// starts from the first symbol.
func (e *Enum) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, sym := range e.symbols {
			if !yield(sym.name, sym.value) {
				return
			}
		}
	}
}

// Equal reports whether other is the identical Enum instance. Structurally
// equal but distinct instances are not equal.
func (e *Enum) Equal(other *Enum) bool {
	return e == other
}

// ID returns the unique identity token assigned to this instance at
// construction.
func (e *Enum) ID() uuid.UUID {
	return e.id
}

// String returns a diagnostic representation of the enum.
func (e *Enum) String() string {
	return fmt.Sprintf("Enum(%d symbols, id=%s)", len(e.symbols), e.id)
}

// Set always fails with an immutable-violation error: entries cannot be
// added or overwritten after construction.
func (e *Enum) Set(name string, value any) error {
	return NewImmutableViolationError("Enum.Set").WithContext(map[string]any{"name": name})
}

// Delete always fails with an immutable-violation error: entries cannot be
// removed after construction.
func (e *Enum) Delete(name string) error {
	return NewImmutableViolationError("Enum.Delete").WithContext(map[string]any{"name": name})
}

// IsEnum reports whether v is an Enum produced by this package.
func IsEnum(v any) bool {
	e, ok := v.(*Enum)
	return ok && e != nil
}
