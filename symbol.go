package enumset

import (
	"errors"
	"fmt"
)

// Symbol is one named, valued member of exactly one Enum.
//
// Symbols are created only by the Enum constructor and are immutable: name,
// value, and owning Enum are fixed for the life of the instance. The owning
// Enum reference is identity only, used for equality and membership checks.
type Symbol struct {
	enum  *Enum
	name  string
	value any
}

// newSymbol is the sole Symbol constructor. The owner must be an Enum still
// under construction (non-nil and not yet sealed); name must be non-empty;
// value must be a scalar per normalizeValue.
func newSymbol(owner *Enum, name string, value any) (*Symbol, error) {
	const op = "Symbol.new"

	if owner == nil || owner.sealed {
		return nil, NewInvalidArgumentError(op, errors.New("owning enum must be an enum under construction"))
	}
	if name == "" {
		return nil, NewInvalidArgumentError(op, errors.New("name must be a non-empty string"))
	}

	v, err := normalizeValue(value)
	if err != nil {
		return nil, NewInvalidArgumentError(op, err).WithContext(map[string]any{"name": name})
	}

	return &Symbol{enum: owner, name: name, value: v}, nil
}

// Name returns the symbol's name, unique within its owning Enum.
func (s *Symbol) Name() string {
	return s.name
}

// Value returns the symbol's scalar value. Numeric values are normalized to
// float64.
func (s *Symbol) Value() any {
	return s.value
}

// Enum returns the Enum this symbol belongs to.
func (s *Symbol) Enum() *Enum {
	return s.enum
}

// Attr reads a symbol attribute by name: "name", "value", or "enum". Any
// other attribute fails with an invalid-argument error.
func (s *Symbol) Attr(name string) (any, error) {
	switch name {
	case "name":
		return s.name, nil
	case "value":
		return s.value, nil
	case "enum":
		return s.enum, nil
	}
	return nil, NewInvalidArgumentError("Symbol.Attr", fmt.Errorf("invalid attribute %q", name))
}

// SetAttr always fails with an immutable-violation error: symbols cannot be
// changed after construction.
func (s *Symbol) SetAttr(name string, value any) error {
	return NewImmutableViolationError("Symbol.SetAttr").WithContext(map[string]any{"attribute": name})
}

// Equal reports whether other is a Symbol belonging to the same Enum instance
// with equal name and equal value. Checking the name is redundant given name
// uniqueness within an enum, but guards against inconsistent instances.
// Equality with any non-Symbol is false.
func (s *Symbol) Equal(other any) bool {
	o, ok := other.(*Symbol)
	if !ok || o == nil {
		return false
	}
	return s.enum == o.enum && s.name == o.name && s.value == o.value
}

// String returns a diagnostic representation of the symbol.
func (s *Symbol) String() string {
	return fmt.Sprintf("Symbol(%s=%v)", s.name, s.value)
}

// IsSymbol reports whether v is a Symbol produced by this package.
func IsSymbol(v any) bool {
	s, ok := v.(*Symbol)
	return ok && s != nil
}
