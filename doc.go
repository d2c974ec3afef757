// Package enumset provides immutable, identity-bearing enumeration types.
//
// An Enum is a closed, ordered set of named constants called Symbols. Each
// Symbol belongs to exactly one Enum and carries a name and a scalar value
// (boolean, string, or number). Once constructed, neither the Enum nor its
// Symbols can be changed.
//
// # Defining Enums
//
// Enums are built from a Definition, which comes in two modes. In self-valued
// mode each name doubles as its own value:
//
//	colors, err := enumset.New(enumset.Names("RED", "GREEN", "BLUE"))
//
// In explicit mode each name maps to an independently chosen value:
//
//	levels, err := enumset.New(enumset.Pairs(
//	    enumset.Pair{Name: "DEBUG", Value: 10},
//	    enumset.Pair{Name: "INFO", Value: 20},
//	    enumset.Pair{Name: "WARN", Value: 30},
//	))
//
// Mapping offers explicit mode over a plain Go map; since Go maps are
// unordered, entries are taken in sorted-name order for determinism.
//
// # Looking Up Symbols
//
// A constructed Enum is indexed three ways:
//
//	sym, ok := colors.Get("RED")     // by name
//	sym, ok := colors.At(0)          // by position, in definition order
//	sym, ok := levels.ByValue(20)    // by value
//
// Iteration over an Enum always yields (name, value) pairs in definition
// order, and is restartable:
//
//	for name, value := range levels.All() {
//	    fmt.Println(name, value)
//	}
//
// # Identity and Equality
//
// Symbol equality requires the same owning Enum instance plus equal name and
// value. Enum equality is instance identity: two Enums built from identical
// definitions are never equal. Enum.Has distinguishes an Enum's own Symbol
// from a same-named Symbol belonging to a different instance.
//
// # Error Handling
//
// All failures are immediate and synchronous. Precondition violations (empty
// definitions, duplicate names or values, non-scalar values) fail with
// ErrInvalidArgument; mutation attempts on constructed instances fail with
// ErrImmutableViolation. Both are reachable through errors.Is on the
// structured *Error type every failing operation returns.
//
// # Thread Safety
//
// Every public object is immutable after construction, so Enums and Symbols
// can be shared freely across goroutines with no synchronization.
package enumset
