// Package registry provides a process-wide catalog of constructed enums.
//
// Components that define enums at startup can register them under a name and
// look them up elsewhere without threading references through every call
// path:
//
//	registry.Register("colors", enumset.MustNew(enumset.Names("RED", "GREEN")))
//
//	colors, ok := registry.Lookup("colors")
//
// All operations are safe for concurrent use. The catalog holds references
// only; enums are immutable, so lookups return the registered instance
// without copying.
package registry

import (
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/glyphkit/enumset"
)

// Catalog is a named, concurrency-safe collection of constructed enums.
// The zero value is not usable; use NewCatalog.
type Catalog struct {
	mu     sync.RWMutex
	enums  map[string]*enumset.Enum
	logger *slog.Logger
}

// NewCatalog creates an empty catalog. If logger is nil, slog.Default() is
// used.
func NewCatalog(logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		enums:  make(map[string]*enumset.Enum),
		logger: logger,
	}
}

// Register stores e under name. Registering over an existing name replaces
// the previous entry and logs a warning, since callers holding symbols from
// the replaced enum will fail membership checks against the new one. Fails
// with an invalid-argument error on an empty name or nil enum.
func (c *Catalog) Register(name string, e *enumset.Enum) error {
	const op = "Catalog.Register"

	if name == "" {
		return enumset.NewInvalidArgumentError(op, errors.New("name must be a non-empty string"))
	}
	if e == nil {
		return enumset.NewInvalidArgumentError(op, errors.New("enum must not be nil")).
			WithContext(map[string]any{"name": name})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, exists := c.enums[name]; exists && !prev.Equal(e) {
		c.logger.Warn("replacing registered enum",
			"name", name,
			"previous_id", prev.ID(),
			"new_id", e.ID())
	}
	c.enums[name] = e
	return nil
}

// Lookup returns the enum registered under name, or false if none is.
func (c *Catalog) Lookup(name string) (*enumset.Enum, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.enums[name]
	return e, ok
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Sorted(maps.Keys(c.enums))
}

// Len returns the number of registered enums.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.enums)
}

// Clear removes every entry. This is primarily useful for testing.
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.enums = make(map[string]*enumset.Enum)
}

// defaultCatalog backs the package-level functions.
var defaultCatalog = NewCatalog(nil)

// Register stores e under name in the default catalog.
func Register(name string, e *enumset.Enum) error {
	return defaultCatalog.Register(name, e)
}

// Lookup returns the enum registered under name in the default catalog.
func Lookup(name string) (*enumset.Enum, bool) {
	return defaultCatalog.Lookup(name)
}

// Names returns the names registered in the default catalog, sorted.
func Names() []string {
	return defaultCatalog.Names()
}

// Clear resets the default catalog. This is primarily useful for testing.
func Clear() {
	defaultCatalog.Clear()
}
