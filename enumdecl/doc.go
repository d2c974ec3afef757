// Package enumdecl loads enum definitions from YAML declarations.
//
// A declaration is either a sequence of strings (self-valued mode):
//
//	- RED
//	- GREEN
//	- BLUE
//
// or a mapping from names to scalar values (explicit mode), whose document
// order becomes the enum's definition order:
//
//	DEBUG: 10
//	INFO: 20
//	WARN: 30
//
// A document can also declare several named enums at once (see ParseAll):
//
//	colors:
//	  - RED
//	  - GREEN
//	levels:
//	  DEBUG: 10
//	  INFO: 20
//
// Parsing produces only an enumset.Definition; all construction validation
// (non-empty, unique names, unique values in explicit mode) still happens in
// enumset.New. Constructed enums are never written back out — this package
// is a construction convenience, not a serialization format.
package enumdecl
