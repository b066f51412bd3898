// Package matching defines the Matching type, its per-destination Entry sum
// type, matcher options, and sentinel errors.
//
// A Matching is a partial injective mapping between destination and source
// ids. Each entry is either unassigned (optionally carrying a user payload
// explaining why) or a positive source id. An optional inverse table mirrors
// the mapping from the source side and is built on demand by Complete.
//
// Errors:
//
//	ErrNoInverse - an inverse-dependent operation before Complete.
//	ErrDstRange  - destination id outside the matching's range.
//	ErrBadSource - non-positive source id in an assignment.
//	ErrNilGraph  - nil graph passed to the matcher.
package matching

import "errors"

// Sentinel errors for matching operations.
var (
	// ErrNoInverse indicates an inverse-dependent operation (Inverse,
	// InverseOf) before the inverse table was built by Complete.
	ErrNoInverse = errors.New("matching: inverse table not built; call Complete first")

	// ErrDstRange indicates a destination id outside 1..Len.
	ErrDstRange = errors.New("matching: destination id out of range")

	// ErrBadSource indicates a non-positive source id in an assignment.
	ErrBadSource = errors.New("matching: source id must be positive")

	// ErrNilGraph indicates a nil *bipartite.Graph passed to the matcher.
	ErrNilGraph = errors.New("matching: graph is nil")
)

// Entry is the value stored per destination: unassigned, unassigned with a
// payload, or a matched source id. The zero value is plain unassigned.
type Entry struct {
	src     int
	payload any
}

// Unassigned returns the plain unassigned entry.
func Unassigned() Entry { return Entry{} }

// UnassignedWith returns an unassigned entry carrying a user payload, e.g. a
// structural reason why no source could be assigned.
func UnassignedWith(payload any) Entry { return Entry{payload: payload} }

// Assigned returns an entry matched to the given source id.
func Assigned(src int) Entry { return Entry{src: src} }

// Assigned reports whether the entry carries a source id.
func (e Entry) Assigned() bool { return e.src >= 1 }

// Src returns the matched source id, or 0 when unassigned.
func (e Entry) Src() int { return e.src }

// Payload returns the user payload of an unassigned entry, nil otherwise.
func (e Entry) Payload() any { return e.payload }

// Option configures MaximumMatching.
type Option func(*config)

type config struct {
	srcFilter func(int) bool
	dstFilter func(int) bool
}

// WithSrcFilter restricts the matcher to sources accepted by f.
func WithSrcFilter(f func(int) bool) Option {
	return func(c *config) { c.srcFilter = f }
}

// WithDstFilter restricts augmenting paths to destinations accepted by f.
func WithDstFilter(f func(int) bool) Option {
	return func(c *config) { c.dstFilter = f }
}
