// Package dicmo defines the DiCMOBiGraph view type, its constructors'
// sentinel errors, and the plain-digraph construction path.
//
// Errors:
//
//	ErrNilGraph    - nil bipartite graph passed to a constructor.
//	ErrNilMatching - nil matching passed to a constructor.
//	ErrVertexRange - vertex id outside the view's vertex set.
//	ErrNotPlain    - AddEdge on a matching-backed view.
//
// Backward- and inverse-dependent queries propagate the underlying sentinel
// errors bipartite.ErrIncomplete and matching.ErrNoInverse unchanged.
package dicmo

import "errors"

// Sentinel errors for contracted oriented views.
var (
	// ErrNilGraph indicates a nil *bipartite.Graph passed to a constructor.
	ErrNilGraph = errors.New("dicmo: bipartite graph is nil")

	// ErrNilMatching indicates a nil *matching.Matching passed to a
	// constructor.
	ErrNilMatching = errors.New("dicmo: matching is nil")

	// ErrVertexRange indicates a vertex id outside 1..NVertices.
	ErrVertexRange = errors.New("dicmo: vertex out of range")

	// ErrNotPlain indicates AddEdge on a matching-backed view; only plain
	// digraphs built by NewEmpty are mutable.
	ErrNotPlain = errors.New("dicmo: edges can only be added to a plain digraph")
)
