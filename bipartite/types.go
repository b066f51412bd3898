// Package bipartite defines the core bipartite graph type, its vertex-class
// constants, construction options, and sentinel errors.
//
// A bipartite graph connects two disjoint, independently-numbered vertex
// classes: sources 1..NSrcs and destinations 1..NDsts. The graph owns a
// forward adjacency table (per source, a sorted duplicate-free list of
// destinations) and an optional backward adjacency table (the exact
// transpose), materialized on demand by Complete.
//
// Errors:
//
//	ErrIncomplete    - a backward-dependent operation before Complete.
//	ErrSrcRange      - source vertex id out of range.
//	ErrDstRange      - destination vertex id out of range.
//	ErrEdgeNotFound  - removing an edge that does not exist.
//	ErrBadVertexKind - unrecognized vertex class passed to AddVertex.
//	ErrNoMetadata    - metadata query on a graph without a metadata table.
package bipartite

import "errors"

// Sentinel errors for bipartite graph operations.
var (
	// ErrIncomplete indicates a backward-adjacency query or an inverse view
	// was requested before the backward table was materialized.
	ErrIncomplete = errors.New("bipartite: backward table not materialized; call Complete first")

	// ErrSrcRange indicates a source vertex id outside 1..NSrcs.
	ErrSrcRange = errors.New("bipartite: source vertex out of range")

	// ErrDstRange indicates a destination vertex id outside 1..NDsts.
	ErrDstRange = errors.New("bipartite: destination vertex out of range")

	// ErrEdgeNotFound indicates an attempt to remove a non-existent edge.
	ErrEdgeNotFound = errors.New("bipartite: edge not found")

	// ErrBadVertexKind indicates an unrecognized VertexKind tag.
	ErrBadVertexKind = errors.New("bipartite: unknown vertex kind")

	// ErrNoMetadata indicates an edge-metadata operation on a graph that was
	// constructed without WithMetadata.
	ErrNoMetadata = errors.New("bipartite: metadata table not attached")
)

// VertexKind selects one of the two vertex classes in AddVertex.
type VertexKind int

const (
	// VertexSrc addresses the source class (rows of the forward table).
	VertexSrc VertexKind = iota + 1

	// VertexDst addresses the destination class.
	VertexDst
)

// String returns the class name for diagnostics.
func (k VertexKind) String() string {
	switch k {
	case VertexSrc:
		return "src"
	case VertexDst:
		return "dst"
	default:
		return "unknown"
	}
}

// Edge is one source→destination incidence, as produced by edge iteration.
type Edge struct {
	// Src is the source vertex id.
	Src int

	// Dst is the destination vertex id.
	Dst int
}

// GraphOption configures graph construction.
type GraphOption func(*config)

type config struct {
	backward bool
	metadata bool
}

// WithBackwardTable materializes the backward adjacency table at construction
// time, making the graph complete from the start.
func WithBackwardTable() GraphOption {
	return func(c *config) { c.backward = true }
}

// WithMetadata attaches a per-edge metadata table mirroring the forward
// adjacency shape. AddEdge then accepts an optional metadata value inserted
// in lockstep with the edge.
func WithMetadata() GraphOption {
	return func(c *config) { c.metadata = true }
}
