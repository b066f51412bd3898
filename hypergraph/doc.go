// Package hypergraph is a thin convenience layer for hyperedge incidence
// structures, reusing the bipartite graph's vertex and edge primitives: each
// hyperedge is a bipartite source, each vertex a bipartite destination, plus
// an optional label per vertex.
//
// Overview:
//
//   - AddVertex / AddEdge build the structure incrementally; AddEdge accepts
//     any number of member vertices and returns the new hyperedge id.
//   - EdgeVertices and VertexEdges expose both incidence directions; the
//     backing bipartite graph is kept complete, so both are O(1) access.
//   - ConnectedComponents groups vertices connected through shared hyperedges
//     using a disjoint-set union-find with path compression and union by
//     rank. Components are reported in ascending order of their smallest
//     member, members ascending — fully deterministic.
//
// Complexity: AddEdge O(k log d) for k members; ConnectedComponents
// O((V+E) α(V)).
package hypergraph
