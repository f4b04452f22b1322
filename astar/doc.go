// Package astar finds a least-cost room sequence on a navgraph.Graph with A*.
//
// The search keeps an open set ordered by f = g + h, a closed set, a g-score map
// and a predecessor map. The default heuristic h is the Euclidean distance
// between a node's centroid and the goal's centroid, in the same native units
// as the edge weights.
//
// Tie-breaking: among open entries with equal f the one with the smaller h is
// expanded first (it is nearer the goal); remaining ties go to the
// lexicographically smaller key string ("name_F<floor>"). Results are therefore
// deterministic for graphs with symmetric alternatives.
//
// Admissibility: corridor-biased edges cost less than their Euclidean length
// (multiplier 0.8 by default), so h may over-estimate and a closed node is
// never reopened. In adversarial layouts the returned path can be up to
// 1/min-multiplier times the optimum. With every multiplier ≥ 1 the heuristic
// is consistent and the path is optimal. The dijkstra package provides the
// exact alternative over the same graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the lazy-decrease-key heap.
//   - Space: O(V + E).
package astar
