// Package dijkstra provides the exact shortest-path search over the room
// navigation graph built by navgraph.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source room to every
//     reachable room in O((V + E) log V) time, where V = |rooms| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest room.
//   - Supports optional path reconstruction, distance caps, and "impassable" edge thresholds.
//
// When to use:
//
//   - As the exact search strategy of a route query when the A* corridor
//     discount must not cost optimality.
//   - As the reference optimum when checking A* results.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source key has an empty name.
//   - ErrNilGraph:        a nil *navgraph.Graph was passed.
//   - ErrVertexNotFound:  the source (or ShortestPath target) is not a node.
//   - ErrNegativeWeight:  an edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  (panic) MaxDistance set to a negative value.
//   - ErrBadInfThreshold: (panic) InfEdgeThreshold set to zero or a negative value.
//   - ErrUnreachable:     ShortestPath target not reachable.
//
// API reference:
//
//	func Dijkstra(g *navgraph.Graph, opts ...Option) (dist map[room.Key]float64, prev map[room.Key]room.Key, err error)
//	func ShortestPath(g *navgraph.Graph, source, target room.Key) (path []room.Key, cost float64, err error)
//	func PathTo(prev map[room.Key]room.Key, source, target room.Key) ([]room.Key, error)
//
// Thread safety:
//
//   - A navgraph.Graph is immutable once built, so concurrent searches need no locking.
package dijkstra
