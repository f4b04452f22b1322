// Package bfs provides breadth-first search over a navgraph.Graph,
// returning hop counts, parent links, and visit order.
//
// What
//
//   - Explore rooms in non-decreasing hop count from a start room.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from room → hops from start
//   - Parent: map from room → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a room is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor
//     (SameFloor keeps a traversal on its start floor).
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Components partitions a graph into connected room groups.
//
// Why
//
//   - Floor-plan checks: rooms that share no component with the rest of the
//     building cannot be routed to, whatever the weights.
//   - Fewest-rooms paths, independent of distances.
//
// Determinism
//
//	Neighbors are stored in graph key order and enqueued in that order,
//	so the visit sequence is fully reproducible.
//
// Complexity (V = |rooms|, E = |edges|)
//
//   - Time:   O(V + E) per BFS; Components is O(V·(V + E)) in the worst case
//     of many singletons because each group is collected from a full key scan.
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(
//	    g, room.Key{Name: "Lobby", Floor: 0},
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterNeighbor(bfs.SameFloor),
//	    bfs.WithOnVisit(func(k room.Key, depth int) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start room is not a node.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for an unreached room.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
