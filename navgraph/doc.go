// Package navgraph builds the weighted room adjacency graph used for route search.
//
// The input data has no explicit topology, so adjacency is inferred from
// centroid proximity and room roles alone:
//
//	pair                      threshold (default, degrees)   weight
//	corridor ↔ corridor       0.002                          d × 0.8
//	corridor ↔ regular        0.0015                         d × 0.9
//	regular  ↔ regular        0.0008                         d × 1.2
//	floor F  ↔ floor F±1      0.003 (one end stairs/lift)    d × 2
//
// d is the Euclidean distance between centroids in native coordinate units
// (decimal degrees for WGS84 input), not metres. Stairs and elevators count as
// regular rooms for same-floor pairs. The differing thresholds and multipliers
// make the search prefer corridors without a separate routing preference.
//
// Rooms whose Role is not navigable are never nodes. With WithTargetFloor the
// graph holds only that floor's rooms; otherwise every floor is included and
// vertical connectors can bridge adjacent floors.
//
// Neighbor lists are built independently for each node. The current criteria
// are symmetric, so every edge has a twin, but consumers must not rely on it.
//
// Complexity: O(V²) pair checks, O(V + E) memory.
package navgraph
