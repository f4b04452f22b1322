// Package dijkstra implements Dijkstra's shortest-path algorithm over the
// room navigation graph.
//
// It is the exact counterpart of the astar package: same graph, same weights,
// no heuristic. Route queries may select it when optimality matters more than
// the number of expanded rooms, and tests use it as the reference optimum.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable "wall".
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/room"
)

// Dijkstra computes shortest distances from Options.Source to every node of g.
//
// Returns:
//
//   - dist: map from room key to minimum distance (+Inf if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     Unreachable rooms and the source have no entry.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  0. every option value must be valid (ErrOptionViolation).
//  1. Source name must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *navgraph.Graph, opts ...Option) (map[room.Key]float64, map[room.Key]room.Key, error) {
	// 1) Build Options
	cfg := DefaultOptions(room.Key{})
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.err != nil {
		return nil, nil, cfg.err
	}
	if cfg.Source.Name == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Has(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges to detect negative weights.
	keys := g.Keys()
	for _, k := range keys {
		n, _ := g.Node(k)
		for _, nb := range n.Neighbors {
			if nb.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, k, nb.Key, nb.Weight)
			}
		}
	}

	// 4) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[room.Key]float64, len(keys)),
		prev:    make(map[room.Key]room.Key, len(keys)),
		visited: make(map[room.Key]bool, len(keys)),
		pq:      make(nodePQ, 0, len(keys)),
	}
	r.init(keys)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-cost key sequence from source to target and its cost.
// ErrUnreachable is returned when no path exists.
func ShortestPath(g *navgraph.Graph, source, target room.Key) ([]room.Key, float64, error) {
	dist, prev, err := Dijkstra(g, Source(source), WithReturnPath())
	if err != nil {
		return nil, 0, err
	}
	if !g.Has(target) {
		return nil, 0, fmt.Errorf("%w: %s", ErrVertexNotFound, target)
	}
	path, err := PathTo(prev, source, target)
	if err != nil {
		return nil, 0, err
	}

	return path, dist[target], nil
}

// PathTo rebuilds the source→target key sequence from a predecessor map.
func PathTo(prev map[room.Key]room.Key, source, target room.Key) ([]room.Key, error) {
	path := []room.Key{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %s → %s", ErrUnreachable, source, target)
		}
		cur = p
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *navgraph.Graph       // The input graph; read-only within Dijkstra.
	options Options               // Configuration options (Source, thresholds, etc.).
	dist    map[room.Key]float64  // Maps room → current best distance from Source.
	prev    map[room.Key]room.Key // Maps room → predecessor on the shortest path.
	visited map[room.Key]bool     // Tracks if a room's distance is finalized.
	pq      nodePQ                // Min-heap of *nodeItem for lazy priority queue.
}

// init sets every distance to +Inf, the source to zero, and seeds the heap.
func (r *runner) init(keys []room.Key) {
	for _, k := range keys {
		r.dist[k] = math.Inf(1)
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{key: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited room and relaxes its edges.
// It stops when the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.key] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.key] = true
		r.relax(item.key)
	}
}

// relax improves distances to u's neighbors, skipping impassable edges.
func (r *runner) relax(u room.Key) {
	node, _ := r.g.Node(u)
	for _, nb := range node.Neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Use "<" rather than "≤" to avoid pushing duplicates when distances are equal.
		if newDist >= r.dist[nb.Key] {
			continue
		}
		r.dist[nb.Key] = newDist
		r.prev[nb.Key] = u
		heap.Push(&r.pq, &nodeItem{key: nb.Key, dist: newDist})
	}
}

// nodeItem represents a room and its current distance from the source.
type nodeItem struct {
	key  room.Key
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then key for determinism.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].key.Less(pq[j].key)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
