package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/room"
)

// Search runs A* from start to goal.
//
// Validation order: nil graph, missing start, missing goal. When start equals
// goal the result is the single-node path with zero cost.
func Search(g *navgraph.Graph, start, goal room.Key, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	startNode, ok := g.Node(start)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}
	goalNode, ok := g.Node(goal)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrGoalNotFound, goal)
	}

	r := &runner{
		g:       g,
		goal:    goalNode,
		options: cfg,
		gScore:  make(map[room.Key]float64, g.Len()),
		prev:    make(map[room.Key]room.Key, g.Len()),
		closed:  make(map[room.Key]bool, g.Len()),
		open:    make(openPQ, 0, g.Len()),
	}
	r.init(startNode)

	if !r.process() {
		return Result{Expanded: r.expanded}, fmt.Errorf("%w: %s → %s", ErrNoPath, start, goal)
	}

	return Result{
		Path:     r.reconstruct(start, goal),
		Cost:     r.gScore[goal],
		Expanded: r.expanded,
	}, nil
}

// runner holds the mutable state of one search.
type runner struct {
	g        *navgraph.Graph
	goal     *navgraph.Node
	options  Options
	gScore   map[room.Key]float64
	prev     map[room.Key]room.Key
	closed   map[room.Key]bool
	open     openPQ
	expanded int
}

func (r *runner) init(start *navgraph.Node) {
	heap.Init(&r.open)
	r.gScore[start.Key] = 0
	r.push(start, 0)
}

func (r *runner) push(n *navgraph.Node, g float64) {
	h := r.options.Heuristic(n, r.goal)
	heap.Push(&r.open, &openItem{
		key: n.Key,
		tag: n.Key.String(),
		g:   g,
		h:   h,
		f:   g + h,
	})
}

// process pops until the goal is closed (true) or the open set is empty (false).
func (r *runner) process() bool {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		if r.closed[item.key] {
			continue
		}
		// Stale entry: a better g was pushed later.
		if item.g > r.gScore[item.key] {
			continue
		}

		r.closed[item.key] = true
		r.expanded++
		r.options.OnExpand(item.key, item.g, item.f)

		if item.key == r.goal.Key {
			return true
		}
		r.relax(item.key)
	}

	return false
}

func (r *runner) relax(u room.Key) {
	node, _ := r.g.Node(u)
	gu := r.gScore[u]

	for _, nb := range node.Neighbors {
		if r.closed[nb.Key] {
			continue
		}
		candidate := gu + nb.Weight
		if old, seen := r.gScore[nb.Key]; seen && candidate >= old {
			continue
		}
		v, ok := r.g.Node(nb.Key)
		if !ok {
			continue
		}

		r.gScore[nb.Key] = candidate
		r.prev[nb.Key] = u
		r.options.OnRelax(u, nb.Key, candidate)
		r.push(v, candidate)
	}
}

func (r *runner) reconstruct(start, goal room.Key) []room.Key {
	path := []room.Key{goal}
	for cur := goal; cur != start; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// openItem is one open-set entry.
type openItem struct {
	key  room.Key
	tag  string
	g, h float64
	f    float64
}

// openPQ is a min-heap ordered by f, then h, then key string. Decrease-key is lazy:
// improved entries are pushed again and stale ones skipped on pop.
type openPQ []*openItem

func (pq openPQ) Len() int { return len(pq) }

func (pq openPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if fa, fb := quantize(a.f), quantize(b.f); fa != fb {
		return fa < fb
	}
	if ha, hb := quantize(a.h), quantize(b.h); ha != hb {
		return ha < hb
	}
	return a.tag < b.tag
}

func (pq openPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *openPQ) Push(x interface{}) { *pq = append(*pq, x.(*openItem)) }

func (pq *openPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// scoreQuantum is the resolution at which f and h scores count as tied.
const scoreQuantum = 1e-15

// quantize snaps a score onto the scoreQuantum grid. Scores that differ only
// by rounding noise share a cell and fall through to the next tie-break.
// Grid cells keep Less transitive, which a |a-b| tolerance would not; two
// scores closer than the quantum may still land in adjacent cells.
func quantize(x float64) float64 {
	return math.Round(x / scoreQuantum)
}
