// Package bfs provides breadth-first search over a navgraph.Graph,
// returning hop counts, parent links, and visit order.
//
// BFS explores rooms in increasing hop count from a start room,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/room"
)

// queueItem pairs a room with its BFS depth.
type queueItem struct {
	key   room.Key
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *navgraph.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[room.Key]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. Edge weights are ignored.
func BFS(g *navgraph.Graph, start room.Key, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start room
	if !g.Has(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	// Prepare walker
	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[room.Key]bool, n),
		res: &BFSResult{
			Order:  make([]room.Key, 0, n),
			Depth:  make(map[room.Key]int, n),
			Parent: make(map[room.Key]room.Key, n),
		},
	}

	// Seed queue with start room (no parent)
	w.enqueue(start, 0, nil)
	// Main loop
	return w.res, w.loop()
}

// Components partitions the nodes of g into connected groups. Groups and
// their members follow the graph's key order (floor, then name); each group
// is listed in the order of its smallest key.
func Components(g *navgraph.Graph, opts ...Option) ([][]room.Key, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[room.Key]bool, g.Len())
	var groups [][]room.Key
	for _, k := range g.Keys() {
		if seen[k] {
			continue
		}
		res, err := BFS(g, k, opts...)
		if err != nil {
			return nil, err
		}
		var group []room.Key
		for _, member := range g.Keys() {
			if res.Reached(member) {
				seen[member] = true
				group = append(group, member)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// enqueue marks k visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(k room.Key, d int, parent *room.Key) {
	w.visited[k] = true
	w.res.Depth[k] = d
	if parent != nil {
		w.res.Parent[k] = *parent
	}
	w.opts.OnEnqueue(k, d)
	w.queue = append(w.queue, queueItem{key: k, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.key, item.depth)
	return item
}

// visit records the room in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.key, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.key, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, in the node's neighbor order.
func (w *walker) enqueueNeighbors(item queueItem) {
	node, _ := w.graph.Node(item.key)
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nb := range node.Neighbors {
		if !w.opts.FilterNeighbor(item.key, nb.Key) {
			continue
		}
		// first time seen?
		if !w.visited[nb.Key] {
			w.enqueue(nb.Key, nextDepth, &item.key)
		}
	}
}
