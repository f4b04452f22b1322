// Package bfs provides tunable options and error definitions
// for breadth‐first search over a navgraph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/indoornav/room"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start room is not a node.
	ErrStartVertexNotFound = errors.New("bfs: start room not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a room the traversal did not reach.
	ErrNoPath = errors.New("bfs: room not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a room is enqueued, before visiting.
	// Receives the room key and its hop count from the start.
	OnEnqueue func(k room.Key, depth int)

	// OnDequeue is called immediately before visiting a room.
	OnDequeue func(k room.Key, depth int)

	// OnVisit is called when visiting a room. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(k room.Key, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor room.Key) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(room.Key, int) {},
		OnDequeue:      func(room.Key, int) {},
		OnVisit:        func(room.Key, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: func(_, _ room.Key) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(k room.Key, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(k room.Key, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(k room.Key, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given hop count (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor room.Key) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// SameFloor is a neighbor filter that ignores vertical links.
func SameFloor(curr, neighbor room.Key) bool { return curr.Floor == neighbor.Floor }

// BFSResult holds the outcome of a BFS traversal:
//   - Order: rooms visited, in visit sequence.
//   - Depth: map from room to its hop count from the start.
//   - Parent: map from room to its predecessor in the BFS tree.
type BFSResult struct {
	Order  []room.Key
	Depth  map[room.Key]int
	Parent map[room.Key]room.Key
}

// Reached reports whether k was visited.
func (r *BFSResult) Reached(k room.Key) bool {
	_, ok := r.Depth[k]
	return ok
}

// PathTo reconstructs the fewest-hops path from the start room to dest.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest room.Key) ([]room.Key, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %s", ErrNoPath, dest)
	}
	// build reversed path
	path := []room.Key{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
