// Package dijkstra defines options and errors for the exact shortest-path
// search over a navgraph.Graph.
//
// Options:
//
//	– Source:           key of the starting room (must be present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; rooms beyond are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source room name was provided.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source room is not a node of the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrOptionViolation if an option was given an invalid value; it wraps
//	  ErrBadMaxDistance (MaxDistance < 0) or ErrBadInfThreshold (InfEdgeThreshold <= 0).
//	– ErrUnreachable     if ShortestPath cannot reach its target.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/indoornav/room"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the source room name is empty.
	ErrEmptySource = errors.New("dijkstra: source room name is empty")

	// ErrNilGraph indicates that a nil *navgraph.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified room is not a node of the graph.
	ErrVertexNotFound = errors.New("dijkstra: room not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrOptionViolation indicates that an option received an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable indicates that the target room cannot be reached from the source.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting room key (name must be non-empty, key present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – optional cap on distances to explore (rooms beyond are skipped).
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	Source           room.Key // The key of the source room
	ReturnPath       bool     // Whether to return the predecessor map
	MaxDistance      float64  // Maximum distance to explore
	InfEdgeThreshold float64  // Weight threshold above which edges are non-traversable

	err error // first invalid option, reported by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting room.
// Must be called to specify the starting room.
func Source(k room.Key) Option {
	return func(o *Options) {
		o.Source = k
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If false (default), the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Rooms whose shortest distance would exceed this value are not explored.
// Negative values make Dijkstra fail with ErrOptionViolation.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.fail(fmt.Errorf("%w: %w (got %g)", ErrOptionViolation, ErrBadMaxDistance, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold above which edges are
// considered non-traversable. Zero or negative values make Dijkstra fail
// with ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.fail(fmt.Errorf("%w: %w (got %g)", ErrOptionViolation, ErrBadInfThreshold, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// fail keeps the first option error.
func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source room.
//
// Defaults:
//   - Source:           <as passed> (validated in Dijkstra).
//   - ReturnPath:       false (predecessor map not returned).
//   - MaxDistance:      +Inf (explore all reachable rooms).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
func DefaultOptions(source room.Key) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}
