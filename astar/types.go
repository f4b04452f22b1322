// Package astar defines the options, hooks and result types of the A* room search.
package astar

import (
	"errors"

	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/room"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *navgraph.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrStartNotFound indicates that the start key is not a node of the graph.
	ErrStartNotFound = errors.New("astar: start node not found in graph")

	// ErrGoalNotFound indicates that the goal key is not a node of the graph.
	ErrGoalNotFound = errors.New("astar: goal node not found in graph")

	// ErrNoPath indicates that the open set emptied before the goal was reached.
	ErrNoPath = errors.New("astar: no path between start and goal")
)

// Heuristic estimates the remaining cost from n to goal.
type Heuristic func(n, goal *navgraph.Node) float64

// Euclidean is the default heuristic: straight-line centroid distance in
// native units. Floors are ignored.
func Euclidean(n, goal *navgraph.Node) float64 {
	return planar.Distance(n.Centroid, goal.Centroid)
}

// Options configures Search.
type Options struct {
	// Heuristic estimates remaining cost; defaults to Euclidean.
	Heuristic Heuristic

	// OnExpand is called when a node is popped and closed, with its g and f scores.
	OnExpand func(k room.Key, g, f float64)

	// OnRelax is called whenever a neighbor's g score improves.
	OnRelax func(from, to room.Key, g float64)
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Euclidean heuristic and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnExpand:  func(room.Key, float64, float64) {},
		OnRelax:   func(room.Key, room.Key, float64) {},
	}
}

// WithHeuristic replaces the heuristic. A nil function is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run for every closed node.
func WithOnExpand(fn func(k room.Key, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run for every improved g score.
func WithOnRelax(fn func(from, to room.Key, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Path lists keys from start to goal inclusive.
	Path []room.Key

	// Cost is the sum of edge weights along Path.
	Cost float64

	// Expanded counts closed nodes.
	Expanded int
}
