package navgraph

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/indoornav/room"
)

// Sentinel errors for graph construction.
var (
	// ErrNilIndex indicates that Build received a nil room index.
	ErrNilIndex = errors.New("navgraph: room index is nil")

	// ErrOptionViolation indicates an invalid threshold or multiplier.
	ErrOptionViolation = errors.New("navgraph: invalid option supplied")
)

// Default link parameters, in native coordinate units.
const (
	DefaultCorridorThreshold  = 0.002
	DefaultMixedThreshold     = 0.0015
	DefaultRoomThreshold      = 0.0008
	DefaultVerticalThreshold  = 0.003
	DefaultCorridorMultiplier = 0.8
	DefaultMixedMultiplier    = 0.9
	DefaultRoomMultiplier     = 1.2
	DefaultVerticalMultiplier = 2.0
)

// Link describes when a pair of rooms connects and how the edge is weighted.
type Link struct {
	// Threshold is the exclusive upper bound on centroid distance.
	Threshold float64 `json:"threshold"`

	// Multiplier scales the centroid distance into the edge weight.
	Multiplier float64 `json:"multiplier"`
}

// Options configures Build.
type Options struct {
	// TargetFloor restricts the graph to one floor when non-nil.
	TargetFloor *int

	Corridor Link // corridor ↔ corridor
	Mixed    Link // corridor ↔ regular
	Room     Link // regular ↔ regular
	Vertical Link // adjacent floors through a vertical connector

	err error
}

// Option customises Build.
type Option func(*Options)

// DefaultOptions returns the stock thresholds and multipliers, all floors.
func DefaultOptions() Options {
	return Options{
		Corridor: Link{Threshold: DefaultCorridorThreshold, Multiplier: DefaultCorridorMultiplier},
		Mixed:    Link{Threshold: DefaultMixedThreshold, Multiplier: DefaultMixedMultiplier},
		Room:     Link{Threshold: DefaultRoomThreshold, Multiplier: DefaultRoomMultiplier},
		Vertical: Link{Threshold: DefaultVerticalThreshold, Multiplier: DefaultVerticalMultiplier},
	}
}

// WithTargetFloor keeps only the rooms on floor f.
func WithTargetFloor(f int) Option {
	return func(o *Options) { o.TargetFloor = &f }
}

// WithCorridorLink sets the corridor ↔ corridor link.
func WithCorridorLink(l Link) Option {
	return func(o *Options) { o.setLink(&o.Corridor, "corridor", l) }
}

// WithMixedLink sets the corridor ↔ regular link.
func WithMixedLink(l Link) Option {
	return func(o *Options) { o.setLink(&o.Mixed, "mixed", l) }
}

// WithRoomLink sets the regular ↔ regular link.
func WithRoomLink(l Link) Option {
	return func(o *Options) { o.setLink(&o.Room, "room", l) }
}

// WithVerticalLink sets the cross-floor link.
func WithVerticalLink(l Link) Option {
	return func(o *Options) { o.setLink(&o.Vertical, "vertical", l) }
}

func (o *Options) setLink(dst *Link, name string, l Link) {
	if l.Threshold <= 0 || l.Multiplier <= 0 {
		o.err = fmt.Errorf("%w: %s link needs positive threshold and multiplier (got %g, %g)",
			ErrOptionViolation, name, l.Threshold, l.Multiplier)
		return
	}
	*dst = l
}

// Neighbor is one outgoing edge.
type Neighbor struct {
	// Key is the target node.
	Key room.Key `json:"key"`

	// Weight is the traversal cost in native units.
	Weight float64 `json:"weight"`

	// Corridor reports whether the target is a corridor.
	Corridor bool `json:"corridor"`
}

// Node is a navigable room with its outgoing edges.
type Node struct {
	Key       room.Key   `json:"key"`
	Room      *room.Room `json:"-"`
	Centroid  orb.Point  `json:"centroid"`
	Corridor  bool       `json:"corridor"`
	Neighbors []Neighbor `json:"neighbors"`
}

// Graph is an immutable adjacency structure over rooms.
type Graph struct {
	nodes map[room.Key]*Node
	keys  []room.Key
	edges int
	opts  Options
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.keys) }

// EdgeCount returns the number of directed neighbor entries.
func (g *Graph) EdgeCount() int { return g.edges }

// Node returns the node stored under k.
func (g *Graph) Node(k room.Key) (*Node, bool) {
	n, ok := g.nodes[k]
	return n, ok
}

// Has reports whether k is a node of g.
func (g *Graph) Has(k room.Key) bool {
	_, ok := g.nodes[k]
	return ok
}

// Keys returns every node key, ordered by floor then name.
func (g *Graph) Keys() []room.Key { return append([]room.Key(nil), g.keys...) }

// Options returns the options the graph was built with.
func (g *Graph) Options() Options { return g.opts }

// MinMultiplier returns the smallest weight multiplier in use. Below 1 the
// Euclidean heuristic over-estimates some remaining costs.
func (g *Graph) MinMultiplier() float64 {
	m := g.opts.Corridor.Multiplier
	for _, l := range []Link{g.opts.Mixed, g.opts.Room, g.opts.Vertical} {
		if l.Multiplier < m {
			m = l.Multiplier
		}
	}
	return m
}
