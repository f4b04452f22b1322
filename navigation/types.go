package navigation

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/enhance"
	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/observe"
	"github.com/katalvlaran/indoornav/room"
	"github.com/katalvlaran/indoornav/route"
)

// Sentinel errors returned by the pipeline.
var (
	ErrEmptyRoomName   = errors.New("navigation: room name is empty")
	ErrRoomNotFound    = errors.New("navigation: room not found")
	ErrNotInGraph      = errors.New("navigation: room not part of the navigation graph")
	ErrNoPath          = errors.New("navigation: no path between rooms")
	ErrOptionViolation = errors.New("navigation: invalid option supplied")
)

// Query asks for a route between two rooms.
type Query struct {
	Start room.Key `json:"start" yaml:"start"`
	End   room.Key `json:"end" yaml:"end"`

	// TargetFloor restricts the graph to one floor; nil searches all floors.
	TargetFloor *int `json:"targetFloor,omitempty" yaml:"targetFloor,omitempty"`
}

// Route is a found path.
type Route struct {
	QueryID string   `json:"queryId"`
	Start   room.Key `json:"start"`
	End     room.Key `json:"end"`

	// Keys is the room sequence chosen by the search.
	Keys []room.Key `json:"keys"`

	// Points is the renderable route: room centroids plus inserted waypoints.
	Points []route.Point `json:"points"`

	// Cost is the search cost in native units (weighted degrees).
	Cost float64 `json:"cost"`

	// Expanded is the number of nodes the search closed.
	Expanded int `json:"expanded"`
}

// Distance is the planar length of Points in native units.
func (r *Route) Distance() float64 { return route.Distance(r.Points) }

// Coordinates3D returns [lon, lat, elevation] triples for 3D consumers.
func (r *Route) Coordinates3D() [][3]float64 {
	out := make([][3]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = [3]float64{p.Coords[0], p.Coords[1], p.Elevation}
	}
	return out
}

// Itinerary is a route with its directions and statistics.
type Itinerary struct {
	Route      *Route                 `json:"route"`
	Directions []directions.Direction `json:"directions"`
	Stats      directions.Stats       `json:"stats"`
}

// Result pairs a batch query with its outcome.
type Result struct {
	Query     Query
	Itinerary *Itinerary
	Err       error
}

// Strategy selects the search algorithm.
type Strategy string

const (
	// StrategyAStar is the default corridor-biased A* search.
	StrategyAStar Strategy = "astar"

	// StrategyDijkstra is the exact search over the same graph.
	StrategyDijkstra Strategy = "dijkstra"
)

// Options configures an Engine.
type Options struct {
	TargetFloor *int
	Graph       []navgraph.Option
	Enhance     []enhance.Option
	Directions  []directions.Option
	Waypoints   bool
	Strategy    Strategy
	Observer    observe.Observer
	Tracer      trace.Tracer
	Concurrency int

	err error
}

// Option customises an Engine.
type Option func(*Options)

// DefaultOptions returns A* with waypoints, no observer, the global tracer
// and a batch concurrency of 4.
func DefaultOptions() Options {
	return Options{
		Waypoints:   true,
		Strategy:    StrategyAStar,
		Observer:    observe.Nop,
		Tracer:      tracer,
		Concurrency: 4,
	}
}

// WithTargetFloor sets the floor filter used by queries without their own.
func WithTargetFloor(f int) Option {
	return func(o *Options) { o.TargetFloor = &f }
}

// WithGraphOptions appends navgraph options (thresholds, multipliers).
func WithGraphOptions(opts ...navgraph.Option) Option {
	return func(o *Options) { o.Graph = append(o.Graph, opts...) }
}

// WithEnhanceOptions appends waypoint options.
func WithEnhanceOptions(opts ...enhance.Option) Option {
	return func(o *Options) { o.Enhance = append(o.Enhance, opts...) }
}

// WithDirectionsOptions appends directions options.
func WithDirectionsOptions(opts ...directions.Option) Option {
	return func(o *Options) { o.Directions = append(o.Directions, opts...) }
}

// WithoutWaypoints returns bare room centroids.
func WithoutWaypoints() Option {
	return func(o *Options) { o.Waypoints = false }
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case StrategyAStar, StrategyDijkstra:
			o.Strategy = s
		default:
			o.err = fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
		}
	}
}

// WithObserver sets the stage observer; nil restores Nop.
func WithObserver(obs observe.Observer) Option {
	return func(o *Options) {
		if obs == nil {
			obs = observe.Nop
		}
		o.Observer = obs
	}
}

// WithTracerProvider takes the tracer from tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.Tracer = tp.Tracer(tracerName)
		}
	}
}

// WithConcurrency bounds the number of queries Routes runs at once.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: concurrency must be at least 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Concurrency = n
	}
}
