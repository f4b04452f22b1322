package navigation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/indoornav/astar"
	"github.com/katalvlaran/indoornav/bfs"
	"github.com/katalvlaran/indoornav/dijkstra"
	"github.com/katalvlaran/indoornav/directions"
	"github.com/katalvlaran/indoornav/enhance"
	"github.com/katalvlaran/indoornav/feature"
	"github.com/katalvlaran/indoornav/navgraph"
	"github.com/katalvlaran/indoornav/observe"
	"github.com/katalvlaran/indoornav/room"
	"github.com/katalvlaran/indoornav/route"
)

const tracerName = "indoornav.navigation"

var tracer = otel.Tracer(tracerName)

// Engine answers route queries over one feature collection.
// It is safe for concurrent use.
type Engine struct {
	ix      *room.Index
	options Options

	graphs sync.Map // graphKey → *navgraph.Graph
	flight singleflight.Group
}

// New groups features into rooms and returns an engine over them. ctx is
// handed to the observer with the index event.
func New(ctx context.Context, features []feature.Feature, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	begin := time.Now()
	ix := room.Group(features)
	cfg.Observer.Observe(ctx, observe.Event{
		Stage:    observe.StageIndex,
		Duration: time.Since(begin),
		Rooms:    ix.Len(),
	})

	return &Engine{ix: ix, options: cfg}, nil
}

// Index returns the room index the engine was built from.
func (e *Engine) Index() *room.Index { return e.ix }

// Components groups the rooms of the graph for floor (nil for all floors)
// into connected sets. Rooms in different sets cannot reach each other.
func (e *Engine) Components(floor *int) ([][]room.Key, error) {
	g, err := e.graph(floor)
	if err != nil {
		return nil, err
	}
	return bfs.Components(g)
}

// Route finds the room sequence for q and resolves it into route points.
func (e *Engine) Route(ctx context.Context, q Query) (*Route, error) {
	r, _, err := e.run(ctx, q, false)
	return r, err
}

// Plan is Route followed by direction generation and statistics.
func (e *Engine) Plan(ctx context.Context, q Query) (*Itinerary, error) {
	_, it, err := e.run(ctx, q, true)
	return it, err
}

// query carries per-query telemetry state.
type query struct {
	id   string
	q    Query
	span trace.Span
	obs  observe.Observer
}

func (qs *query) stage(ctx context.Context, ev observe.Event, begin time.Time) {
	ev.QueryID = qs.id
	ev.Duration = time.Since(begin)
	qs.obs.Observe(ctx, ev)
	qs.span.AddEvent(string(ev.Stage), trace.WithAttributes(
		attribute.Int64("duration_us", ev.Duration.Microseconds()),
		attribute.Int("nodes", ev.Nodes),
		attribute.Int("expanded", ev.Expanded),
		attribute.Int("points", ev.Points),
	))
}

func (e *Engine) run(ctx context.Context, q Query, plan bool) (*Route, *Itinerary, error) {
	if q.TargetFloor == nil {
		q.TargetFloor = e.options.TargetFloor
	}
	qs := &query{id: uuid.NewString(), q: q, obs: e.options.Observer}

	ctx, qs.span = e.options.Tracer.Start(ctx, "navigation.route", trace.WithAttributes(
		attribute.String("query.id", qs.id),
		attribute.String("query.start", q.Start.String()),
		attribute.String("query.end", q.End.String()),
		attribute.String("search.strategy", string(e.options.Strategy)),
	))
	defer qs.span.End()

	begin := time.Now()
	r, it, err := e.pipeline(ctx, qs, plan)

	final := observe.Event{Stage: observe.StageRoute, Start: q.Start, End: q.End, Err: err}
	if r != nil {
		final.Points, final.Cost, final.Expanded = len(r.Points), r.Cost, r.Expanded
	}
	qs.stage(ctx, final, begin)

	if err != nil {
		qs.span.RecordError(err)
		qs.span.SetStatus(codes.Error, err.Error())
		return nil, nil, err
	}
	qs.span.SetAttributes(
		attribute.Float64("route.cost", r.Cost),
		attribute.Int("route.points", len(r.Points)),
		attribute.IntSlice("route.floors", route.Floors(r.Points)),
	)
	return r, it, nil
}

func (e *Engine) pipeline(ctx context.Context, qs *query, plan bool) (*Route, *Itinerary, error) {
	q := qs.q
	if err := e.validate(q); err != nil {
		return nil, nil, err
	}

	begin := time.Now()
	g, err := e.graph(q.TargetFloor)
	qs.stage(ctx, observe.Event{Stage: observe.StageGraph, Nodes: nodes(g), Edges: edges(g), Err: err}, begin)
	if err != nil {
		return nil, nil, err
	}
	for _, k := range []room.Key{q.Start, q.End} {
		if !g.Has(k) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotInGraph, k)
		}
	}

	begin = time.Now()
	keys, cost, expanded, err := e.search(g, q.Start, q.End)
	qs.stage(ctx, observe.Event{Stage: observe.StageSearch, Expanded: expanded, Cost: cost, Err: err}, begin)
	if err != nil {
		return nil, nil, err
	}

	begin = time.Now()
	points, err := route.Resolve(g, keys)
	if err != nil {
		return nil, nil, err
	}
	if e.options.Waypoints {
		points = enhance.AddWaypoints(points, e.options.Enhance...)
	}
	qs.stage(ctx, observe.Event{Stage: observe.StageEnhance, Points: len(points)}, begin)

	r := &Route{
		QueryID:  qs.id,
		Start:    q.Start,
		End:      q.End,
		Keys:     keys,
		Points:   points,
		Cost:     cost,
		Expanded: expanded,
	}
	if !plan {
		return r, nil, nil
	}

	begin = time.Now()
	it := &Itinerary{
		Route:      r,
		Directions: directions.Generate(points, e.options.Directions...),
		Stats:      directions.CalculateStats(points, e.options.Directions...),
	}
	qs.stage(ctx, observe.Event{Stage: observe.StageDirections, Points: len(it.Directions)}, begin)

	return r, it, nil
}

// validate checks names and presence in the collection.
func (e *Engine) validate(q Query) error {
	for _, k := range []room.Key{q.Start, q.End} {
		if k.Name == "" {
			return ErrEmptyRoomName
		}
		if _, ok := e.ix.Get(k); !ok {
			if others := e.ix.Find(k.Name); len(others) > 0 {
				return fmt.Errorf("%w: %s (present on %v)", ErrRoomNotFound, k, others)
			}
			return fmt.Errorf("%w: %s", ErrRoomNotFound, k)
		}
	}
	return nil
}

func (e *Engine) search(g *navgraph.Graph, start, end room.Key) ([]room.Key, float64, int, error) {
	if e.options.Strategy == StrategyDijkstra {
		dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(start), dijkstra.WithReturnPath())
		if err != nil {
			return nil, 0, 0, err
		}
		settled := 0
		for _, d := range dist {
			if !math.IsInf(d, 1) {
				settled++
			}
		}
		path, err := dijkstra.PathTo(prev, start, end)
		if err != nil {
			return nil, 0, settled, fmt.Errorf("%w: %w", ErrNoPath, err)
		}
		return path, dist[end], settled, nil
	}

	res, err := astar.Search(g, start, end)
	if errors.Is(err, astar.ErrNoPath) {
		return nil, 0, res.Expanded, fmt.Errorf("%w: %w", ErrNoPath, err)
	}
	if err != nil {
		return nil, 0, res.Expanded, err
	}
	return res.Path, res.Cost, res.Expanded, nil
}

type graphKey struct {
	all   bool
	floor int
}

// graph returns the cached graph for the floor filter, building it once.
func (e *Engine) graph(floor *int) (*navgraph.Graph, error) {
	gk := graphKey{all: true}
	if floor != nil {
		gk = graphKey{floor: *floor}
	}
	if g, ok := e.graphs.Load(gk); ok {
		return g.(*navgraph.Graph), nil
	}

	v, err, _ := e.flight.Do(fmt.Sprint(gk), func() (interface{}, error) {
		opts := e.options.Graph
		if floor != nil {
			opts = append(append([]navgraph.Option(nil), opts...), navgraph.WithTargetFloor(*floor))
		}
		g, err := navgraph.Build(e.ix, opts...)
		if err != nil {
			return nil, err
		}
		e.graphs.Store(gk, g)
		return g, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*navgraph.Graph), nil
}

func nodes(g *navgraph.Graph) int {
	if g == nil {
		return 0
	}
	return g.Len()
}

func edges(g *navgraph.Graph) int {
	if g == nil {
		return 0
	}
	return g.EdgeCount()
}
