package observe

import (
	"context"
	"log/slog"
	"time"

	"github.com/katalvlaran/indoornav/room"
)

// Stage names a step of the navigation pipeline.
type Stage string

const (
	StageIndex      Stage = "index"
	StageGraph      Stage = "graph"
	StageSearch     Stage = "search"
	StageEnhance    Stage = "enhance"
	StageDirections Stage = "directions"

	// StageRoute is reported once per query, after every other stage.
	StageRoute Stage = "route"
)

// Event describes one finished stage. Counters not relevant to a stage are zero.
type Event struct {
	QueryID  string
	Stage    Stage
	Start    room.Key
	End      room.Key
	Duration time.Duration

	Rooms    int
	Nodes    int
	Edges    int
	Expanded int
	Points   int
	Cost     float64

	Err error
}

// Outcome classifies the event for metrics: "ok" or "error".
func (e Event) Outcome() string {
	if e.Err != nil {
		return "error"
	}
	return "ok"
}

// Observer receives pipeline events. Implementations must be safe for
// concurrent use when queries run in parallel.
type Observer interface {
	Observe(ctx context.Context, e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, e Event)

// Observe calls f.
func (f ObserverFunc) Observe(ctx context.Context, e Event) { f(ctx, e) }

// Nop discards every event.
var Nop Observer = ObserverFunc(func(context.Context, Event) {})

type multi []Observer

func (m multi) Observe(ctx context.Context, e Event) {
	for _, o := range m {
		o.Observe(ctx, e)
	}
}

// Multi forwards each event to every non-nil observer in order.
func Multi(observers ...Observer) Observer {
	var m multi
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	switch len(m) {
	case 0:
		return Nop
	case 1:
		return m[0]
	}
	return m
}

type slogObserver struct {
	logger *slog.Logger
}

// NewSlog logs stage events at debug level and route events at info level,
// or at warn level when they carry an error. A nil logger uses slog.Default().
func NewSlog(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogObserver{logger: logger}
}

func (s *slogObserver) Observe(ctx context.Context, e Event) {
	attrs := []slog.Attr{
		slog.String("query_id", e.QueryID),
		slog.String("stage", string(e.Stage)),
		slog.Duration("duration", e.Duration),
	}
	switch e.Stage {
	case StageIndex:
		attrs = append(attrs, slog.Int("rooms", e.Rooms))
	case StageGraph:
		attrs = append(attrs, slog.Int("nodes", e.Nodes), slog.Int("edges", e.Edges))
	case StageSearch:
		attrs = append(attrs, slog.Int("expanded", e.Expanded), slog.Float64("cost", e.Cost))
	case StageEnhance, StageDirections:
		attrs = append(attrs, slog.Int("points", e.Points))
	case StageRoute:
		attrs = append(attrs,
			slog.String("from", e.Start.String()),
			slog.String("to", e.End.String()),
			slog.Int("points", e.Points),
			slog.Float64("cost", e.Cost),
		)
	}

	level := slog.LevelDebug
	if e.Stage == StageRoute {
		level = slog.LevelInfo
	}
	if e.Err != nil {
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	s.logger.LogAttrs(ctx, level, "navigation stage finished", attrs...)
}
