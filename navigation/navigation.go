package navigation

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/indoornav/feature"
)

// FindRoute builds an engine over features and answers a single query.
func FindRoute(ctx context.Context, features []feature.Feature, q Query, opts ...Option) (*Route, error) {
	e, err := New(ctx, features, opts...)
	if err != nil {
		return nil, err
	}
	return e.Route(ctx, q)
}

// Plan builds an engine over features and returns a full itinerary for q.
func Plan(ctx context.Context, features []feature.Feature, q Query, opts ...Option) (*Itinerary, error) {
	e, err := New(ctx, features, opts...)
	if err != nil {
		return nil, err
	}
	return e.Plan(ctx, q)
}

// FindRoutes plans every query over one shared engine.
func FindRoutes(ctx context.Context, features []feature.Feature, queries []Query, opts ...Option) ([]Result, error) {
	e, err := New(ctx, features, opts...)
	if err != nil {
		return nil, err
	}
	return e.Routes(ctx, queries)
}

// Routes plans queries concurrently, at most Options.Concurrency at a time.
// Per-query failures are kept in Result.Err and do not stop the batch; only
// cancellation of ctx is returned as an error. Results keep query order.
func (e *Engine) Routes(ctx context.Context, queries []Query) ([]Result, error) {
	results := make([]Result, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.Concurrency)

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			it, err := e.Plan(gctx, q)
			results[i] = Result{Query: q, Itinerary: it, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
