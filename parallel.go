package graph

import (
	"context"
	"math/big"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	tracer = otel.Tracer("github.com/maisem/graph")
	meter  = otel.Meter("github.com/maisem/graph")

	queriesOnce sync.Once
	queries     metric.Int64Counter
)

func queryCounter() metric.Int64Counter {
	queriesOnce.Do(func() {
		c, err := meter.Int64Counter(
			"graph_batch_queries_total",
			metric.WithDescription("Number of queries run through batch helpers"),
		)
		if err != nil {
			otel.Handle(err)
			c = noop.Int64Counter{}
		}
		queries = c
	})
	return queries
}

// Parallel calls f for every element of in concurrently and returns the
// results in input order. At most limit calls run at once; limit <= 0
// means no limit. The first error cancels the context passed to the
// remaining calls and is returned. If ctx is cancelled, no new calls are
// started and ctx's error is returned.
func Parallel[I, O any](ctx context.Context, in []I, limit int, f func(context.Context, I) (O, error)) ([]O, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}
	out := make([]O, len(in))
	for i, v := range in {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			o, err := f(egCtx, v)
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Query is a start/goal pair for a batch search.
type Query[K comparable] struct {
	Start, Goal K
}

// Result is the answer to one Query. OK is false if the goal was
// unreachable.
type Result[K comparable, V any] struct {
	Query[K]
	Path Path[K, V]
	OK   bool
}

// ShortestPaths runs ShortestPath for each query concurrently over g, with
// at most limit searches in flight (limit <= 0 means no limit). walkable
// and cost are called from multiple goroutines.
func (g *Graph[K, V]) ShortestPaths(ctx context.Context, qs []Query[K], walkable Walkable[K], cost CostFunc[V], limit int) ([]Result[K, V], error) {
	ctx, span := tracer.Start(ctx, "graph.ShortestPaths", trace.WithAttributes(
		attribute.Int("graph.nodes", g.Len()),
		attribute.Int("graph.edges", g.NumEdges()),
		attribute.Int("graph.queries", len(qs)),
	))
	defer span.End()

	res, err := Parallel(ctx, qs, limit, func(_ context.Context, q Query[K]) (Result[K, V], error) {
		p, ok := g.ShortestPath(q.Start, q.Goal, walkable, cost)
		return Result[K, V]{Query: q, Path: p, OK: ok}, nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	queryCounter().Add(ctx, int64(len(qs)), metric.WithAttributes(attribute.String("query", "shortest_path")))
	return res, nil
}

// CountPathsBatch runs CountPaths for each query concurrently. It stops at
// the first error, e.g. a *CyclicGraphError.
func (g *Graph[K, V]) CountPathsBatch(ctx context.Context, qs []Query[K], walkable Walkable[K], limit int) ([]*big.Int, error) {
	ctx, span := tracer.Start(ctx, "graph.CountPathsBatch", trace.WithAttributes(
		attribute.Int("graph.nodes", g.Len()),
		attribute.Int("graph.queries", len(qs)),
	))
	defer span.End()

	res, err := Parallel(ctx, qs, limit, func(_ context.Context, q Query[K]) (*big.Int, error) {
		return g.CountPaths(q.Start, q.Goal, walkable)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	queryCounter().Add(ctx, int64(len(qs)), metric.WithAttributes(attribute.String("query", "count_paths")))
	return res, nil
}
