// Package loader provides per-request DataLoaders that batch the farm
// lookups REST listings need into single SQL calls.
package loader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/agrotiquiza-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type farmRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Farm, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	FarmByID *dataloader.Loader[int64, *domain.Farm]
}

// NewLoaders creates loaders backed by farms. Must be called per request:
// loaders cache results for their whole lifetime.
func NewLoaders(farms farmRepo) *Loaders {
	return &Loaders{
		FarmByID: dataloader.NewBatchedLoader(
			newFarmBatchFn(farms),
			dataloader.WithWait[int64, *domain.Farm](wait),
			dataloader.WithBatchCapacity[int64, *domain.Farm](maxBatch),
		),
	}
}

// FarmNames resolves ids to farm names. Unknown ids are absent from the map.
func (l *Loaders) FarmNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	farms, errs := l.FarmByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("load farms: %w", err)
		}
	}
	for _, f := range farms {
		if f != nil {
			names[f.ID] = f.Name
		}
	}
	return names, nil
}

func newFarmBatchFn(repo farmRepo) dataloader.BatchFunc[int64, *domain.Farm] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.Farm] {
		farms, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Farm](len(keys), err)
		}

		byID := make(map[int64]*domain.Farm, len(farms))
		for _, f := range farms {
			byID[f.ID] = f
		}

		results := make([]*dataloader.Result[*domain.Farm], len(keys))
		for i, key := range keys {
			results[i] = &dataloader.Result[*domain.Farm]{Data: byID[key]}
		}
		return results
	}
}

// errorResults returns n results all carrying err.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context. Returns nil when the
// middleware is not installed.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware instantiates per-request loaders.
func Middleware(farms farmRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(farms))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
