package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
	"github.com/omarkhal/dinehub/internal/interfaces"
)

// Result is a tagged fetch outcome. A failed fetch keeps its error instead
// of collapsing into an empty list, so callers can choose between degrading
// and alerting.
type Result struct {
	Categories []domain.Category
	Err        error
}

type Resolver struct {
	repo   interfaces.CategoryRepository
	logger logger.Logger
}

func NewResolver(repo interfaces.CategoryRepository, lgr logger.Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: lgr,
	}
}

// Fetch returns the visible categories for a restaurant: global defaults
// plus tenant-specific rows, ordered by display order with nulls last. A
// zero restaurant id short-circuits to an empty result without touching the
// backend.
func (r *Resolver) Fetch(ctx context.Context, restaurantID uuid.UUID) Result {
	if restaurantID == uuid.Nil {
		return Result{}
	}

	cats, err := r.repo.ListVisible(ctx, restaurantID)
	if err != nil {
		r.logger.Error("category_fetch_failed", "Failed to fetch categories", "", map[string]interface{}{
			"restaurant_id": restaurantID.String(),
		}, err)
		return Result{Err: err}
	}

	domain.SortCategories(cats)
	return Result{Categories: cats}
}

// View holds the latest fetched catalog for one consumer. Each refresh is
// tagged with a generation; a result whose generation is no longer the
// latest is discarded, so only the newest restaurant's fetch wins.
type View struct {
	resolver *Resolver

	mu         sync.Mutex
	generation uint64
	inFlight   int
	categories []domain.Category
	err        error
}

func NewView(resolver *Resolver) *View {
	return &View{resolver: resolver}
}

// Refresh fetches the catalog for restaurantID and installs the result
// unless a newer refresh superseded this one in the meantime.
func (v *View) Refresh(ctx context.Context, restaurantID uuid.UUID) {
	v.mu.Lock()
	v.generation++
	gen := v.generation
	v.inFlight++
	v.mu.Unlock()

	res := v.resolver.Fetch(ctx, restaurantID)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.inFlight--
	if gen != v.generation {
		return
	}
	v.categories = res.Categories
	v.err = res.Err
}

// Loading reports whether any refresh is still in flight.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.inFlight > 0
}

// Current returns the most recent non-stale result.
func (v *View) Current() ([]domain.Category, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.categories, v.err
}
