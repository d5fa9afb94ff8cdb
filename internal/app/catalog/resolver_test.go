package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhal/dinehub/internal/adapter/logger"
	"github.com/omarkhal/dinehub/internal/domain"
)

type fakeCategoryRepo struct {
	listVisible func(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error)
	calls       int
	mu          sync.Mutex
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *domain.Category) error { return nil }
func (f *fakeCategoryRepo) Update(ctx context.Context, c *domain.Category) error { return nil }
func (f *fakeCategoryRepo) ListVisible(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.listVisible(ctx, restaurantID)
}

func intPtr(n int) *int { return &n }

func TestFetchSortsCategories(t *testing.T) {
	repo := &fakeCategoryRepo{
		listVisible: func(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
			return []domain.Category{
				{Name: "Drinks", DisplayOrder: intPtr(2)},
				{Name: "Specials", DisplayOrder: nil},
				{Name: "Pizza", DisplayOrder: intPtr(1)},
			}, nil
		},
	}

	r := NewResolver(repo, logger.NewCapture())
	res := r.Fetch(context.Background(), uuid.New())

	require.NoError(t, res.Err)
	require.Len(t, res.Categories, 3)
	assert.Equal(t, "Pizza", res.Categories[0].Name)
	assert.Equal(t, "Drinks", res.Categories[1].Name)
	assert.Equal(t, "Specials", res.Categories[2].Name)
}

func TestFetchNilRestaurantSkipsBackend(t *testing.T) {
	repo := &fakeCategoryRepo{
		listVisible: func(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
			t.Fatal("backend must not be called for a zero restaurant id")
			return nil, nil
		},
	}

	r := NewResolver(repo, logger.NewCapture())
	res := r.Fetch(context.Background(), uuid.Nil)

	assert.NoError(t, res.Err)
	assert.Empty(t, res.Categories)
	assert.Equal(t, 0, repo.calls)
}

func TestFetchKeepsError(t *testing.T) {
	backendErr := errors.New("connection refused")
	repo := &fakeCategoryRepo{
		listVisible: func(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
			return nil, backendErr
		},
	}

	capture := logger.NewCapture()
	r := NewResolver(repo, capture)
	res := r.Fetch(context.Background(), uuid.New())

	assert.ErrorIs(t, res.Err, backendErr)
	assert.Nil(t, res.Categories)
	require.NotNil(t, capture.Find("category_fetch_failed"))
}

// slowThenFastRepo blocks the first fetch until released, while later fetches
// return immediately with different data.
type slowThenFastRepo struct {
	mu      sync.Mutex
	calls   int
	started chan struct{}
	release chan struct{}
}

func (r *slowThenFastRepo) Create(ctx context.Context, c *domain.Category) error { return nil }
func (r *slowThenFastRepo) Update(ctx context.Context, c *domain.Category) error { return nil }
func (r *slowThenFastRepo) ListVisible(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
	r.mu.Lock()
	r.calls++
	n := r.calls
	r.mu.Unlock()

	if n == 1 {
		close(r.started)
		<-r.release
		return []domain.Category{{Name: "Stale"}}, nil
	}
	return []domain.Category{{Name: "Fresh"}}, nil
}

func TestViewDiscardsStaleFetch(t *testing.T) {
	repo := &slowThenFastRepo{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	v := NewView(NewResolver(repo, logger.NewCapture()))

	done := make(chan struct{})
	go func() {
		v.Refresh(context.Background(), uuid.New())
		close(done)
	}()
	<-repo.started
	assert.True(t, v.Loading())

	// A newer refresh completes while the first is still in flight.
	v.Refresh(context.Background(), uuid.New())

	cats, err := v.Current()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Fresh", cats[0].Name)

	// The stale first fetch finally lands and must be discarded.
	close(repo.release)
	<-done

	cats, err = v.Current()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Fresh", cats[0].Name)
	assert.False(t, v.Loading())
}

func TestViewKeepsLatestError(t *testing.T) {
	backendErr := errors.New("connection refused")
	repo := &fakeCategoryRepo{
		listVisible: func(ctx context.Context, restaurantID uuid.UUID) ([]domain.Category, error) {
			return nil, backendErr
		},
	}
	v := NewView(NewResolver(repo, logger.NewCapture()))

	v.Refresh(context.Background(), uuid.New())

	_, err := v.Current()
	assert.ErrorIs(t, err, backendErr)
}
