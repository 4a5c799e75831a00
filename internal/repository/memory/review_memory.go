package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository"
)

// ReviewMemory keeps review history in process memory. It is used when no
// database is configured, so review endpoints keep working with history
// that lasts for the lifetime of the process.
type ReviewMemory struct {
	mu      sync.RWMutex
	reviews []model.Review
	byID    map[string]int
}

// NewReviewMemory creates an empty in-memory review repository.
func NewReviewMemory() *ReviewMemory {
	return &ReviewMemory{byID: make(map[string]int)}
}

var _ repository.ReviewRepository = (*ReviewMemory)(nil)

func (r *ReviewMemory) Create(_ context.Context, review *model.Review) (*model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *review
	r.byID[stored.ID] = len(r.reviews)
	r.reviews = append(r.reviews, stored)
	out := stored
	return &out, nil
}

func (r *ReviewMemory) FindByID(_ context.Context, id string) (*model.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	out := r.reviews[idx]
	return &out, nil
}

func (r *ReviewMemory) List(_ context.Context, pq repository.PageQuery) (*repository.PageResult[model.Review], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]model.Review, len(r.reviews))
	copy(sorted, r.reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	start := pq.Offset
	if start > len(sorted) {
		start = len(sorted)
	}
	end := start + pq.Limit
	if pq.Limit <= 0 || end > len(sorted) {
		end = len(sorted)
	}

	items := make([]model.Review, end-start)
	copy(items, sorted[start:end])

	return &repository.PageResult[model.Review]{
		Items: items,
		Total: len(sorted),
	}, nil
}
