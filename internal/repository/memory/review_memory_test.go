package memory

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository"
)

func TestReviewMemory_CreateAndFind(t *testing.T) {
	repo := NewReviewMemory()
	ctx := context.Background()

	review := &model.Review{
		ID:        "r-1",
		Process:   "Company Incorporation",
		CreatedAt: time.Now().UTC(),
	}

	stored, err := repo.Create(ctx, review)
	assert.NoError(t, err)
	assert.Equal(t, "r-1", stored.ID)

	got, err := repo.FindByID(ctx, "r-1")
	assert.NoError(t, err)
	assert.Equal(t, "Company Incorporation", got.Process)

	got.Process = "mutated"
	again, err := repo.FindByID(ctx, "r-1")
	assert.NoError(t, err)
	assert.Equal(t, "Company Incorporation", again.Process)
}

func TestReviewMemory_FindByID_NotFound(t *testing.T) {
	repo := NewReviewMemory()

	got, err := repo.FindByID(context.Background(), "missing")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestReviewMemory_List(t *testing.T) {
	repo := NewReviewMemory()
	ctx := context.Background()

	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, &model.Review{
			ID:        fmt.Sprintf("r-%d", i),
			Process:   "Company Incorporation",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}

	t.Run("newest first", func(t *testing.T) {
		result, err := repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 0})
		assert.NoError(t, err)
		assert.Equal(t, 5, result.Total)
		assert.Len(t, result.Items, 2)
		assert.Equal(t, "r-4", result.Items[0].ID)
		assert.Equal(t, "r-3", result.Items[1].ID)
	})

	t.Run("offset past end", func(t *testing.T) {
		result, err := repo.List(ctx, repository.PageQuery{Limit: 2, Offset: 10})
		assert.NoError(t, err)
		assert.Equal(t, 5, result.Total)
		assert.Empty(t, result.Items)
	})

	t.Run("zero limit returns remainder", func(t *testing.T) {
		result, err := repo.List(ctx, repository.PageQuery{Limit: 0, Offset: 3})
		assert.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})
}
