// Package repository contains data access abstractions for review history.
// Implementations live in subpackages: postgres for the persistent store,
// memory for running without a database.
package repository

import (
	"context"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
)

// ReviewRepository defines persistence for completed review sessions.
// Strictly storage operations, no business logic.
type ReviewRepository interface {
	// Create inserts a new review record and returns the stored row.
	Create(ctx context.Context, review *model.Review) (*model.Review, error)

	// FindByID returns a review by its ID.
	FindByID(ctx context.Context, id string) (*model.Review, error)

	// List returns a paginated list of reviews, newest first, with a total count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Review], error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
type PageResult[T any] struct {
	Items []T
	Total int
}
