package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository"
)

// ReviewPostgres is a PostgreSQL implementation of repository.ReviewRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ReviewPostgres struct {
	db *sql.DB
}

// NewReviewPostgres creates a new ReviewPostgres repository.
func NewReviewPostgres(db *sql.DB) *ReviewPostgres {
	return &ReviewPostgres{db: db}
}

var _ repository.ReviewRepository = (*ReviewPostgres)(nil)

// Create inserts a new review row and returns the stored record.
// The summary is stored as a JSONB payload alongside the flat columns.
func (r *ReviewPostgres) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	summary, err := json.Marshal(review.Summary)
	if err != nil {
		return nil, fmt.Errorf("encode summary: %w", err)
	}

	const q = `
		INSERT INTO reviews (id, process, documents_uploaded, required_documents, missing_documents, issues_found, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, process, documents_uploaded, required_documents, missing_documents, issues_found, summary, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		review.ID,
		review.Process,
		review.DocumentsUploaded,
		review.RequiredDocuments,
		review.MissingDocuments,
		review.IssuesFound,
		summary,
		review.CreatedAt,
	)
	return scanReview(row)
}

// FindByID fetches a single review by its ID.
func (r *ReviewPostgres) FindByID(ctx context.Context, id string) (*model.Review, error) {
	const q = `
		SELECT id, process, documents_uploaded, required_documents, missing_documents, issues_found, summary, created_at
		FROM reviews
		WHERE id = $1
	`
	return scanReview(r.db.QueryRowContext(ctx, q, id))
}

// List returns reviews using LIMIT/OFFSET pagination and a total count.
func (r *ReviewPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Review], error) {
	const qCount = `SELECT COUNT(*) FROM reviews`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, process, documents_uploaded, required_documents, missing_documents, issues_found, summary, created_at
		FROM reviews
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Review]{
		Items: items,
		Total: total,
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*model.Review, error) {
	var out model.Review
	var summary []byte
	if err := row.Scan(
		&out.ID,
		&out.Process,
		&out.DocumentsUploaded,
		&out.RequiredDocuments,
		&out.MissingDocuments,
		&out.IssuesFound,
		&summary,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(summary) > 0 {
		if err := json.Unmarshal(summary, &out.Summary); err != nil {
			return nil, fmt.Errorf("decode summary: %w", err)
		}
	}
	return &out, nil
}
