package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/checklist"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/classify"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/common"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/docx"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/storage"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrNotFound   = errors.New("review not found")
	ErrNoFiles    = errors.New("at least one file is required")
)

// presignExpiry is how long archived reviewed-copy download links stay valid.
const presignExpiry = 24 * time.Hour

// UploadedFile is one document submitted for review. Content holds the raw
// .docx bytes; nothing is written to local disk.
type UploadedFile struct {
	Filename string
	Content  []byte
}

// ReviewResult is the service-level DTO for one completed review session.
type ReviewResult struct {
	ID        string                 `json:"id"`
	Process   string                 `json:"process"`
	Documents []model.DocumentReport `json:"documents"`
	Summary   model.Summary          `json:"summary"`
	CreatedAt time.Time              `json:"created_at"`
}

// ReviewListResult is the service-level DTO for paginated review history.
type ReviewListResult struct {
	Items []model.Review `json:"data"`
	Total int            `json:"total"`
}

// IssueDetector runs the configured detection strategies over one document.
type IssueDetector interface {
	Detect(ctx context.Context, text, docName string) []model.Issue
}

// ReviewService defines the use cases for document compliance review.
type ReviewService interface {
	// Review runs the full pipeline over the uploaded files: extract text,
	// classify each document, compare against the process checklist, detect
	// red flags, annotate reviewed copies, and assemble the summary.
	Review(ctx context.Context, process string, files []UploadedFile) (*ReviewResult, error)

	// History returns past review sessions using limit/offset and a total count.
	History(ctx context.Context, limit, offset int) (*ReviewListResult, error)

	// GetReview returns a single past review session by its ID.
	GetReview(ctx context.Context, id string) (*model.Review, error)
}

// reviewService is a concrete implementation of ReviewService.
// Store may be nil (no archival, links omitted); repo must not be nil, the
// caller wires the in-memory repository when no database is configured.
type reviewService struct {
	detector IssueDetector
	store    storage.Storage
	repo     repository.ReviewRepository
}

// NewReviewService constructs a new ReviewService.
func NewReviewService(detector IssueDetector, store storage.Storage, repo repository.ReviewRepository) ReviewService {
	return &reviewService{detector: detector, store: store, repo: repo}
}

func (s *reviewService) Review(ctx context.Context, process string, files []UploadedFile) (*ReviewResult, error) {
	required, err := checklist.Required(process)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	logger := common.Logger()
	reviewID := uuid.New().String()
	createdAt := time.Now().UTC()

	reports := make([]model.DocumentReport, 0, len(files))
	detected := make([]string, 0, len(files))
	allIssues := make([]model.Issue, 0)

	for _, f := range files {
		doc := model.Document{
			Filename: f.Filename,
			Type:     model.TypeUnknown,
			Content:  f.Content,
		}
		report := model.DocumentReport{
			Filename: doc.Filename,
			Type:     doc.Type,
			Issues:   make([]model.Issue, 0),
		}

		text, err := docx.ExtractText(doc.Content)
		if err != nil {
			// A broken upload is reported, never fatal for the session.
			// It proceeds with empty text so the fallback checks still fire.
			report.ParseError = err.Error()
			logger.Warn("document parse failed", "review_id", reviewID, "filename", doc.Filename, "error", err)
			text = ""
		}

		doc.Text = text
		doc.Type = classify.Classify(doc.Text)
		if title, ok := classify.BestEffortTitle(doc.Text); ok {
			doc.Title = title
		}
		report.Type = doc.Type
		report.Title = doc.Title
		if doc.Type != model.TypeUnknown {
			detected = append(detected, doc.Type)
		}

		issues := s.detector.Detect(ctx, doc.Text, doc.Filename)
		report.Issues = issues
		allIssues = append(allIssues, issues...)

		report.ReviewedURL = s.archiveReviewedCopy(ctx, reviewID, doc, issues)
		reports = append(reports, report)
	}

	missing, err := checklist.Missing(process, detected)
	if err != nil {
		return nil, err
	}

	summary := model.Summary{
		Process:           process,
		DocumentsUploaded: len(files),
		RequiredDocuments: len(required),
		MissingDocuments:  missing,
		IssuesFound:       allIssues,
	}

	s.persistHistory(ctx, reviewID, createdAt, summary)

	return &ReviewResult{
		ID:        reviewID,
		Process:   process,
		Documents: reports,
		Summary:   summary,
		CreatedAt: createdAt,
	}, nil
}

// archiveReviewedCopy annotates the document and uploads the reviewed copy,
// returning a presigned download URL. Every failure is logged and swallowed;
// the review itself must not depend on the archive backend.
func (s *reviewService) archiveReviewedCopy(ctx context.Context, reviewID string, doc model.Document, issues []model.Issue) string {
	if s.store == nil {
		return ""
	}
	logger := common.Logger()

	annotated, err := docx.Annotate(doc.Content, issues)
	if err != nil {
		logger.Warn("annotate failed", "review_id", reviewID, "filename", doc.Filename, "error", err)
		return ""
	}

	key := filepath.ToSlash(filepath.Join("reviews", reviewID, "reviewed_"+filepath.Base(doc.Filename)))
	_, err = s.store.Put(ctx, key, bytes.NewReader(annotated), storage.PutObjectOptions{
		Size:        int64(len(annotated)),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Metadata: map[string]string{
			"original-filename": doc.Filename,
		},
	})
	if err != nil {
		logger.Warn("archive upload failed", "review_id", reviewID, "filename", doc.Filename, "error", err)
		return ""
	}

	url, err := s.store.PresignGet(ctx, key, presignExpiry)
	if err != nil {
		logger.Warn("presign failed", "review_id", reviewID, "key", key, "error", err)
		return ""
	}
	return url
}

// persistHistory records the session in the history store. Best effort: a
// failed insert is logged, the caller still gets the full result.
func (s *reviewService) persistHistory(ctx context.Context, reviewID string, createdAt time.Time, summary model.Summary) {
	if s.repo == nil {
		return
	}
	review := &model.Review{
		ID:                reviewID,
		Process:           summary.Process,
		DocumentsUploaded: summary.DocumentsUploaded,
		RequiredDocuments: summary.RequiredDocuments,
		MissingDocuments:  len(summary.MissingDocuments),
		IssuesFound:       len(summary.IssuesFound),
		Summary:           summary,
		CreatedAt:         createdAt,
	}
	if _, err := s.repo.Create(ctx, review); err != nil {
		common.Logger().Warn("persist review history failed", "review_id", reviewID, "error", err)
	}
}

// History returns paginated review sessions without exposing repository types.
func (s *reviewService) History(ctx context.Context, limit, offset int) (*ReviewListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return &ReviewListResult{Items: res.Items, Total: res.Total}, nil
}

// GetReview returns a review session by ID.
func (s *reviewService) GetReview(ctx context.Context, id string) (*model.Review, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return review, nil
}
