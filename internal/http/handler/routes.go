package handler

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/checklist"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Keep handlers minimal and free of business logic; they translate transport
// concerns and delegate to the service. db may be nil when the server runs
// without a database.
func RegisterRoutes(app *fiber.App, db *sql.DB, reviewSvc service.ReviewService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/processes", ListProcesses())
	app.Post("/reviews", CreateReview(reviewSvc))
	app.Get("/reviews", ListReviews(reviewSvc))
	app.Get("/reviews/:id", GetReview(reviewSvc))
}

// HealthCheck reports readiness. With a database configured it checks
// connectivity; without one the process itself is the only dependency.
//
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
			}
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a simple liveness probe.
//
// @Summary Liveness probe
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListProcesses returns the legal processes the checker knows about, so a
// client can populate its process selector.
//
// @Summary List supported legal processes
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /processes [get]
func ListProcesses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"processes": checklist.Processes()})
	}
}

// CreateReview runs a compliance review over the uploaded documents.
// Expects multipart/form-data with a "process" field and one or more "files"
// entries holding .docx uploads.
//
// @Summary Review uploaded documents
// @Accept multipart/form-data
// @Produce json
// @Param process formData string true "Legal process name"
// @Param files formData file true "Documents to review"
// @Success 201 {object} service.ReviewResult
// @Router /reviews [post]
func CreateReview(reviewSvc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		process := c.FormValue("process")
		if process == "" {
			return writeError(c, fiber.StatusBadRequest, "PROCESS_REQUIRED", "process is required")
		}

		form, err := c.MultipartForm()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "multipart form with files is required")
		}
		headers := form.File["files"]
		if len(headers) == 0 {
			return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "at least one file is required")
		}

		files := make([]service.UploadedFile, 0, len(headers))
		for _, fh := range headers {
			f, err := fh.Open()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
			}
			content, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "FILE_READ_ERROR", "cannot read uploaded file")
			}
			files = append(files, service.UploadedFile{Filename: fh.Filename, Content: content})
		}

		result, err := reviewSvc.Review(c.UserContext(), process, files)
		if err != nil {
			if errors.Is(err, checklist.ErrUnknownProcess) {
				return writeError(c, fiber.StatusBadRequest, "UNKNOWN_PROCESS", "unknown process")
			}
			if errors.Is(err, service.ErrNoFiles) {
				return writeError(c, fiber.StatusBadRequest, "FILES_REQUIRED", "at least one file is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(result)
	}
}

// ListReviews returns past review sessions with limit/offset pagination.
//
// @Summary List review history
// @Produce json
// @Param limit query int false "Page size" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} service.ReviewListResult
// @Router /reviews [get]
func ListReviews(reviewSvc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, err := strconv.Atoi(c.Query("limit", "10"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
		}
		offset, err := strconv.Atoi(c.Query("offset", "0"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
		}

		res, err := reviewSvc.History(c.UserContext(), limit, offset)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	}
}

// GetReview returns one past review session by ID.
//
// @Summary Get a review by ID
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} model.Review
// @Router /reviews/{id} [get]
func GetReview(reviewSvc service.ReviewService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		review, err := reviewSvc.GetReview(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "review not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(review)
	}
}
