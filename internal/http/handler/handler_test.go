package handler

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/checklist"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/service"
	serviceMocks "github.com/titir232004/AI-CORPORATE-AGENT/internal/service/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("no database configured", func(t *testing.T) {
		appNoDB := fiber.New()
		appNoDB.Get("/health", HealthCheck(nil))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		resp, _ := appNoDB.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListProcesses(t *testing.T) {
	app := fiber.New()
	app.Get("/processes", ListProcesses())

	req := httptest.NewRequest(http.MethodGet, "/processes", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string][]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Contains(t, body["processes"], "Company Incorporation")
	assert.Contains(t, body["processes"], "Change of Registered Address")
}

// minimalDocx builds the smallest archive the extractor accepts.
func minimalDocx(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>Articles of Association</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func reviewForm(t *testing.T, process string, filenames ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	if process != "" {
		require.NoError(t, w.WriteField("process", process))
	}
	for _, name := range filenames {
		fw, err := w.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(minimalDocx(t))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestCreateReview(t *testing.T) {
	mockSvc := new(serviceMocks.MockReviewService)
	app := fiber.New()
	app.Post("/reviews", CreateReview(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.ReviewResult{
			ID:      uuid.New().String(),
			Process: "Company Incorporation",
			Summary: model.Summary{Process: "Company Incorporation", DocumentsUploaded: 1},
		}
		mockSvc.On("Review", mock.Anything, "Company Incorporation", mock.MatchedBy(func(files []service.UploadedFile) bool {
			return len(files) == 1 && files[0].Filename == "aoa.docx" && len(files[0].Content) > 0
		})).Return(expected, nil).Once()

		body, ct := reviewForm(t, "Company Incorporation", "aoa.docx")
		req := httptest.NewRequest(http.MethodPost, "/reviews", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result service.ReviewResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, expected.ID, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing process", func(t *testing.T) {
		body, ct := reviewForm(t, "", "aoa.docx")
		req := httptest.NewRequest(http.MethodPost, "/reviews", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "PROCESS_REQUIRED", payload.Error.Code)
	})

	t.Run("no files", func(t *testing.T) {
		body, ct := reviewForm(t, "Company Incorporation")
		req := httptest.NewRequest(http.MethodPost, "/reviews", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "FILES_REQUIRED", payload.Error.Code)
	})

	t.Run("unknown process", func(t *testing.T) {
		mockSvc.On("Review", mock.Anything, "Mergers", mock.Anything).
			Return(nil, fmt.Errorf("%w: Mergers", checklist.ErrUnknownProcess)).Once()

		body, ct := reviewForm(t, "Mergers", "aoa.docx")
		req := httptest.NewRequest(http.MethodPost, "/reviews", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "UNKNOWN_PROCESS", payload.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("Review", mock.Anything, "Company Incorporation", mock.Anything).
			Return(nil, errors.New("boom")).Once()

		body, ct := reviewForm(t, "Company Incorporation", "aoa.docx")
		req := httptest.NewRequest(http.MethodPost, "/reviews", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListReviews(t *testing.T) {
	mockSvc := new(serviceMocks.MockReviewService)
	app := fiber.New()
	app.Get("/reviews", ListReviews(mockSvc))

	t.Run("success", func(t *testing.T) {
		expected := &service.ReviewListResult{
			Items: []model.Review{{ID: uuid.New().String(), Process: "Company Incorporation"}},
			Total: 1,
		}
		mockSvc.On("History", mock.Anything, 10, 0).Return(expected, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/reviews?limit=10&offset=0", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.ReviewListResult
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Len(t, result.Items, 1)
		assert.Equal(t, 1, result.Total)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/reviews?limit=abc", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "INVALID_LIMIT", payload.Error.Code)
	})

	t.Run("invalid offset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/reviews?offset=xyz", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc.On("History", mock.Anything, 10, 0).Return(nil, errors.New("service error")).Once()

		req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestGetReview(t *testing.T) {
	mockSvc := new(serviceMocks.MockReviewService)
	app := fiber.New()
	app.Get("/reviews/:id", GetReview(mockSvc))

	t.Run("success", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("GetReview", mock.Anything, id).
			Return(&model.Review{ID: id, Process: "Company Incorporation"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/reviews/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result model.Review
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, id, result.ID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/reviews/not-a-uuid", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload errorPayload
		json.NewDecoder(resp.Body).Decode(&payload)
		assert.Equal(t, "INVALID_ID", payload.Error.Code)
	})

	t.Run("not found", func(t *testing.T) {
		id := uuid.New().String()
		mockSvc.On("GetReview", mock.Anything, id).Return(nil, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/reviews/"+id, nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
