package main

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/titir232004/AI-CORPORATE-AGENT/docs"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/ai"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/common"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/config"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/database"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/database/migration"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/detect"
	handlers "github.com/titir232004/AI-CORPORATE-AGENT/internal/http/handler"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/http/middleware"
	otelsetup "github.com/titir232004/AI-CORPORATE-AGENT/internal/otel"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/refs"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository/memory"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/repository/postgres"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/service"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/storage"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/vector"
)

// searcherAdapter binds the persisted vector index and the embedding client
// into the retrieval interface the detector expects.
type searcherAdapter struct {
	index    *vector.Index
	embedder vector.Embedder
}

func (s *searcherAdapter) Search(ctx context.Context, query string, k int) ([]vector.Chunk, error) {
	return s.index.Search(ctx, s.embedder, query, k)
}

// @title ADGM Corporate Agent API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	logger := common.Logger()

	ctx := context.Background()
	shutdownTracing, err := otelsetup.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Review history store: PostgreSQL when configured, in-memory otherwise.
	var db *sql.DB
	var reviewRepo repository.ReviewRepository
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		reviewRepo = postgres.NewReviewPostgres(db)
	} else {
		logger.Info("no database configured, review history is in-memory only")
		reviewRepo = memory.NewReviewMemory()
	}

	// Reviewed-copy archive: optional S3-compatible object storage.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	} else {
		logger.Info("no object storage configured, reviewed copies are not archived")
	}

	// Reference corpus artifacts. Each one is optional; the detector keeps
	// whatever strategies its inputs allow.
	templates, err := refs.LoadTemplateIndex(cfg.Corpus.TemplateIndexPath)
	if err != nil {
		log.Fatalf("failed to load template index: %v", err)
	}
	index, err := vector.Load(cfg.Corpus.VectorDir)
	if err != nil {
		log.Fatalf("failed to load vector index: %v", err)
	}
	aiClient := ai.NewClient(cfg.OpenAI)
	if aiClient == nil {
		logger.Info("no model provider configured, running without AI analysis")
	}

	var searcher detect.Searcher
	var generator detect.Generator
	if index != nil && aiClient != nil {
		searcher = &searcherAdapter{index: index, embedder: aiClient}
		generator = aiClient
	}
	detector := detect.NewDetector(templates, searcher, generator, detect.Options{
		RetrievalK:    cfg.Corpus.RetrievalK,
		ContextBudget: cfg.Corpus.ContextBudget,
	})

	reviewSvc := service.NewReviewService(detector, objStore, reviewRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    50 * 1024 * 1024,
	})

	// Register global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	promRegistry := prometheus.NewRegistry()
	promMW, err := middleware.NewPrometheusMiddleware(promRegistry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, reviewSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
