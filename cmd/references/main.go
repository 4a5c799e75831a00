package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"

	_ "github.com/joho/godotenv/autoload"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/ai"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/common"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/config"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/refs"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/vector"
)

// main builds the offline reference corpus: it reads the seed PDF, downloads
// the official .docx templates it links to, saves the template text index,
// and, when an embedding provider is configured, builds the vector index.
func main() {
	cfg := config.Load()
	logger := common.Logger()
	ctx := context.Background()

	seed := cfg.Corpus.SeedPDFPath
	if _, err := os.Stat(seed); err != nil {
		log.Fatalf("seed PDF not found at %s: %v", seed, err)
	}

	links, err := refs.ExtractLinks(seed)
	if err != nil {
		log.Fatalf("failed to extract links from seed PDF: %v", err)
	}
	logger.Info("seed links extracted", "count", len(links))

	if err := os.MkdirAll(cfg.Corpus.TemplateDir, 0o755); err != nil {
		log.Fatalf("failed to create template dir: %v", err)
	}
	dl := refs.NewDownloader(cfg.Corpus.TemplateDir)
	paths, err := dl.Templates(ctx, links)
	if err != nil {
		log.Fatalf("failed to download templates: %v", err)
	}
	logger.Info("templates present", "count", len(paths))

	idx := refs.BuildTemplateIndex(paths)
	if err := refs.SaveTemplateIndex(cfg.Corpus.TemplateIndexPath, idx); err != nil {
		log.Fatalf("failed to save template index: %v", err)
	}
	logger.Info("template index saved", "path", cfg.Corpus.TemplateIndexPath, "templates", len(idx))

	// Vector index is optional; without an embedding provider the checker
	// still runs its template and rule strategies.
	aiClient := ai.NewClient(cfg.OpenAI)
	if aiClient == nil {
		logger.Info("no embedding provider configured, skipping vector index build")
		return
	}

	docs := make([]vector.SourceDoc, 0, len(idx)+1)
	if text, err := refs.PDFText(seed); err != nil {
		logger.Warn("seed PDF text skipped", "error", err)
	} else {
		docs = append(docs, vector.SourceDoc{Source: filepath.Base(seed), Text: text})
	}
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		docs = append(docs, vector.SourceDoc{Source: name, Text: idx[name]})
	}

	if _, err := vector.Build(ctx, aiClient, docs, cfg.Corpus.VectorDir); err != nil {
		logger.Warn("vector index build failed", "error", err)
		return
	}
	logger.Info("vector index built", "dir", cfg.Corpus.VectorDir)
}
