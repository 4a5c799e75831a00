package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/vector"
)

// Searcher retrieves the reference chunks most similar to a query text.
// *vector.Index paired with an embedder satisfies it via a small adapter in
// the composition root.
type Searcher interface {
	Search(ctx context.Context, query string, k int) ([]vector.Chunk, error)
}

// Generator produces a free-form completion for a prompt. *ai.Client
// satisfies it.
type Generator interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `You are an ADGM compliance assistant. Using the provided ADGM context (rules and official templates), analyze
the following uploaded legal document and produce a JSON array of issues.

Context (ADGM rules / templates):
%s

Uploaded document:
%s

Output format: JSON array of objects with keys:
document, section, issue, severity (High|Medium|Low), suggestion.

Only output JSON.
`

// RetrievalStrategy asks a generation provider to review the document with
// the most similar reference chunks as context. It is only registered when
// both dependencies are available, and any runtime failure is contained by
// the detector.
type RetrievalStrategy struct {
	searcher      Searcher
	generator     Generator
	retrievalK    int
	contextBudget int
}

// NewRetrievalStrategy creates the strategy with defaults applied from opts.
func NewRetrievalStrategy(searcher Searcher, generator Generator, opts Options) *RetrievalStrategy {
	k := opts.RetrievalK
	if k <= 0 {
		k = 3
	}
	budget := opts.ContextBudget
	if budget <= 0 {
		budget = 4000
	}
	return &RetrievalStrategy{
		searcher:      searcher,
		generator:     generator,
		retrievalK:    k,
		contextBudget: budget,
	}
}

func (s *RetrievalStrategy) Name() string { return "retrieval-augmented" }

func (s *RetrievalStrategy) Detect(ctx context.Context, text, docName string) ([]model.Issue, error) {
	chunks, err := s.searcher.Search(ctx, text, s.retrievalK)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		parts = append(parts, c.Text)
	}
	contextText := truncate(strings.Join(parts, "\n\n"), s.contextBudget)

	raw, err := s.generator.Chat(ctx, fmt.Sprintf(promptTemplate, contextText, text))
	if err != nil {
		return nil, fmt.Errorf("generation call: %w", err)
	}

	issues, err := parseIssues(raw)
	if err != nil {
		return nil, fmt.Errorf("parse generated issues: %w", err)
	}
	for i := range issues {
		if issues[i].Document == "" {
			issues[i].Document = docName
		}
		if !model.ValidSeverity(issues[i].Severity) {
			issues[i].Severity = model.SeverityMedium
		}
	}
	return issues, nil
}

// truncate caps s at limit bytes, backing off so a multibyte character is
// never split at the cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// parseIssues extracts an issue array from free-form provider output: a
// strict parse of the whole response first, then a fallback to the substring
// spanning the first '[' to the last ']' for responses wrapped in prose.
func parseIssues(raw string) ([]model.Issue, error) {
	trimmed := strings.TrimSpace(raw)

	var issues []model.Issue
	if err := json.Unmarshal([]byte(trimmed), &issues); err == nil {
		return issues, nil
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in response")
	}
	if err := json.Unmarshal([]byte(trimmed[start:end+1]), &issues); err != nil {
		return nil, fmt.Errorf("malformed JSON array: %w", err)
	}
	return issues, nil
}
