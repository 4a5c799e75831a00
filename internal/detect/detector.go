// Package detect implements the red-flag detection pipeline: an ordered set
// of strategies whose findings are concatenated into a single issue list.
package detect

import (
	"context"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/common"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/refs"
)

// Strategy is one way of finding compliance issues in a document's text.
// Implementations should report partial failures through the error return;
// the detector contains them and moves on.
type Strategy interface {
	Name() string
	Detect(ctx context.Context, text, docName string) ([]model.Issue, error)
}

// Detector runs its strategies in registration order and concatenates their
// findings. Later strategies may repeat what earlier ones found; the
// redundancy is kept as corroborating signal.
type Detector struct {
	strategies []Strategy
}

// Options tunes the optional strategies.
type Options struct {
	// RetrievalK is the number of reference chunks retrieved for the
	// generative strategy. Defaults to 3.
	RetrievalK int
	// ContextBudget caps the retrieved context length in characters.
	// Defaults to 4000.
	ContextBudget int
}

// NewDetector composes the pipeline from whatever capabilities are
// available: the template-comparison strategy iff the template index has
// entries, the retrieval-augmented strategy iff both a similarity index and
// a generation provider are configured, and the deterministic rule checks
// always.
func NewDetector(templates refs.TemplateIndex, searcher Searcher, generator Generator, opts Options) *Detector {
	logger := common.Logger()
	var strategies []Strategy

	if len(templates) > 0 {
		strategies = append(strategies, &TemplateStrategy{Templates: templates})
	} else {
		logger.Info("detect: no template index, skipping template comparison")
	}

	if searcher != nil && generator != nil {
		strategies = append(strategies, NewRetrievalStrategy(searcher, generator, opts))
	} else {
		logger.Info("detect: retrieval strategy unavailable",
			"have_index", searcher != nil, "have_provider", generator != nil)
	}

	strategies = append(strategies, RuleStrategy{})
	return &Detector{strategies: strategies}
}

// NewDetectorWith builds a detector from an explicit strategy list, in order.
func NewDetectorWith(strategies ...Strategy) *Detector {
	return &Detector{strategies: strategies}
}

// Detect runs every strategy against the text and concatenates the results.
// It never fails: a strategy error is logged and contributes zero issues.
// The returned slice is non-nil even when empty.
func (d *Detector) Detect(ctx context.Context, text, docName string) []model.Issue {
	logger := common.Logger()
	issues := make([]model.Issue, 0)
	for _, s := range d.strategies {
		found, err := s.Detect(ctx, text, docName)
		if err != nil {
			logger.Warn("detect: strategy failed", "strategy", s.Name(), "document", docName, "error", err)
			continue
		}
		for i := range found {
			found[i].Strategy = s.Name()
		}
		issues = append(issues, found...)
	}
	return issues
}
