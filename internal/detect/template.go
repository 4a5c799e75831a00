package detect

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/refs"
)

const (
	// topClauseCount is how many leading non-blank template lines are taken
	// as candidate clauses.
	topClauseCount = 40
	// minClauseLength filters out headings and noise too short to be a clause.
	minClauseLength = 6
	// missingClauseThreshold is the number of absent candidates above which a
	// template is flagged.
	missingClauseThreshold = 3
)

// TemplateStrategy compares an uploaded document against each reference
// template's leading clauses. This is a coarse structural-similarity proxy:
// a reworded but semantically present clause still counts as missing, which
// is accepted in exchange for not needing clause-level diffing.
type TemplateStrategy struct {
	Templates refs.TemplateIndex
}

func (s *TemplateStrategy) Name() string { return "template-comparison" }

func (s *TemplateStrategy) Detect(_ context.Context, text, _ string) ([]model.Issue, error) {
	lower := strings.ToLower(text)

	// iterate in sorted order so the issue list is reproducible
	sources := make([]string, 0, len(s.Templates))
	for src := range s.Templates {
		sources = append(sources, src)
	}
	sort.Strings(sources)

	var issues []model.Issue
	for _, src := range sources {
		missing := 0
		for _, clause := range topClauses(s.Templates[src]) {
			if !strings.Contains(lower, strings.ToLower(clause)) {
				missing++
			}
		}
		if missing > missingClauseThreshold {
			issues = append(issues, model.Issue{
				Document: path.Base(src),
				Section:  "Multiple top sections",
				Issue: fmt.Sprintf(
					"A number of top template sections are missing or phrased differently (%d missing).", missing),
				Severity: model.SeverityHigh,
				Suggestion: "Compare your document to the official template and include missing sections. " +
					"Use the ADGM template text as reference.",
			})
		}
	}
	return issues, nil
}

// topClauses returns the template's first candidate clauses: leading
// non-blank trimmed lines, capped at topClauseCount, with lines shorter than
// minClauseLength dropped.
func topClauses(templateText string) []string {
	var clauses []string
	taken := 0
	for _, line := range strings.Split(templateText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if taken >= topClauseCount {
			break
		}
		taken++
		if len(trimmed) < minClauseLength {
			continue
		}
		clauses = append(clauses, trimmed)
	}
	return clauses
}
