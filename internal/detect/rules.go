package detect

import (
	"context"
	"strings"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
)

// RuleStrategy runs the deterministic fallback checks. It has no external
// dependencies and always runs, so detection degrades to these rules when
// neither reference artifact is available.
type RuleStrategy struct{}

func (RuleStrategy) Name() string { return "rule-based" }

func (RuleStrategy) Detect(_ context.Context, text, docName string) ([]model.Issue, error) {
	lower := strings.ToLower(text)
	var issues []model.Issue

	if !strings.Contains(lower, "adgm") && !strings.Contains(lower, "abu dhabi global market") {
		issues = append(issues, model.Issue{
			Document: docName,
			Section:  "Jurisdiction clause",
			Issue:    "Jurisdiction does not explicitly reference ADGM or ADGM Courts.",
			Severity: model.SeverityHigh,
			Suggestion: "Add a jurisdiction clause referencing ADGM (e.g. 'This Agreement is governed by " +
				"the laws of ADGM, and the ADGM Courts have exclusive jurisdiction').",
		})
	}

	if !strings.Contains(lower, "signature") && !strings.Contains(lower, "signed") {
		issues = append(issues, model.Issue{
			Document:   docName,
			Section:    "Signatory",
			Issue:      "No signatory / signature block detected.",
			Severity:   model.SeverityHigh,
			Suggestion: "Add a signature block with printed name, title, date, and signature lines.",
		})
	}

	return issues, nil
}
