// Package classify maps extracted document text to one of the fixed ADGM
// document-type labels.
package classify

import "strings"

// TypeRule binds a document-type label to the lowercase substring patterns
// that identify it.
type TypeRule struct {
	Label    string
	Patterns []string
}

// rules is deliberately an ordered slice, not a map: classification is
// first-match-wins and the tie-break must be reproducible.
var rules = []TypeRule{
	{"Articles of Association", []string{"articles of association", "aoa"}},
	{"Memorandum of Association", []string{"memorandum of association", "moa"}},
	{"Board Resolution", []string{"board resolution", "resolution of the board"}},
	{"UBO Declaration Form", []string{"ubo declaration", "ultimate beneficial owner"}},
	{"Register of Members and Directors", []string{"register of members", "register of directors"}},
	{"Shareholder Resolution Templates", []string{"shareholder resolution", "shareholder resolution templates", "resolution of shareholders"}},
	{"Incorporation Application Form", []string{"incorporation application", "form for incorporation application"}},
	{"Change of Registered Address Notice", []string{"change of registered address notice", "notice about change of registered address"}},
}

// Rules returns the ordered label/pattern mapping. The returned slice must be
// treated as read-only.
func Rules() []TypeRule { return rules }

// Classify returns the first label whose pattern list contains a substring of
// text, or "Unknown" when nothing matches. The input is lowercased once; the
// declaration order of the rules decides ties.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, p := range rule.Patterns {
			if strings.Contains(lower, p) {
				return rule.Label
			}
		}
	}
	return "Unknown"
}

// BestEffortTitle returns the first non-blank line of text, trimmed.
// The second return value is false when the text is entirely blank.
func BestEffortTitle(text string) (string, bool) {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}
