package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "no pattern matches",
			text: "An unrelated commercial invoice with line items.",
			want: "Unknown",
		},
		{
			name: "empty text",
			text: "",
			want: "Unknown",
		},
		{
			name: "case insensitive match",
			text: "ARTICLES OF ASSOCIATION of Example Ltd",
			want: "Articles of Association",
		},
		{
			name: "abbreviation pattern",
			text: "This document amends the MoA of the company.",
			want: "Memorandum of Association",
		},
		{
			name: "board resolution alternate phrasing",
			text: "Resolution of the Board passed on 1 March",
			want: "Board Resolution",
		},
		{
			name: "earlier declared label wins when two labels match",
			text: "articles of association referencing a board resolution",
			want: "Articles of Association",
		},
		{
			name: "register of directors",
			text: "Register of Directors maintained at the registered office",
			want: "Register of Members and Directors",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestClassify_EveryRuleReachable(t *testing.T) {
	// A text containing exactly one rule's first pattern, and nothing from an
	// earlier rule, must classify as that rule's label.
	for _, rule := range Rules() {
		got := Classify("prefix " + rule.Patterns[0] + " suffix")
		assert.Equal(t, rule.Label, got, "pattern %q", rule.Patterns[0])
	}
}

func TestBestEffortTitle(t *testing.T) {
	t.Run("first non-blank line trimmed", func(t *testing.T) {
		title, ok := BestEffortTitle("\n\n   Board Resolution of Example Ltd  \nSecond line")
		assert.True(t, ok)
		assert.Equal(t, "Board Resolution of Example Ltd", title)
	})

	t.Run("entirely blank text", func(t *testing.T) {
		_, ok := BestEffortTitle(" \n\t\n ")
		assert.False(t, ok)
	})
}
