package model

import "time"

// DocumentReport aggregates everything the pipeline learned about one
// uploaded document.
type DocumentReport struct {
	Filename    string  `json:"filename"`
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	ParseError  string  `json:"parse_error,omitempty"`
	Issues      []Issue `json:"issues"`
	ReviewedURL string  `json:"reviewed_url,omitempty"`
}

// Summary is the structured per-session result consumed by the UI and
// persisted as the review history payload.
type Summary struct {
	Process           string   `json:"process"`
	DocumentsUploaded int      `json:"documents_uploaded"`
	RequiredDocuments int      `json:"required_documents"`
	MissingDocuments  []string `json:"missing_documents"`
	IssuesFound       []Issue  `json:"issues_found"`
}

// Review is a persisted record of one completed review session.
type Review struct {
	ID                string    `json:"id"`
	Process           string    `json:"process"`
	DocumentsUploaded int       `json:"documents_uploaded"`
	RequiredDocuments int       `json:"required_documents"`
	MissingDocuments  int       `json:"missing_documents"`
	IssuesFound       int       `json:"issues_found"`
	Summary           Summary   `json:"summary"`
	CreatedAt         time.Time `json:"created_at"`
}
