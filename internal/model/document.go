package model

// TypeUnknown is the classification result for text that matches no known
// document-type pattern.
const TypeUnknown = "Unknown"

// Document represents one uploaded artifact within a review session.
// This is a pure domain model with no transport or persistence dependencies.
// It is immutable once the text has been extracted; only the review pipeline
// reads it afterwards, and it is discarded when the session ends.
type Document struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Text     string `json:"-"`
	// Content holds the raw uploaded bytes, kept only for the annotation step.
	Content []byte `json:"-"`
}
