package docx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
)

func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>")
		body.WriteString(p)
		body.WriteString("</w:t></w:r></w:p>")
	}
	documentXML := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	data := buildDocx(t, "Board Resolution", "  ", "Signed by: the director")

	text, err := ExtractText(data)
	require.NoError(t, err)
	assert.Equal(t, "Board Resolution\nSigned by: the director", text)
}

func TestExtractText_InvalidArchive(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a zip"))
	assert.ErrorIs(t, err, ErrNotDocx)

	_, err = ExtractText(nil)
	assert.ErrorIs(t, err, ErrNotDocx)
}

func TestExtractText_MissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText(buf.Bytes())
	assert.ErrorIs(t, err, ErrNotDocx)
}

func TestParagraphs_EntitiesAndTabs(t *testing.T) {
	documentXML := `<w:document xmlns:w="x"><w:body>` +
		`<w:p><w:r><w:t>Smith &amp; Sons</w:t></w:r><w:r><w:tab/><w:t>Ltd</w:t></w:r></w:p>` +
		`</w:body></w:document>`
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	paras, err := Paragraphs(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, paras, 1)
	assert.Equal(t, "Smith & Sons\tLtd", paras[0])
}

func TestAnnotate_NoIssues(t *testing.T) {
	data := buildDocx(t, "Jurisdiction", "Signatory")

	out, err := Annotate(data, nil)
	require.NoError(t, err)

	before, err := Paragraphs(data)
	require.NoError(t, err)
	after, err := Paragraphs(out)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// input must not be mutated
	again, err := Paragraphs(data)
	require.NoError(t, err)
	assert.Equal(t, before, again)
}

func TestAnnotate_SectionMatch(t *testing.T) {
	data := buildDocx(t, "Preamble", "Signatory section follows", "Closing")

	issues := []model.Issue{{
		Document:   "contract.docx",
		Section:    "Signatory",
		Issue:      "No signatory block detected.",
		Severity:   model.SeverityHigh,
		Suggestion: "Add signature lines.",
	}}
	out, err := Annotate(data, issues)
	require.NoError(t, err)

	paras, err := Paragraphs(out)
	require.NoError(t, err)
	// paragraph count unchanged, note appended inline to the matching one
	require.Len(t, paras, 3)
	assert.Contains(t, paras[1], "Signatory section follows")
	assert.Contains(t, paras[1], "[REVIEW NOTE: Add signature lines.]")
	assert.NotContains(t, paras[0], "REVIEW NOTE")
	assert.NotContains(t, paras[2], "REVIEW NOTE")
}

func TestAnnotate_EmptySectionAppendsParagraph(t *testing.T) {
	data := buildDocx(t, "Only paragraph")

	issues := []model.Issue{{
		Document:   "contract.docx",
		Section:    "",
		Issue:      "Jurisdiction missing.",
		Severity:   model.SeverityHigh,
		Suggestion: "Reference ADGM Courts.",
	}}
	out, err := Annotate(data, issues)
	require.NoError(t, err)

	paras, err := Paragraphs(out)
	require.NoError(t, err)
	require.Len(t, paras, 2)
	assert.Equal(t, "Only paragraph", paras[0])
	assert.Equal(t, "[REVIEW NOTE - contract.docx]: Reference ADGM Courts.", paras[1])
}

func TestAnnotate_UnmatchedSectionFallsBack(t *testing.T) {
	data := buildDocx(t, "Body text")

	issues := []model.Issue{{
		Document: "contract.docx",
		Section:  "Governing law",
		Issue:    "Clause missing.",
		// empty suggestion falls back to the issue text
	}}
	out, err := Annotate(data, issues)
	require.NoError(t, err)

	paras, err := Paragraphs(out)
	require.NoError(t, err)
	require.Len(t, paras, 2)
	assert.Equal(t, "[REVIEW NOTE - contract.docx]: Clause missing.", paras[1])
}

func TestAnnotate_MultipleNotesStackOnOneParagraph(t *testing.T) {
	data := buildDocx(t, "Signatory block")

	issues := []model.Issue{
		{Document: "a.docx", Section: "Signatory", Suggestion: "first note"},
		{Document: "a.docx", Section: "signatory", Suggestion: "second note"},
	}
	out, err := Annotate(data, issues)
	require.NoError(t, err)

	paras, err := Paragraphs(out)
	require.NoError(t, err)
	require.Len(t, paras, 1)
	first := strings.Index(paras[0], "first note")
	second := strings.Index(paras[0], "second note")
	assert.Greater(t, first, -1)
	assert.Greater(t, second, first)
}

func TestAnnotate_MissingBodyCloseTag(t *testing.T) {
	// A document part with no closing body element cannot take trailing
	// note paragraphs; that must surface as an error, not a silent drop.
	documentXML := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>text</w:t></w:r></w:p>`
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Annotate(buf.Bytes(), []model.Issue{
		{Document: "a.docx", Section: "", Issue: "missing clause"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "body")
}

func TestAnnotate_EscapesNoteText(t *testing.T) {
	data := buildDocx(t, "Signatory block")

	issues := []model.Issue{{
		Document:   "a.docx",
		Section:    "Signatory",
		Suggestion: `use "<placeholder>" & initials`,
	}}
	out, err := Annotate(data, issues)
	require.NoError(t, err)

	paras, err := Paragraphs(out)
	require.NoError(t, err)
	require.Len(t, paras, 1)
	assert.Contains(t, paras[0], `use "<placeholder>" & initials`)
}
