package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/model"
)

const (
	reviewRunTmpl  = `<w:r><w:rPr><w:i/><w:color w:val="A00000"/></w:rPr><w:t xml:space="preserve">  [REVIEW NOTE: %s]</w:t></w:r>`
	reviewParaTmpl = `<w:p><w:r><w:rPr><w:i/><w:color w:val="A00000"/></w:rPr><w:t xml:space="preserve">[REVIEW NOTE - %s]: %s</w:t></w:r></w:p>`
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Annotate returns a copy of the document with one review note per issue.
// An issue with a non-empty section is attached as an inline italic run to
// the first paragraph whose text contains the section (case-insensitive);
// all other issues become trailing paragraphs prefixed with the source
// document name. Issues are applied in order, so several notes can stack on
// the same paragraph. The input bytes are never modified; with zero issues
// the output carries the unchanged document part.
func Annotate(data []byte, issues []model.Issue) ([]byte, error) {
	part, err := documentXML(data)
	if err != nil {
		return nil, err
	}

	spans := paragraphSpans(part)

	// insertAt maps a byte offset in the document part (just before a
	// paragraph's closing tag) to the runs inserted there, in issue order.
	insertAt := make(map[int][]string)
	var trailing []string

	for _, issue := range issues {
		note := issue.Suggestion
		if note == "" {
			note = issue.Issue
		}
		attached := false
		if section := strings.ToLower(issue.Section); section != "" {
			for _, span := range spans {
				if strings.Contains(strings.ToLower(span.text), section) {
					run := fmt.Sprintf(reviewRunTmpl, xmlEscaper.Replace(note))
					insertAt[span.closeTag] = append(insertAt[span.closeTag], run)
					attached = true
					break
				}
			}
		}
		if !attached {
			source := issue.Document
			if source == "" {
				source = "doc"
			}
			trailing = append(trailing,
				fmt.Sprintf(reviewParaTmpl, xmlEscaper.Replace(source), xmlEscaper.Replace(note)))
		}
	}

	if len(trailing) > 0 && !bytes.Contains(part, []byte("</w:body>")) {
		return nil, fmt.Errorf("document part has no closing body element")
	}

	annotated := applyInsertions(part, insertAt, trailing)
	return rebuildArchive(data, annotated)
}

// paraSpan is one w:p element in the raw document part. closeTag is the byte
// offset of its "</w:p>" closing tag; text is the paragraph's visible text.
type paraSpan struct {
	closeTag int
	text     string
}

func paragraphSpans(part []byte) []paraSpan {
	var spans []paraSpan
	for i := 0; i < len(part); {
		open := indexTag(part, i, "w:p")
		if open < 0 {
			break
		}
		tagEnd := bytes.IndexByte(part[open:], '>')
		if tagEnd < 0 {
			break
		}
		tagEnd += open
		if part[tagEnd-1] == '/' { // self-closing empty paragraph
			i = tagEnd + 1
			continue
		}
		close := bytes.Index(part[tagEnd:], []byte("</w:p>"))
		if close < 0 {
			break
		}
		close += tagEnd
		spans = append(spans, paraSpan{
			closeTag: close,
			text:     runText(part[tagEnd+1 : close]),
		})
		i = close + len("</w:p>")
	}
	return spans
}

// indexTag finds the next "<name" occurrence from offset whose tag name ends
// exactly there (followed by a space, '>' or '/'), so "<w:p" does not match
// "<w:pPr".
func indexTag(part []byte, from int, name string) int {
	needle := []byte("<" + name)
	for {
		idx := bytes.Index(part[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		after := idx + len(needle)
		if after < len(part) {
			switch part[after] {
			case ' ', '>', '/':
				return idx
			}
		}
		from = idx + len(needle)
	}
}

// runText concatenates the contents of all w:t elements inside a paragraph.
func runText(inner []byte) string {
	var b strings.Builder
	for i := 0; i < len(inner); {
		open := indexTag(inner, i, "w:t")
		if open < 0 {
			break
		}
		tagEnd := bytes.IndexByte(inner[open:], '>')
		if tagEnd < 0 {
			break
		}
		tagEnd += open
		if inner[tagEnd-1] == '/' {
			i = tagEnd + 1
			continue
		}
		close := bytes.Index(inner[tagEnd:], []byte("</w:t>"))
		if close < 0 {
			break
		}
		close += tagEnd
		b.WriteString(unescapeXML(string(inner[tagEnd+1 : close])))
		i = close + len("</w:t>")
	}
	return b.String()
}

var xmlUnescaper = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
	"&amp;", "&",
)

func unescapeXML(s string) string { return xmlUnescaper.Replace(s) }

func applyInsertions(part []byte, insertAt map[int][]string, trailing []string) []byte {
	positions := make([]int, 0, len(insertAt)+1)
	for pos := range insertAt {
		positions = append(positions, pos)
	}
	bodyClose := bytes.LastIndex(part, []byte("</w:body>"))
	if len(trailing) > 0 && bodyClose >= 0 {
		positions = append(positions, bodyClose)
	}
	sort.Ints(positions)

	var out bytes.Buffer
	prev := 0
	for _, pos := range positions {
		out.Write(part[prev:pos])
		if pos == bodyClose && len(trailing) > 0 {
			for _, p := range trailing {
				out.WriteString(p)
			}
			// a paragraph may also end exactly at the body close
			for _, run := range insertAt[pos] {
				out.WriteString(run)
			}
		} else {
			for _, run := range insertAt[pos] {
				out.WriteString(run)
			}
		}
		prev = pos
	}
	out.Write(part[prev:])
	return out.Bytes()
}

// rebuildArchive writes a new zip with word/document.xml replaced and every
// other entry copied through unchanged.
func rebuildArchive(original, partXML []byte) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(original), int64(len(original)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, f := range r.File {
		dst, err := w.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		if strings.EqualFold(f.Name, documentPart) {
			if _, err := dst.Write(partXML); err != nil {
				return nil, fmt.Errorf("write %s: %w", f.Name, err)
			}
			continue
		}
		src, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			src.Close()
			return nil, fmt.Errorf("copy %s: %w", f.Name, err)
		}
		src.Close()
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
