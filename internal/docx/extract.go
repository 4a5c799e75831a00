// Package docx reads and annotates word-processor documents without external
// dependencies: a .docx file is a zip archive whose visible text lives in
// word/document.xml.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// ErrNotDocx is returned when the payload is not a readable .docx archive.
var ErrNotDocx = errors.New("not a valid docx document")

// Paragraphs returns the document's non-blank paragraph texts in document
// order, trimmed of surrounding whitespace.
func Paragraphs(data []byte) ([]string, error) {
	part, err := documentXML(data)
	if err != nil {
		return nil, err
	}
	return paragraphsFromXML(bytes.NewReader(part))
}

// ExtractText returns the document's plain text: paragraph contents in
// document order, blanks discarded, joined by newlines.
func ExtractText(data []byte) (string, error) {
	paras, err := Paragraphs(data)
	if err != nil {
		return "", err
	}
	return strings.Join(paras, "\n"), nil
}

func documentXML(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrNotDocx
	}
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}
	for _, f := range r.File {
		if strings.EqualFold(f.Name, documentPart) {
			rc, err := f.Open()
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", documentPart, err)
			}
			defer rc.Close()
			part, err := io.ReadAll(rc)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", documentPart, err)
			}
			return part, nil
		}
	}
	return nil, fmt.Errorf("%w: missing %s", ErrNotDocx, documentPart)
}

// paragraphsFromXML streams the document XML, accumulating run text per w:p
// element. Tabs become tab characters, explicit breaks newlines.
func paragraphsFromXML(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var paragraphs []string
	var current strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t", "instrText":
				var text string
				if err := dec.DecodeElement(&text, &t); err == nil {
					current.WriteString(text)
				}
			case "tab":
				current.WriteByte('\t')
			case "br", "cr":
				current.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		}
	}
	return paragraphs, nil
}
