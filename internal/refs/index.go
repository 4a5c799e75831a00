// Package refs builds and loads the reference corpus: downloaded ADGM
// template documents and the flat name-to-text index the detector compares
// uploads against.
package refs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/common"
	"github.com/titir232004/AI-CORPORATE-AGENT/internal/docx"
)

// TemplateIndex maps a template file path to its extracted plain text.
// It is built once by the offline corpus build and read-only afterwards.
type TemplateIndex map[string]string

// LoadTemplateIndex reads the persisted index. An absent file is a valid
// state and yields an empty index with no error; the detector then simply
// skips the template-comparison strategy.
func LoadTemplateIndex(path string) (TemplateIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return TemplateIndex{}, nil
		}
		return nil, fmt.Errorf("read template index: %w", err)
	}
	var idx TemplateIndex
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse template index: %w", err)
	}
	return idx, nil
}

// SaveTemplateIndex writes the index as pretty-printed JSON.
func SaveTemplateIndex(path string, idx TemplateIndex) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encode template index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write template index: %w", err)
	}
	return nil
}

// BuildTemplateIndex extracts plain text from each template document.
// Files that fail to parse are logged and skipped; a corrupt download must
// not sink the whole corpus build.
func BuildTemplateIndex(paths []string) TemplateIndex {
	logger := common.Logger()
	idx := make(TemplateIndex, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			logger.Warn("refs: read template failed", "path", p, "error", err)
			continue
		}
		text, err := docx.ExtractText(data)
		if err != nil {
			logger.Warn("refs: parse template failed", "path", p, "error", err)
			continue
		}
		idx[filepath.ToSlash(p)] = text
	}
	return idx
}
