package refs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/titir232004/AI-CORPORATE-AGENT/internal/common"
)

const downloadUserAgent = "ADGM-Corporate-Agent/1.0"

var urlPattern = regexp.MustCompile(`https?://[^\s)>\]]+`)

// PDFText returns the plain text of a PDF file.
func PDFText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	text, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return string(text), nil
}

// ExtractLinks returns the well-formed HTTP(S) URLs found in the seed PDF's
// text, deduplicated and sorted for a stable download order. Trailing
// punctuation picked up by the pattern is trimmed.
func ExtractLinks(pdfPath string) ([]string, error) {
	text, err := PDFText(pdfPath)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, raw := range urlPattern.FindAllString(text, -1) {
		u := strings.TrimRight(strings.TrimSpace(raw), ",.")
		if _, err := url.ParseRequestURI(u); err != nil {
			continue
		}
		seen[u] = true
	}
	links := make([]string, 0, len(seen))
	for u := range seen {
		links = append(links, u)
	}
	sort.Strings(links)
	return links, nil
}

// Downloader fetches template documents referenced by seed links into a
// local directory. Files already present are never re-fetched, so repeated
// corpus builds are incremental.
type Downloader struct {
	client *http.Client
	dir    string
}

// NewDownloader creates a Downloader writing into dir.
func NewDownloader(dir string) *Downloader {
	return &Downloader{
		client: &http.Client{Timeout: 15 * time.Second},
		dir:    dir,
	}
}

// Templates downloads every URL whose path ends in .docx and returns the
// local paths of all templates now present (freshly fetched or cached).
// Individual download failures are logged and skipped.
func (d *Downloader) Templates(ctx context.Context, urls []string) ([]string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return nil, fmt.Errorf("create template dir: %w", err)
	}
	logger := common.Logger()

	var paths []string
	for _, u := range urls {
		parsed, err := url.Parse(u)
		if err != nil || !strings.HasSuffix(strings.ToLower(parsed.Path), ".docx") {
			continue
		}
		name := path.Base(parsed.Path)
		dest := filepath.Join(d.dir, name)
		if _, err := os.Stat(dest); err == nil {
			logger.Debug("refs: template already downloaded", "path", dest)
			paths = append(paths, dest)
			continue
		}
		if err := d.fetch(ctx, u, dest); err != nil {
			logger.Warn("refs: template download failed", "url", u, "error", err)
			continue
		}
		logger.Info("refs: template downloaded", "url", u, "path", dest)
		paths = append(paths, dest)
	}
	return paths, nil
}

func (d *Downloader) fetch(ctx context.Context, u, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", downloadUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, body, 0o644)
}
