// Package vector implements the similarity index over chunked reference
// text: built offline with provider embeddings, persisted to a directory,
// and queried read-only with brute-force cosine ranking.
package vector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

const indexFile = "index.json"

// Embedder generates vectors for texts. *ai.Client satisfies it.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// SourceDoc is one reference document fed into the index build.
type SourceDoc struct {
	Source string
	Text   string
}

// Chunk is one embedded slice of reference text.
type Chunk struct {
	Source string    `json:"source"`
	Text   string    `json:"text"`
	Vector []float32 `json:"vector"`
}

// Index is a read-only snapshot of the embedded reference corpus.
type Index struct {
	chunks []Chunk
}

// Len returns the number of chunks in the index.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.chunks)
}

// Build chunks the source documents, embeds every chunk and persists the
// result under dir. The embedding call requires a configured provider.
func Build(ctx context.Context, embedder Embedder, docs []SourceDoc, dir string) (*Index, error) {
	if embedder == nil {
		return nil, errors.New("no embedding provider configured")
	}
	var chunks []Chunk
	var texts []string
	for _, doc := range docs {
		for _, c := range chunkText(doc.Text, defaultChunkSize, defaultChunkOverlap) {
			chunks = append(chunks, Chunk{Source: doc.Source, Text: c})
			texts = append(texts, c)
		}
	}
	if len(chunks) == 0 {
		return nil, errors.New("no reference text to index")
	}

	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed reference chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return nil, fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(vectors))
	}
	for i := range chunks {
		chunks[i].Vector = vectors[i]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create index dir: %w", err)
	}
	data, err := json.Marshal(chunks)
	if err != nil {
		return nil, fmt.Errorf("encode index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, indexFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	return &Index{chunks: chunks}, nil
}

// Load reads a persisted index from dir. An absent directory or index file
// is a valid state and yields a nil index with no error.
func Load(dir string) (*Index, error) {
	data, err := os.ReadFile(filepath.Join(dir, indexFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read index: %w", err)
	}
	var chunks []Chunk
	if err := json.Unmarshal(data, &chunks); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}
	if len(chunks) == 0 {
		return nil, nil
	}
	return &Index{chunks: chunks}, nil
}

// Search embeds the query and returns the top-k chunks by cosine similarity.
func (ix *Index) Search(ctx context.Context, embedder Embedder, query string, k int) ([]Chunk, error) {
	if ix == nil || len(ix.chunks) == 0 {
		return nil, nil
	}
	if embedder == nil {
		return nil, errors.New("no embedding provider configured")
	}
	if k <= 0 {
		k = 3
	}
	vectors, err := embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return nil, errors.New("empty query embedding")
	}
	qv := vectors[0]

	type scored struct {
		chunk Chunk
		score float64
	}
	ranked := make([]scored, 0, len(ix.chunks))
	for _, c := range ix.chunks {
		ranked = append(ranked, scored{chunk: c, score: cosine(qv, c.Vector)})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]Chunk, 0, k)
	for _, s := range ranked[:k] {
		out = append(out, s.chunk)
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
