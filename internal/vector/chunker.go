package vector

import "strings"

const (
	defaultChunkSize    = 1000
	defaultChunkOverlap = 200
)

// chunkText splits text into overlapping windows of roughly size characters,
// preferring to break at a whitespace boundary near the window end so clause
// text is not cut mid-word.
func chunkText(text string, size, overlap int) []string {
	if size <= 0 {
		size = defaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = defaultChunkOverlap
	}
	runes := []rune(text)
	var chunks []string
	for start := 0; start < len(runes); {
		end := start + size
		if end >= len(runes) {
			end = len(runes)
		} else {
			// walk back to the nearest whitespace, but never past half the window
			cut := end
			for cut > start+size/2 && !isSpace(runes[cut-1]) {
				cut--
			}
			if cut > start+size/2 {
				end = cut
			}
		}
		if chunk := strings.TrimSpace(string(runes[start:end])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		if end == len(runes) {
			break
		}
		start = end - overlap
	}
	return chunks
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
