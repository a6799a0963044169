package mock

import (
	"context"
	"strings"
	"sync"
	"unicode"
)

var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "the": {}, "with": {}, "for": {}, "of": {},
	"in": {}, "to": {}, "from": {}, "that": {}, "your": {}, "by": {}, "on": {},
}

// KeywordEmbedder is a deterministic bag-of-words embedder.
//
// Each distinct token is assigned the next free dimension the first time it
// is seen, so texts sharing words have positive cosine similarity and texts
// with no words in common score zero. Vectors are raw term counts.
type KeywordEmbedder struct {
	mu    sync.Mutex
	dim   int
	vocab map[string]int
}

// NewKeywordEmbedder creates a keyword embedder producing vectors of size dim.
// A non-positive dim selects 1024.
func NewKeywordEmbedder(dim int) *KeywordEmbedder {
	if dim <= 0 {
		dim = 1024
	}
	return &KeywordEmbedder{dim: dim, vocab: make(map[string]int)}
}

// EmbedText returns the term-count vector for text.
func (k *KeywordEmbedder) EmbedText(_ context.Context, text string) ([]float32, error) {
	return k.vector(text), nil
}

// EmbedTexts returns term-count vectors in input order.
func (k *KeywordEmbedder) EmbedTexts(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = k.vector(text)
	}
	return out, nil
}

func (k *KeywordEmbedder) vector(text string) []float32 {
	v := make([]float32, k.dim)
	for _, tok := range Tokenize(text) {
		v[k.index(tok)]++
	}
	return v
}

func (k *KeywordEmbedder) index(token string) int {
	k.mu.Lock()
	defer k.mu.Unlock()
	if idx, ok := k.vocab[token]; ok {
		return idx
	}
	idx := len(k.vocab) % k.dim
	k.vocab[token] = idx
	return idx
}

// Tokenize lowercases text, splits on anything that is not a letter or
// digit and drops common English stop words.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}
