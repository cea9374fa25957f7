// Package similarity converts text into sparse lexical vectors and compares
// them with cosine similarity. The vocabulary for a comparison is always
// derived from the texts being compared, so any two vectors produced by the
// same Vectorizer are directly comparable; vectors are never built against
// vocabulary frozen from unrelated earlier input.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// MaxDimension caps the vocabulary size and therefore the vector dimension.
const MaxDimension = 1000

const minTokenLen = 2

var tokenSplitRe = regexp.MustCompile(`[^a-z0-9+#]+`)

// Vectorizer maps text onto a fixed term vocabulary built from a reference
// corpus, weighting terms by smoothed inverse document frequency. Immutable
// once constructed.
type Vectorizer struct {
	vocab []string
	index map[string]int
	idf   []float64
}

// NewVectorizer builds a vectorizer whose vocabulary is the unigrams and
// bigrams of the given corpus, stop words removed, capped at MaxDimension
// terms by descending document frequency. An empty corpus yields a
// vectorizer that produces empty vectors.
func NewVectorizer(corpus []string) *Vectorizer {
	docFreq := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, term := range terms(doc) {
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	vocab := make([]string, 0, len(docFreq))
	for term := range docFreq {
		vocab = append(vocab, term)
	}
	// Deterministic vocabulary: frequency descending, then lexical.
	sort.Slice(vocab, func(i, j int) bool {
		if docFreq[vocab[i]] != docFreq[vocab[j]] {
			return docFreq[vocab[i]] > docFreq[vocab[j]]
		}
		return vocab[i] < vocab[j]
	})
	if len(vocab) > MaxDimension {
		vocab = vocab[:MaxDimension]
	}

	v := &Vectorizer{
		vocab: vocab,
		index: make(map[string]int, len(vocab)),
		idf:   make([]float64, len(vocab)),
	}
	n := float64(len(corpus))
	for i, term := range vocab {
		v.index[term] = i
		// Smoothed IDF keeps terms shared by every corpus document from
		// vanishing, which matters when the corpus is just the two texts
		// under comparison.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return v
}

// NewPairVectorizer builds a vectorizer from the two texts being compared.
func NewPairVectorizer(a, b string) *Vectorizer {
	return NewVectorizer([]string{a, b})
}

// Dimension returns the vector length this vectorizer produces.
func (v *Vectorizer) Dimension() int {
	return len(v.vocab)
}

// Vectorize maps text onto the vocabulary as an L2-normalized TF-IDF
// vector. Empty or out-of-vocabulary input yields a zero vector rather
// than an error.
func (v *Vectorizer) Vectorize(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	tokens := terms(text)
	if len(tokens) == 0 {
		return vec
	}

	total := float64(len(tokens))
	for _, term := range tokens {
		if i, ok := v.index[term]; ok {
			vec[i] += 1 / total
		}
	}
	for i := range vec {
		vec[i] *= v.idf[i]
	}

	normalize(vec)
	return vec
}

// PairSimilarity vectorizes two texts over their combined vocabulary and
// returns their cosine similarity.
func PairSimilarity(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}
	v := NewPairVectorizer(a, b)
	return CosineSimilarity(v.Vectorize(a), v.Vectorize(b))
}

// terms tokenizes text into stop-word-filtered unigrams plus adjacent
// bigrams.
func terms(text string) []string {
	if text == "" {
		return nil
	}

	raw := tokenSplitRe.Split(strings.ToLower(text), -1)
	unigrams := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < minTokenLen || stopwords[tok] {
			continue
		}
		unigrams = append(unigrams, tok)
	}

	result := make([]string, len(unigrams), 2*len(unigrams))
	copy(result, unigrams)
	for i := 0; i+1 < len(unigrams); i++ {
		result = append(result, unigrams[i]+" "+unigrams[i+1])
	}
	return result
}

// normalize scales vec to unit L2 length in place; the zero vector is left
// untouched.
func normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}
