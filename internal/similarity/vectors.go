package similarity

import "github.com/jonathan/resume-matcher/internal/types"

// DocumentVectors builds TF-IDF vectors for a document and its sections over
// a shared vocabulary derived from the document itself. The returned map is
// keyed by section name plus "document" for the full text.
func DocumentVectors(text string, sections []types.DocumentSection) map[string][]float64 {
	corpus := make([]string, 0, len(sections)+1)
	corpus = append(corpus, text)
	for _, s := range sections {
		corpus = append(corpus, s.Text)
	}

	v := NewVectorizer(corpus)
	vectors := make(map[string][]float64, len(sections)+1)
	vectors["document"] = v.Vectorize(text)
	for _, s := range sections {
		vectors[s.Name] = v.Vectorize(s.Text)
	}
	return vectors
}
