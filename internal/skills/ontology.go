// Package skills provides the skill ontology and multi-strategy skill
// extraction against it. The ontology is embedded, versioned configuration:
// it is validated and loaded once at startup and shared read-only by all
// extraction calls.
package skills

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/cloudflare/ahocorasick"

	"github.com/jonathan/resume-matcher/internal/types"
)

//go:embed ontology.json
var ontologyJSON []byte

//go:embed ontology.schema.json
var ontologySchemaJSON []byte

// Entry is one canonical skill in the ontology.
type Entry struct {
	Name     string              `json:"name"`
	Category types.SkillCategory `json:"category"`
	Synonyms []string            `json:"synonyms"`
}

// ontologyFile is the on-disk shape of the embedded ontology.
type ontologyFile struct {
	Version string  `json:"version"`
	Skills  []Entry `json:"skills"`
}

// literalTerm is one pattern fed to the multi-pattern matcher: either a
// canonical name or a synonym, pointing back to its entry.
type literalTerm struct {
	text    string
	entry   int
	synonym bool
}

// Ontology is the immutable skill catalog plus the precompiled matching
// structures built over it. Safe for concurrent use.
type Ontology struct {
	Version string

	entries []Entry
	byName  map[string]int

	terms   []literalTerm
	matcher *ahocorasick.Matcher
}

var (
	defaultOntology     *Ontology
	defaultOntologyErr  error
	defaultOntologyOnce sync.Once
)

// Default returns the process-wide ontology loaded from the embedded
// configuration. The embedded data is validated against its schema on first
// use; a validation failure here is a build defect, so it is returned rather
// than swallowed.
func Default() (*Ontology, error) {
	defaultOntologyOnce.Do(func() {
		defaultOntology, defaultOntologyErr = Load(ontologyJSON)
	})
	return defaultOntology, defaultOntologyErr
}

// MustDefault returns the embedded ontology, panicking on a validation
// failure. Intended for composition roots where startup cannot proceed
// without the catalog.
func MustDefault() *Ontology {
	ont, err := Default()
	if err != nil {
		panic(err)
	}
	return ont
}

// Load parses and validates ontology JSON and builds the lookup and
// multi-pattern matching structures over it.
func Load(data []byte) (*Ontology, error) {
	if err := validateOntology(data); err != nil {
		return nil, err
	}

	var file ontologyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &OntologyFormatError{Message: "failed to parse ontology JSON", Cause: err}
	}

	ont := &Ontology{
		Version: file.Version,
		entries: file.Skills,
		byName:  make(map[string]int, len(file.Skills)),
	}

	for i, entry := range file.Skills {
		name := strings.ToLower(entry.Name)
		ont.byName[name] = i
		ont.terms = append(ont.terms, literalTerm{text: name, entry: i})
		for _, syn := range entry.Synonyms {
			ont.terms = append(ont.terms, literalTerm{text: strings.ToLower(syn), entry: i, synonym: true})
		}
	}

	// One automaton over every canonical name and synonym replaces a
	// per-entry substring scan of the whole text.
	patterns := make([]string, len(ont.terms))
	for i, term := range ont.terms {
		patterns[i] = term.text
	}
	ont.matcher = ahocorasick.NewStringMatcher(patterns)

	return ont, nil
}

// Len returns the number of canonical skills in the catalog.
func (o *Ontology) Len() int {
	return len(o.entries)
}

// Lookup returns the entry for a canonical name, case-insensitively.
func (o *Ontology) Lookup(name string) (Entry, bool) {
	idx, ok := o.byName[strings.ToLower(name)]
	if !ok {
		return Entry{}, false
	}
	return o.entries[idx], true
}

// Entries returns a copy of the catalog entries.
func (o *Ontology) Entries() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// matchLiterals runs the automaton over lowered text and returns the entry
// index and synonym flag for every canonical name or synonym that occurs as
// a substring.
func (o *Ontology) matchLiterals(lowered string) []literalTerm {
	hits := o.matcher.Match([]byte(lowered))
	matched := make([]literalTerm, 0, len(hits))
	for _, hit := range hits {
		matched = append(matched, o.terms[hit])
	}
	return matched
}

// containsMatch finds an entry whose canonical name equals the candidate, or
// contains it, or is contained by it. Used by the pattern-context scan where
// captured phrases are rarely exact skill names.
func (o *Ontology) containsMatch(candidate string) (int, bool) {
	lowered := strings.ToLower(strings.TrimSpace(candidate))
	if lowered == "" {
		return 0, false
	}
	if idx, ok := o.byName[lowered]; ok {
		return idx, true
	}
	for i, entry := range o.entries {
		name := strings.ToLower(entry.Name)
		if strings.Contains(lowered, name) || strings.Contains(name, lowered) {
			return i, true
		}
	}
	return 0, false
}
