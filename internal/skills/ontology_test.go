package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestDefault_LoadsEmbeddedOntology(t *testing.T) {
	ont, err := Default()
	require.NoError(t, err)
	assert.NotEmpty(t, ont.Version)
	assert.Greater(t, ont.Len(), 50)
}

func TestLookup_CaseInsensitive(t *testing.T) {
	ont := MustDefault()

	entry, ok := ont.Lookup("Python")
	require.True(t, ok)
	assert.Equal(t, "python", entry.Name)
	assert.Equal(t, types.CategoryProgrammingLanguage, entry.Category)
	assert.Contains(t, entry.Synonyms, "py")

	_, ok = ont.Lookup("not-a-skill")
	assert.False(t, ok)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load([]byte("{not json"))
	require.Error(t, err)
}

func TestLoad_SchemaViolation(t *testing.T) {
	bad := []byte(`{"version": "1", "skills": [{"name": "thing", "category": "not_a_category", "synonyms": []}]}`)

	_, err := Load(bad)
	require.Error(t, err)

	var validationErr *OntologyValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestLoad_MissingVersion(t *testing.T) {
	bad := []byte(`{"skills": [{"name": "go", "category": "programming_language", "synonyms": []}]}`)

	_, err := Load(bad)
	assert.Error(t, err)
}

func TestContainsMatch_BothDirections(t *testing.T) {
	ont := MustDefault()

	// Candidate contains the skill name.
	idx, ok := ont.containsMatch("python and react")
	require.True(t, ok)
	assert.Equal(t, "python", ont.entries[idx].Name)

	// Candidate contained in a skill name.
	idx, ok = ont.containsMatch("penetration")
	require.True(t, ok)
	assert.Equal(t, "penetration testing", ont.entries[idx].Name)

	_, ok = ont.containsMatch("zzzz")
	assert.False(t, ok)
}
