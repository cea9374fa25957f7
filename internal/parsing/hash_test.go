package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentHash_Empty(t *testing.T) {
	assert.Equal(t, "", ContentHash(""))
	assert.Equal(t, "", ContentHash("   \n  "))
}

func TestContentHash_Deterministic(t *testing.T) {
	h1 := ContentHash("Senior Go engineer with Kubernetes experience.")
	h2 := ContentHash("Senior Go engineer with Kubernetes experience.")

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
}

func TestContentHash_NormalizedEquivalence(t *testing.T) {
	// Texts that normalize identically hash identically.
	h1 := ContentHash("Go   and Docker")
	h2 := ContentHash("Go and    Docker")
	assert.Equal(t, h1, h2)
}

func TestContentHash_DifferentContent(t *testing.T) {
	assert.NotEqual(t, ContentHash("resume one"), ContentHash("resume two"))
}
