package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateProductIDDeterministic(t *testing.T) {
	first := GenerateProductID("Infrastructure Pro", "per host")
	second := GenerateProductID("Infrastructure Pro", "per host")

	require.Len(t, first, 12)
	assert.Equal(t, first, second)
}

func TestGenerateProductIDNormalization(t *testing.T) {
	base := GenerateProductID("Infrastructure Pro", "per host")

	assert.Equal(t, base, GenerateProductID("infrastructure pro", "PER HOST"))
	assert.Equal(t, base, GenerateProductID("  Infrastructure Pro  ", " per host\t"))
}

func TestGenerateProductIDDistinctInputs(t *testing.T) {
	ids := map[string]struct{}{
		GenerateProductID("Infrastructure Pro", "per host"):        {},
		GenerateProductID("Infrastructure Enterprise", "per host"): {},
		GenerateProductID("Infrastructure Pro", "per container"):   {},
		GenerateProductID("Log Management", "per GB"):              {},
	}

	assert.Len(t, ids, 4)
}

func TestGenerateProductIDHexOnly(t *testing.T) {
	id := GenerateProductID("APM", "per host")
	require.Len(t, id, 12)
	for _, c := range id {
		assert.Contains(t, "0123456789abcdef", string(c))
	}
}
