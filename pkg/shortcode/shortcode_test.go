package shortcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndCharset(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q in %q", r, code)
		}
	}
}

func TestGenerateProducesDistinctCodes(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		require.NoError(t, err)
		seen[code] = true
	}
	// With 62^6 combinations, 1000 draws colliding would mean a broken
	// random source.
	assert.Greater(t, len(seen), 990)
}
