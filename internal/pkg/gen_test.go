package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	// When: two ids are generated
	first, err := GenerateGameID()
	require.NoError(t, err)

	second, err := GenerateGameID()
	require.NoError(t, err)

	// Then: they are hex encoded and differ
	assert.Len(t, first, 2*gameIDBytes)
	assert.NotEqual(t, first, second)
}
