package proc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePids(t *testing.T) {
	pids, err := parsePids(" 1207 934 18\n")
	require.NoError(t, err)
	assert.Equal(t, []int32{1207, 934, 18}, pids)
}

func TestParsePidsEmpty(t *testing.T) {
	pids, err := parsePids("")
	require.NoError(t, err)
	assert.Empty(t, pids)
}

func TestParsePidsRejectsGarbage(t *testing.T) {
	_, err := parsePids("1207 bogus")
	require.Error(t, err)
}

func TestNewResolver(t *testing.T) {
	assert.NotNil(t, NewResolver())
}

func TestTableResolverNoMatch(t *testing.T) {
	pids, err := TableResolver{}.Resolve("nonexistent-binary-xyz")
	require.NoError(t, err)
	assert.Empty(t, pids)
}
