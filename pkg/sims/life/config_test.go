package life

import (
	"testing"

	"lifegrid/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	c, err = FromMap(map[string]string{"topology": "torus", "size": "12"})
	require.NoError(t, err)
	assert.Equal(t, Config{Topology: Torus, Size: 12}, c)

	_, err = FromMap(map[string]string{"size": "0"})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = FromMap(map[string]string{"topology": "torus", "size": "4294967296"})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = FromMap(map[string]string{"size": "many"})
	assert.Error(t, err)

	_, err = FromMap(map[string]string{"topology": "sphere"})
	assert.ErrorIs(t, err, ErrUnknownTopology)
}

func TestRegistryBuildsWorlds(t *testing.T) {
	sim, err := core.Build("life", map[string]string{"topology": "torus", "size": "6"})
	require.NoError(t, err)
	w, ok := sim.(*World)
	require.True(t, ok)
	assert.Equal(t, Torus, w.Topology())
	assert.Equal(t, 6, w.Size())

	_, err = core.Build("life", map[string]string{"topology": "torus", "size": "-1"})
	assert.ErrorIs(t, err, ErrInvalidSize)
}
