package collide

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("subdivisions: 32\nbvh:\n  leaf_size: 4\n"))
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Subdivisions)
	assert.Equal(t, 4, cfg.BVH.LeafSize)
	assert.Equal(t, DefaultConfig().Epsilon, cfg.Epsilon)
	assert.Equal(t, DefaultConfig().BVH.Bins, cfg.BVH.Bins)

	cfg, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigRejects(t *testing.T) {
	for _, doc := range []string{
		"epsilon: 0",
		"subdivisions: 2",
		"bvh: {bins: 1}",
		"bvh: {leaf_size: 0}",
		"epsilon: [",
	} {
		_, err := LoadConfig(strings.NewReader(doc))
		assert.Error(t, err, doc)
	}
}

func TestConfigure(t *testing.T) {
	defer func() {
		require.NoError(t, Configure(DefaultConfig()))
	}()

	cfg := DefaultConfig()
	cfg.Subdivisions = 64
	require.NoError(t, Configure(cfg))
	assert.Equal(t, 64, Current().Subdivisions)

	cfg.Epsilon = -1
	assert.Error(t, Configure(cfg))
	assert.Equal(t, 64, Current().Subdivisions)
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	Logger().Info("built", "kind", Compound)
	assert.Contains(t, buf.String(), "kind=Compound")

	SetLogger(nil)
	assert.NotNil(t, Logger())
}
