package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "exact", cfg.Kernel.Backend)
	assert.Equal(t, 200, cfg.Kernel.MeshCells)
	assert.Equal(t, "cube", cfg.Solid.DefaultKind)
	assert.Equal(t, 1.0, cfg.Solid.DefaultEdge)
	assert.False(t, cfg.Solid.ShowDual)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
logLevel: debug
kernel:
  backend: sdfx
  meshCells: 96
solid:
  defaultKind: icosahedron
  defaultEdge: 2.5
  showDual: true
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "solidlab.yaml"), content, 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sdfx", cfg.Kernel.Backend)
	assert.Equal(t, 96, cfg.Kernel.MeshCells)
	assert.Equal(t, "icosahedron", cfg.Solid.DefaultKind)
	assert.Equal(t, 2.5, cfg.Solid.DefaultEdge)
	assert.True(t, cfg.Solid.ShowDual)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SOLIDLAB_LOGLEVEL", "warn")
	t.Setenv("SOLIDLAB_KERNEL_BACKEND", "sdfx")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "sdfx", cfg.Kernel.Backend)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	write := func(content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "solidlab.yaml"), []byte(content), 0o644))
	}

	write("kernel:\n  backend: nurbs\n")
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend")

	write("kernel:\n  meshCells: -5\n")
	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "meshCells")

	write("solid:\n  defaultEdge: 0\n")
	_, err = Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaultEdge")
}
