package asset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/skyraid/asset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
name: trainer
parts:
  - name: body
    center: [0, 0, 0]
    size: [3, 0.5, 0.5]
clips:
  - name: Idle
    duration: 2
`

func TestBuiltin(t *testing.T) {
	m := asset.Builtin()
	assert.Len(t, m.Parts, 3)

	clip, ok := m.Clip("FUSELAGE")
	require.True(t, ok)
	assert.Equal(t, 1.0, clip.Duration)
	assert.Equal(t, []string{"fuselage"}, m.ClipNames())

	_, ok = m.Clip("missing")
	assert.False(t, ok)
}

func TestDecode(t *testing.T) {
	m, err := asset.Decode([]byte(manifest))
	require.NoError(t, err)
	assert.Equal(t, "trainer", m.Name)
	_, ok := m.Clip("idle")
	assert.True(t, ok)

	_, err = asset.Decode([]byte("name: empty\n"))
	assert.ErrorIs(t, err, asset.ErrNoParts)

	_, err = asset.Decode([]byte("parts:\n  - name: flat\n    size: [1, 0, 1]\n"))
	assert.ErrorIs(t, err, asset.ErrBadPart)
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	p, err := asset.FileLoader{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "trainer", p.Model().Name)

	_, err = asset.FileLoader{Path: filepath.Join(dir, "nope.yaml")}.Load(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = asset.FileLoader{Path: path}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
