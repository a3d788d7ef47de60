package platform

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spinweighted/pkg/codec"
	"github.com/aretw0/spinweighted/pkg/field"
	"github.com/aretw0/spinweighted/pkg/vector"
)

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	ws := New()
	f := field.New(-2, vector.New(complex(1, 2), 3))

	for _, name := range []string{"f.json", "f.yaml", "f.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, ws.Save(path, f))

			got, err := ws.Load(path)
			require.NoError(t, err)
			assert.True(t, f.Equal(got), "got %+v", got)
		})
	}

	state := ws.State().(WorkspaceState)
	assert.Equal(t, 3, state.Saves)
	assert.Equal(t, 3, state.Loads)
	assert.Equal(t, "workspace", ws.ComponentType())
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	ws := New(WithFileMode(0o600))

	path := filepath.Join(dir, "f.json")
	require.NoError(t, ws.Save(path, field.Filled(0, 1, 1)))
	require.NoError(t, ws.Save(path, field.Filled(0, 2, 1)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.json", entries[0].Name())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	ws := New()

	_, err := ws.Load(filepath.Join(dir, "f.csv"))
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = ws.Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"spin": "x"}`), 0o644))
	_, err = ws.Load(bad)
	assert.ErrorContains(t, err, "failed to decode")
}

func TestLoadRejectsMissingSpin(t *testing.T) {
	dir := t.TempDir()
	ws := New()

	files := map[string]string{
		"nospin.json": `{"data": [[4, 0]]}`,
		"nospin.yaml": "data: [[4, 0]]\n",
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

			_, err := ws.Load(path)
			assert.ErrorIs(t, err, field.ErrMissingSpin)
		})
	}
	assert.Equal(t, 0, ws.State().(WorkspaceState).Loads)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.yaml", "nested/c.json", "nested/deep/d.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}
	ws := New()

	paths, err := ws.Expand(filepath.Join(dir, "**", "*.json"), filepath.Join(dir, "a.json"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "nested", "c.json"),
		filepath.Join(dir, "nested", "deep", "d.json"),
	}, paths)

	_, err = ws.Expand(filepath.Join(dir, "*.toml"))
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestEmit(t *testing.T) {
	f := field.Filled(1, 1, 2)

	var buf bytes.Buffer
	require.NoError(t, New().Emit(&buf, "", f))
	assert.Equal(t, "{\n  \"spin\": 1,\n  \"data\": [\n    [\n      2,\n      0\n    ]\n  ]\n}\n", buf.String())

	buf.Reset()
	require.NoError(t, New(WithFormat("yaml")).Emit(&buf, "", f))
	assert.True(t, strings.HasPrefix(buf.String(), "spin: 1\n"), buf.String())

	err := New(WithFormat("toml")).Emit(&buf, "", f)
	assert.ErrorIs(t, err, codec.ErrUnknownFormat)

	path := filepath.Join(t.TempDir(), "out.yaml")
	buf.Reset()
	require.NoError(t, New().Emit(&buf, path, f))
	assert.Empty(t, buf.String())
	assert.FileExists(t, path)
}
