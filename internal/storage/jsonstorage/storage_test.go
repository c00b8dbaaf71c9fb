package jsonstorage

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func TestReadAll(t *testing.T) {
	t.Run("it can read a fixture", func(t *testing.T) {
		b, err := ReadAll("./__fixtures__/small.json", 0)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"unified":"1F600","sort_order":1}]`, string(b))
	})

	t.Run("it reads files bigger than the initial buffer", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.json")
		content := make([]byte, 4096)
		for i := range content {
			content[i] = 'a'
		}
		require.NoError(t, os.WriteFile(path, content, 0644))

		b, err := ReadAll(path, 0)
		require.NoError(t, err)
		assert.Equal(t, content, b)
	})

	t.Run("limit is enforced", func(t *testing.T) {
		_, err := ReadAll("./__fixtures__/small.json", 8)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrFileTooLarge))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadAll("./__fixtures__/nope.json", 0)
		require.Error(t, err)
		assert.True(t, os.IsNotExist(errors.Cause(err)))
	})

	t.Run("directory is rejected", func(t *testing.T) {
		_, err := ReadAll(t.TempDir(), 0)
		require.Error(t, err)
	})
}

func TestReplace(t *testing.T) {
	t.Run("it creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "src", "emoji.json")

		require.NoError(t, Replace(path, []byte("[]\n")))
		assert.FileExists(t, path)

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(b))
	})

	t.Run("it fully replaces previous contents", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "emoji.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"a":1},{"b":2},{"c":3}]`), 0644))

		require.NoError(t, Replace(path, []byte(`[]`)))

		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(b))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary file must not be left behind")
	})

	t.Run("previous contents survive a failed replace", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "emoji.json")
		require.NoError(t, os.Mkdir(path, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644))

		err := Replace(path, []byte(`[]`))
		require.Error(t, err)

		assert.FileExists(t, filepath.Join(path, "keep"))
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestExists(t *testing.T) {
	ok, err := Exists("./__fixtures__/small.json")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists("./__fixtures__/missing.json")
	require.NoError(t, err)
	assert.False(t, ok)
}
