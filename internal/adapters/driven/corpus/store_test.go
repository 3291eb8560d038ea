package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestStore_Glob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "nested", "c.txt"), "c")
	writeFile(t, filepath.Join(dir, "skip.md"), "md")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.txt"), 0o755))

	s := New()

	t.Run("single level sorted files only", func(t *testing.T) {
		files, err := s.Glob(filepath.Join(dir, "*.txt"))
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.txt"),
			filepath.Join(dir, "b.txt"),
		}, files)
	})

	t.Run("recursive", func(t *testing.T) {
		files, err := s.Glob(filepath.Join(dir, "**", "*.txt"))
		require.NoError(t, err)
		assert.Contains(t, files, filepath.Join(dir, "nested", "c.txt"))
		assert.Len(t, files, 3)
	})

	t.Run("no match", func(t *testing.T) {
		files, err := s.Glob(filepath.Join(dir, "*.csv"))
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestStore_ReadLines(t *testing.T) {
	dir := t.TempDir()
	s := New()

	tests := []struct {
		name     string
		content  string
		expected []string
	}{
		{"trailing newline", "ሰላም።   ፩፪ Hello!!\n", []string{"ሰላም።   ፩፪ Hello!!"}},
		{"crlf", "a\r\nb", []string{"a", "b"}},
		{"lone cr", "a\rb\r", []string{"a", "b"}},
		{"mixed terminators", "a\r\n\rb\nc", []string{"a", "", "b", "c"}},
		{"blank lines kept", "a\n\n b \n", []string{"a", "", " b "}},
		{"empty file", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			writeFile(t, path, tt.content)
			lines, err := s.ReadLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestStore_ReadLines_Errors(t *testing.T) {
	dir := t.TempDir()
	s := New()

	_, err := s.ReadLines(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xfe, 'a'}, 0o644))
	_, err = s.ReadLines(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_WriteLines(t *testing.T) {
	dir := t.TempDir()
	s := New()
	path := filepath.Join(dir, "out", "nested", "x.txt")

	require.NoError(t, s.WriteLines(path, []string{"ሰላም 12 hello", "", "b"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ሰላም 12 hello\n\nb", string(data))
}

func TestStore_LoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "pos", "a.txt"), "ጥሩ ነው\ngood\n")
	writeFile(t, filepath.Join(dir, "pos", "b.txt"), "ፍቅር ነው\n\n  love  \n")
	writeFile(t, filepath.Join(dir, "neg", "a.txt"), "መጥፎ ነው\nbad\n")
	writeFile(t, filepath.Join(dir, "neg", "notes.md"), "ignored")
	writeFile(t, filepath.Join(dir, "stray.txt"), "ignored too")

	ds, err := New().LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []domain.Sample{
		{Text: "መጥፎ ነው", Label: "neg"},
		{Text: "bad", Label: "neg"},
		{Text: "ጥሩ ነው", Label: "pos"},
		{Text: "good", Label: "pos"},
		{Text: "ፍቅር ነው", Label: "pos"},
		{Text: "love", Label: "pos"},
	}, ds.Samples)
}

func TestStore_LoadDir_NoSamples(t *testing.T) {
	t.Run("empty root", func(t *testing.T) {
		_, err := New().LoadDir(t.TempDir())
		assert.ErrorIs(t, err, domain.ErrNoSamples)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := New().LoadDir(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, domain.ErrNoSamples)
	})

	t.Run("only blank lines", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "pos", "a.txt"), "\n   \n")
		_, err := New().LoadDir(dir)
		assert.ErrorIs(t, err, domain.ErrNoSamples)
	})
}
