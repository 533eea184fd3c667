package listsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leslieo2/sbrdgen/internal/value"
)

func TestResolveChars(t *testing.T) {
	l := NewLoader()
	out, err := l.Resolve(Spec{Chars: "abc"}, value.KindString, "")
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, want := range []string{"a", "b", "c"} {
		s, ok := out[i].AsString()
		assert.True(t, ok)
		assert.Equal(t, want, s)
	}
}

func TestResolveValues(t *testing.T) {
	l := NewLoader()
	out, err := l.Resolve(Spec{Values: []value.Value{value.Int(1), value.Int(2)}}, value.KindInt, "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	i0, _ := out[0].AsInt()
	assert.EqualValues(t, 1, i0)
}

func TestResolveOrderIsCharsThenValuesThenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("z\n"), 0o644))

	l := NewLoader()
	out, err := l.Resolve(Spec{Chars: "a", Values: []value.Value{value.String("b")}, FilePath: path}, value.KindString, "")
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, want := range []string{"a", "b", "z"} {
		s, _ := out[i].AsString()
		assert.Equal(t, want, s)
	}
}

func TestResolveFilePathRelativeToBaseDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "names.txt"), []byte("x\ny\n"), 0o644))

	l := NewLoader()
	out, err := l.Resolve(Spec{FilePath: "names.txt"}, value.KindString, dir)
	require.NoError(t, err)
	require.Len(t, out, 2)
}

func TestResolveFileIsCachedAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "once.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0o644))

	l := NewLoader()
	first, err := l.Resolve(Spec{FilePath: path}, value.KindInt, "")
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	second, err := l.Resolve(Spec{FilePath: path}, value.KindInt, "")
	require.NoError(t, err, "second resolve should hit the cache, not the now-deleted file")
	assert.Equal(t, len(first), len(second))
}

func TestResolveEmptyFailsWithEmptySelectValues(t *testing.T) {
	l := NewLoader()
	_, err := l.Resolve(Spec{}, value.KindString, "")
	assert.ErrorIs(t, err, ErrEmptySelectValues)
}

func TestResolveParseFailurePropagates(t *testing.T) {
	l := NewLoader()
	_, err := l.Resolve(Spec{Values: []value.Value{value.String("not-an-int")}}, value.KindInt, "")
	assert.Error(t, err)
}
