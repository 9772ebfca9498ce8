package shadersrc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.vertexshader")
	writeFile(t, path, "#version 330 core\nvoid main() {}\n")

	src, err := ReadSource(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(src, "\x00"))
	assert.Equal(t, "#version 330 core\nvoid main() {}\n\x00", src)
}

func TestReadSourceErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadSource(filepath.Join(dir, "missing.fragmentshader"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := filepath.Join(dir, "empty.fragmentshader")
	writeFile(t, empty, " \n\t\n")
	_, err = ReadSource(empty)
	assert.ErrorContains(t, err, "empty")

	nul := filepath.Join(dir, "nul.fragmentshader")
	writeFile(t, nul, "void main() {}\x00garbage")
	_, err = ReadSource(nul)
	assert.ErrorContains(t, err, "offset 14")
}

func TestInfoLog(t *testing.T) {
	assert.Equal(t, "0:1(1): error: syntax error", InfoLog([]byte("0:1(1): error: syntax error\n\x00\x00")))
	assert.Equal(t, "", InfoLog(nil))
	assert.Equal(t, "", InfoLog([]byte{0}))
}
