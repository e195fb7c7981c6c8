package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDropsBlankLines(t *testing.T) {
	words, _, err := parse(strings.NewReader("apple\n\n  \nape\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "ape"}, words)
}

func TestParseTrimsAndHandlesCRLF(t *testing.T) {
	words, _, err := parse(strings.NewReader("  apple  \r\nbanana\r\n\tcherry"))
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, words)
}

func TestParseEmpty(t *testing.T) {
	words, _, err := parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("apple\n\n  \nape\n"), 0644))

	loader := NewLoader(path)
	words, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "ape"}, words)
	assert.Equal(t, LoaderStats{Lines: 4, Words: 2, BlankLines: 2}, loader.Stats())
}

func TestLoadFileWithByteOrderMark(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBFapple\r\napply\r\nape\r\n"), 0644))

	words, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "apply", "ape"}, words)
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	words, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.NotNil(t, words)
	assert.Empty(t, words)
}

func TestLoadFileNoPath(t *testing.T) {
	words, err := LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadFileDirectoryFails(t *testing.T) {
	_, err := LoadFile(t.TempDir())
	assert.Error(t, err)
}
