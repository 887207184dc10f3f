package writers

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleWriterSortsFiles(t *testing.T) {
	var out bytes.Buffer
	_, err := ConsoleWriter{Out: &out}.Write(map[string]string{
		"outputs.tf":    "output",
		"networking.tf": "network",
		"providers.tf":  "provider",
	})
	require.NoError(t, err)

	text := out.String()
	assert.Less(t, strings.Index(text, "# networking.tf"), strings.Index(text, "# outputs.tf"))
	assert.Less(t, strings.Index(text, "# outputs.tf"), strings.Index(text, "# providers.tf"))
}

func TestFileWriter(t *testing.T) {
	dir := t.TempDir()
	writer := NewFileWriter(filepath.Join(dir, "nested"))

	dest, err := writer.Write(map[string]string{"networking.tf": "resource"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nested")+string(os.PathSeparator), dest)

	contents, err := os.ReadFile(filepath.Join(dir, "nested", "networking.tf"))
	require.NoError(t, err)
	assert.Equal(t, "resource", string(contents))
}

func TestFileWriterDefaultsToTempDir(t *testing.T) {
	dest, err := NewFileWriter("").Write(map[string]string{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dest, os.TempDir()))
	assert.Contains(t, dest, "lzterra-")
}
