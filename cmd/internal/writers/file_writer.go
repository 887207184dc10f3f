package writers

import (
	"os"
	"path/filepath"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/strutil"
	"github.com/google/uuid"
)

type FileWriter struct {
	dest string
}

func NewFileWriterToTempDir() *FileWriter {
	return &FileWriter{
		dest: os.TempDir() + string(os.PathSeparator) + "lzterra-" + uuid.New().String() + string(os.PathSeparator),
	}
}

func NewFileWriter(dest string) *FileWriter {
	if dest == "" {
		return NewFileWriterToTempDir()
	}

	return &FileWriter{
		dest: strutil.EnsureSuffix(dest, string(os.PathSeparator)),
	}
}

func (c FileWriter) Write(files map[string]string) (string, error) {
	for k, v := range files {
		if err := c.write(k, v); err != nil {
			return "", err
		}
	}
	return c.dest, nil
}

func (c FileWriter) write(filename string, contents string) error {
	path := filepath.Join(c.dest, filename)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(contents), 0644)
}
