package output

import (
	"fmt"
	"io"
	"os"

	"github.com/OctopusSolutionsEngineering/LandingZoneTerraform/cmd/internal/writers"
	"github.com/otiai10/copy"
	"go.uber.org/zap"
)

// WriteFiles writes the rendered files to the destination directory, to the console, or both. The files of
// the overlay directory are copied to the destination first, so a generated file replaces an overlay file
// with the same name.
func WriteFiles(files map[string]string, dest string, overlay string, console bool, out io.Writer) error {
	if overlay != "" && dest == "" {
		return fmt.Errorf("the overlay directory %s can only be used with a destination directory", overlay)
	}

	if dest != "" {
		if overlay != "" {
			if _, err := os.Stat(overlay); err != nil {
				return fmt.Errorf("failed to read the overlay directory: %w", err)
			}

			zap.L().Info("Copying overlay files from " + overlay + " to " + dest)
			if err := copy.Copy(overlay, dest); err != nil {
				return fmt.Errorf("failed to copy the overlay directory: %w", err)
			}
		}

		var writer writers.Writer = writers.NewFileWriter(dest)
		written, err := writer.Write(files)
		if err != nil {
			return err
		}

		zap.L().Info("Wrote " + fmt.Sprint(len(files)) + " files to " + written)
	}

	if console || dest == "" {
		var consoleWriter writers.Writer = writers.ConsoleWriter{Out: out}
		if _, err := consoleWriter.Write(files); err != nil {
			return err
		}
	}

	return nil
}
