package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// emit serializes doc with 2-space indentation and writes the identical
// bytes to the optional output file (overwrite) and then to w. The
// parent process reads w as exactly one JSON document per invocation.
func emit(w io.Writer, doc any, outputPath string) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	b = append(b, '\n')

	if outputPath != "" {
		if err := os.WriteFile(outputPath, b, 0o644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}
	}

	if _, err := w.Write(b); err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok {
		_ = f.Sync()
	}
	return nil
}
