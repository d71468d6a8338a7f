package envfmt

import (
	"fmt"
	"os"
)

const outputFileMode = 0o644

// WriteToFile appends content to the file at path, creating it if needed.
// Append mode matches how $GITHUB_ENV and shell rc files are populated.
func WriteToFile(path string, content string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
