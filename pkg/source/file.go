// Package source provides content sources for the search driver.
package source

import (
	"fmt"
	"os"
)

// FileSource reads whole files into memory as strings. It implements
// interfaces.ContentSource.
type FileSource struct{}

// NewFileSource creates a new file-backed content source
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Contents reads the file at path into a single string.
func (s *FileSource) Contents(path string) (string, error) {
	// #nosec G304 - The path is the user's own command-line argument
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
