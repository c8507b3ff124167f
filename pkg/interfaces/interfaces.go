// Package interfaces defines the core interfaces used throughout the application.
package interfaces

// ContentSource loads the full text to search into memory.
type ContentSource interface {
	Contents(path string) (string, error)
}

// LineSink receives matching lines in order.
type LineSink interface {
	EmitLine(line string) error
}
