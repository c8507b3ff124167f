// Package testutil provides shared mock implementations for tests.
package testutil

import (
	"fmt"
	"sync"
)

// MockContentSource is a thread-safe mock implementation of
// interfaces.ContentSource for testing
type MockContentSource struct {
	mu       sync.Mutex
	files    map[string]string
	requests []string
	readErr  error
}

// NewMockContentSource creates a new mock content source
func NewMockContentSource() *MockContentSource {
	return &MockContentSource{
		files: make(map[string]string),
	}
}

// AddFile registers contents for a path
func (m *MockContentSource) AddFile(path, contents string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = contents
}

// SetError sets the error to return on Contents calls
func (m *MockContentSource) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErr = err
}

// Contents implements the ContentSource interface
func (m *MockContentSource) Contents(path string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Always track the request
	m.requests = append(m.requests, path)

	if m.readErr != nil {
		return "", m.readErr
	}

	contents, ok := m.files[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return contents, nil
}

// GetRequests returns a copy of all requested paths
func (m *MockContentSource) GetRequests() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.requests))
	copy(result, m.requests)
	return result
}

// MockLineSink is a thread-safe mock implementation of interfaces.LineSink
// for testing
type MockLineSink struct {
	mu      sync.Mutex
	lines   []string
	emitErr error
}

// NewMockLineSink creates a new mock line sink
func NewMockLineSink() *MockLineSink {
	return &MockLineSink{
		lines: []string{},
	}
}

// SetError sets the error to return on EmitLine calls
func (m *MockLineSink) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emitErr = err
}

// EmitLine implements the LineSink interface
func (m *MockLineSink) EmitLine(line string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emitErr != nil {
		return m.emitErr
	}

	m.lines = append(m.lines, line)
	return nil
}

// GetLines returns a copy of the lines emitted so far
func (m *MockLineSink) GetLines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.lines))
	copy(result, m.lines)
	return result
}
