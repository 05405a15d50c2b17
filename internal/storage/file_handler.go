// Package storage reads and writes document content from and to files.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// ErrEmptyPath is returned when a file handler has no file to work on.
var ErrEmptyPath = errors.New("empty file path")

// FileHandler loads and saves the raw bytes of a single file.
type FileHandler struct {
	mutex    sync.Mutex
	filename string
}

// NewFileHandler returns a file handler for the given file.
func NewFileHandler(filename string) *FileHandler {
	f := FileHandler{filename: filename}
	return &f
}

// Filename returns the name of the handled file.
func (h *FileHandler) Filename() string { return h.filename }

// Load reads the full file content. A file that does not exist yet is read as
// empty content.
func (h *FileHandler) Load() ([]byte, error) {
	if h.filename == "" {
		return nil, ErrEmptyPath
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	content, err := os.ReadFile(h.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read '%s': %w", h.filename, err)
	}
	return content, nil
}

// Save overwrites the file with the given content, creating it if necessary.
func (h *FileHandler) Save(content []byte) error {
	if h.filename == "" {
		return ErrEmptyPath
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	f, err := os.OpenFile(h.filename, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("could not open '%s' for writing: %w", h.filename, err)
	}

	writer := bufio.NewWriter(f)
	if _, err := writer.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("could not write '%s': %w", h.filename, err)
	}
	if err := writer.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("could not write '%s': %w", h.filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close '%s': %w", h.filename, err)
	}
	return nil
}

// Load reads the content of the file at path; see FileHandler.Load.
func Load(path string) ([]byte, error) {
	return NewFileHandler(path).Load()
}
