package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"askscraper/pkg/errors"
)

// tempSuffix marks a file still being streamed
const tempSuffix = ".part"

// Manager owns one destination directory
type Manager struct {
	outputDir string
}

// NewManager creates outputDir if needed. A permission failure is a setup
// *errors.Error whose message tells the user to create the directory.
func NewManager(outputDir string) (*Manager, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		if os.IsPermission(err) {
			return nil, errors.New(errors.ErrorTypeSetup, 0, "",
				fmt.Sprintf("insufficient permissions to create subdirectory %s/. Try manually creating it.", outputDir), err)
		}
		return nil, errors.New(errors.ErrorTypeSetup, 0, "",
			fmt.Sprintf("failed to create output directory %s", outputDir), err)
	}

	return &Manager{outputDir: outputDir}, nil
}

// Path returns the absolute location of name inside the directory
func (m *Manager) Path(name string) string {
	return filepath.Join(m.outputDir, name)
}

// Exists reports whether name is present in the directory
func (m *Manager) Exists(name string) bool {
	_, err := os.Stat(m.Path(name))
	return err == nil
}

// SaveStream copies r into name without holding the payload in memory.
// Bytes land in a temporary file first; only a complete copy is renamed
// over name, replacing any previous file. A failed copy leaves nothing
// behind under either name.
func (m *Manager) SaveStream(r io.Reader, name string) (int64, error) {
	filename := m.Path(name)
	tempFile := filename + tempSuffix

	out, err := os.Create(tempFile)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary file: %w", err)
	}

	written, err := io.Copy(out, r)
	closeErr := out.Close()

	if err != nil {
		os.Remove(tempFile)
		return written, fmt.Errorf("failed to save media data: %w", err)
	}
	if closeErr != nil {
		os.Remove(tempFile)
		return written, fmt.Errorf("failed to close file: %w", closeErr)
	}

	if err := os.Rename(tempFile, filename); err != nil {
		os.Remove(tempFile)
		return written, fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return written, nil
}

// GetOutputDir returns the output directory path
func (m *Manager) GetOutputDir() string {
	return m.outputDir
}
