package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is a Store backed by a flat YAML mapping on disk
type File struct {
	*Memory
	path string
}

// Open loads path into a new File store
// A missing file yields an empty store that is created on the first Flush
func Open(path string) (*File, error) {
	f := &File{
		Memory: NewMemory(),
		path:   path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	values := make(map[string]string)
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	f.replace(values)

	return f, nil
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

// Flush writes the store to disk when it has unsaved changes
// Write is atomic: temp file in the same directory, then rename
func (f *File) Flush() error {
	if !f.Dirty() {
		return nil
	}

	data, err := yaml.Marshal(f.Snapshot())
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write %s: %w", tmpPath, err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s: %w", f.path, err)
	}

	f.MarkClean()
	return nil
}
