package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLFile is a YAML document on disk that is read into a caller supplied
// value. Unknown fields are rejected so typos in settings surface early.
type YAMLFile struct {
	path string
}

func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{path: path}
}

func (y *YAMLFile) Path() string {
	return y.path
}

func (y *YAMLFile) Exists() bool {
	info, err := os.Stat(y.path)
	return err == nil && !info.IsDir()
}

func (y *YAMLFile) Load(dest any) error {
	data, err := os.ReadFile(y.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s", y.path)
		}
		return fmt.Errorf("read file: %w", err)
	}
	return y.decode(data, dest)
}

// LoadIfExists is Load that treats a missing file as empty. It reports
// whether the file was found.
func (y *YAMLFile) LoadIfExists(dest any) (bool, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read file: %w", err)
	}
	return true, y.decode(data, dest)
}

func (y *YAMLFile) decode(data []byte, dest any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse yaml %s: %w", y.path, err)
	}
	return nil
}
