package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ParseError reports a state or input file that exists but is not valid JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadJSON decodes the whole file at path into a T.
// A missing file returns def unchanged.
func LoadJSON[T any](path string, def T) (T, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("read %s: %w", path, err)
	}

	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return def, &ParseError{Path: path, Err: err}
	}
	return out, nil
}

// SaveJSON overwrites path with the indented JSON encoding of v.
// The write is not atomic.
func SaveJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
