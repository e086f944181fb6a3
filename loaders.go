package datetime

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// BundleLoader produces locale calendar data.
type BundleLoader interface {
	Load() (*Bundle, error)
}

// BundleLoaderFunc adapts a function to BundleLoader.
type BundleLoaderFunc func() (*Bundle, error)

func (f BundleLoaderFunc) Load() (*Bundle, error) {
	return f()
}

// FileLoader reads JSON or YAML bundle files; later files override earlier ones.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (*Bundle, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("datetime: no loader paths configured")
	}

	bundle := &Bundle{}
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("datetime: read %s: %w", path, err)
		}

		src, err := DecodeBundle(path, data)
		if err != nil {
			return nil, fmt.Errorf("datetime: decode %s: %w", path, err)
		}
		bundle.Merge(src)
	}
	return bundle, nil
}

// DecodeBundle decodes data by the extension of path (.json, .yaml or .yml).
func DecodeBundle(path string, data []byte) (*Bundle, error) {
	var bundle Bundle

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&bundle); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&bundle); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if len(bundle.Locales) == 0 && len(bundle.WeekData) == 0 {
		return nil, fmt.Errorf("%w: bundle %s is empty", ErrMissingData, path)
	}
	return &bundle, nil
}

// EncodeBundle writes bundle as JSON or YAML by the extension of path.
func EncodeBundle(path string, bundle *Bundle) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		data, err := json.MarshalIndent(bundle, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(bundle); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}
