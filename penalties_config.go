package datetime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPenaltyTable reads a JSON or YAML penalty table. Keys absent from the
// file keep their DefaultPenaltyTable values.
func LoadPenaltyTable(path string) (PenaltyTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PenaltyTable{}, fmt.Errorf("datetime: read %s: %w", path, err)
	}
	return DecodePenaltyTable(path, data)
}

// DecodePenaltyTable decodes data by the extension of path.
func DecodePenaltyTable(path string, data []byte) (PenaltyTable, error) {
	table := DefaultPenaltyTable()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&table); err != nil {
			return PenaltyTable{}, fmt.Errorf("datetime: decode %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&table); err != nil {
			return PenaltyTable{}, fmt.Errorf("datetime: decode %s: %w", path, err)
		}
	default:
		return PenaltyTable{}, fmt.Errorf("datetime: unsupported extension %s", ext)
	}

	if err := table.Validate(); err != nil {
		return PenaltyTable{}, fmt.Errorf("datetime: %s: %w", path, err)
	}
	return table, nil
}
