package schema

import (
	"encoding/json"
	"fmt"

	"github.com/flavono123/schemabuilder/internal/field"
)

// Submit encodes the generated structure as order preserving JSON indented
// by two spaces.
func Submit(fields []*field.Field) ([]byte, error) {
	data, err := json.MarshalIndent(Generate(fields), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode schema: %w", err)
	}
	return data, nil
}
