// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
//
// Decoding is ordered: mappings come back as Mapping values that preserve
// document order, which callers rely on because author order is rendering
// order.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")

// Mapping is a YAML mapping with insertion order preserved.
type Mapping = yaml.MapSlice

// MapItem is one key/value entry of a Mapping.
type MapItem = yaml.MapItem

// UnmarshalOrdered decodes data into generic values with every mapping
// represented as a Mapping. Empty or whitespace-only input decodes to nil
// without error.
func UnmarshalOrdered(data []byte) (any, error) {
	if len(data) > MaxInputSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return v, nil
}
