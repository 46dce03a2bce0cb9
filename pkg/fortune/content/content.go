// Package content supplies the static tables the fortune selector draws
// from: the text listings shipped as an embedded JSON pack, the ASCII art
// blocks, and the decoration palette.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed pack.json
var packJSON string

//go:embed pack_schema.json
var packSchema string

// Pack holds the text listings shipped with the binary.
type Pack struct {
	Fun        []string `json:"fun"`        // year-round fortunes
	Facts      []string `json:"facts"`      // year-round tips and tidbits
	Valentines []string `json:"valentines"` // shown around Valentine's Day only
	Symbols    []string `json:"symbols"`    // decorating glyphs
}

// Load validates the embedded content pack against its schema and decodes it.
// A pack that fails validation is a defect in the shipped binary, so callers
// should treat an error here as fatal.
func Load() (*Pack, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(packSchema),
		gojsonschema.NewStringLoader(packJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate content pack: %w", err)
	}
	if !result.Valid() {
		var details strings.Builder
		for _, desc := range result.Errors() {
			fmt.Fprintf(&details, "\n  - %s", desc.String())
		}
		return nil, fmt.Errorf("content pack does not conform to schema:%s", details.String())
	}

	var pack Pack
	if err := json.Unmarshal([]byte(packJSON), &pack); err != nil {
		return nil, fmt.Errorf("failed to decode content pack: %w", err)
	}
	return &pack, nil
}
