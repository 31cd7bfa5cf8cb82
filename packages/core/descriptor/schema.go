package descriptor

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var requestSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(requestSchema)

// Schema returns the JSON Schema every request file is validated against.
func Schema() []byte {
	out := make([]byte, len(requestSchema))
	copy(out, requestSchema)
	return out
}

// validateSchema checks data against the request schema and reports the
// first violation, ordered by field name so the message is stable.
func validateSchema(data []byte, path string) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ParseError{Path: path, Reason: fmt.Sprintf("schema validation failed: %v", err), Err: err}
	}
	if result.Valid() {
		return nil
	}

	violations := result.Errors()
	sort.SliceStable(violations, func(i, j int) bool {
		return schemaField(violations[i]) < schemaField(violations[j])
	})
	v := violations[0]
	return &ParseError{
		Path:   path,
		Field:  schemaField(v),
		Reason: v.Description(),
	}
}

// schemaField maps a schema violation to the request field it concerns.
// Required-property errors are reported on the root, so the missing property
// name is pulled from the details instead.
func schemaField(v gojsonschema.ResultError) string {
	if v.Type() == "required" {
		if prop, ok := v.Details()["property"].(string); ok {
			return prop
		}
	}
	field := v.Field()
	if field == "(root)" {
		return ""
	}
	return strings.TrimPrefix(field, "(root).")
}
