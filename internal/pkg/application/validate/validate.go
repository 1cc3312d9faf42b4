package validate

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/xeipuuv/gojsonschema"
)

// Validate checks a metadata document against the JSON schema it declares.
// It returns the full list of violations, or nil when the document is
// valid. A non nil error means the schema itself could not be retrieved or
// applied, which is fatal for the record being validated.
func Validate(ctx context.Context, schemaURL string, document []byte) ([]domain.ValidationError, error) {
	schemaLoader := gojsonschema.NewReferenceLoader(schemaURL)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("error retrieving the validation schema from %s: %s", schemaURL, err.Error())
	}

	if result.Valid() {
		return nil, nil
	}

	violations := []domain.ValidationError{}
	for _, e := range result.Errors() {
		violations = append(violations, domain.ValidationError{
			Error: e.Description(),
			Path:  fieldPath(e.Field()),
		})
	}

	return violations, nil
}

// SupportedSchema reports whether the schema URL references one of the
// allowed metadata schema versions.
func SupportedSchema(schemaURL string, allowed []string) bool {
	for _, version := range allowed {
		if strings.Contains(schemaURL, version) {
			return true
		}
	}

	return false
}

// fieldPath splits a dotted field reference into its keys, converting
// array indices to ints so that callers can tell keys and indices apart.
func fieldPath(field string) []any {
	if field == "" || field == "(root)" {
		return []any{}
	}

	parts := strings.Split(field, ".")

	path := make([]any, 0, len(parts))
	for _, p := range parts {
		if idx, err := strconv.Atoi(p); err == nil {
			path = append(path, idx)
		} else {
			path = append(path, p)
		}
	}

	return path
}
