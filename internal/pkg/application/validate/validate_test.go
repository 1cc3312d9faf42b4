package validate

import (
	"context"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var anyInput = expects.AnyInput

func TestValidDocumentYieldsNoViolations(t *testing.T) {
	is, ms := testSetup(t, 200, schemaJson)
	ctx := context.Background()

	document := `{"identifier": "pid-a", "version": "1.0.0", "summary": {"title": "A study", "keywords": ["a"]}}`

	violations, err := Validate(ctx, ms.URL()+"/schema/2.0.0", []byte(document))
	is.NoErr(err)
	is.Equal(len(violations), 0)
}

func TestViolationsCarryMessageAndPath(t *testing.T) {
	is, ms := testSetup(t, 200, schemaJson)
	ctx := context.Background()

	document := `{"version": "1.0.0", "summary": {"title": "A study", "keywords": "not-an-array"}}`

	violations, err := Validate(ctx, ms.URL()+"/schema/2.0.0", []byte(document))
	is.NoErr(err)
	is.True(len(violations) >= 2)

	paths := [][]any{}
	for _, v := range violations {
		is.True(v.Error != "")
		paths = append(paths, v.Path)
	}

	is.True(containsPath(paths, []any{"summary", "keywords"}))
}

func TestUnreachableSchemaIsAnError(t *testing.T) {
	is, ms := testSetup(t, 404, `{}`)
	ctx := context.Background()

	_, err := Validate(ctx, ms.URL()+"/schema/2.0.0", []byte(`{}`))
	is.True(err != nil)
}

func TestSupportedSchemaMatchesAllowList(t *testing.T) {
	is := is.New(t)

	allowed := []string{"2.0.0", "2.0.2", "2.1.0"}

	is.True(SupportedSchema("https://schemas.example.org/datasetv2/2.0.0/schema.json", allowed))
	is.True(SupportedSchema("https://schemas.example.org/datasetv2/2.1.0/schema.json", allowed))
	is.True(!SupportedSchema("https://schemas.example.org/datasetv2/1.1.3/schema.json", allowed))
	is.True(!SupportedSchema("https://schemas.example.org/datasetv2/3.0.0/schema.json", allowed))
}

func TestFieldPathSplitsKeysAndIndices(t *testing.T) {
	is := is.New(t)

	is.Equal(fieldPath("summary.keywords.0"), []any{"summary", "keywords", 0})
	is.Equal(fieldPath("identifier"), []any{"identifier"})
	is.Equal(len(fieldPath("(root)")), 0)
}

func containsPath(paths [][]any, wanted []any) bool {
	for _, p := range paths {
		if len(p) != len(wanted) {
			continue
		}
		match := true
		for i := range p {
			if p[i] != wanted[i] {
				match = false
			}
		}
		if match {
			return true
		}
	}
	return false
}

func testSetup(t *testing.T, statusCode int, responseBody string) (*is.I, testutils.MockService) {
	is := is.New(t)

	ms := testutils.NewMockServiceThat(
		Expects(is, anyInput()),
		Returns(
			response.Code(statusCode),
			response.ContentType("application/json"),
			response.Body([]byte(responseBody)),
		),
	)

	return is, ms
}

const schemaJson string = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["identifier", "version", "summary"],
	"properties": {
		"identifier": {"type": "string"},
		"version": {"type": "string"},
		"summary": {
			"type": "object",
			"required": ["title"],
			"properties": {
				"title": {"type": "string"},
				"keywords": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`
