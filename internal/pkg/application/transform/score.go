package transform

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"gopkg.in/yaml.v2"
)

//go:embed weights.yaml
var defaultWeightsYAML []byte

type FieldWeight struct {
	Path   string  `yaml:"path"`
	Weight float64 `yaml:"weight"`
}

// DefaultWeights returns the embedded completeness weight table.
func DefaultWeights() ([]FieldWeight, error) {
	var weights []FieldWeight

	err := yaml.Unmarshal(defaultWeightsYAML, &weights)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded weight table: %s", err.Error())
	}

	return weights, nil
}

// ComputeQualityScore derives a weighted completeness score for a dataset.
// Each weight table entry contributes its weight when the addressed field
// holds a non empty value. The raw score w in [0,1] maps to a quality score
// of 50*(w+1) so that an empty document still scores 50 and a complete one
// scores 100.
func ComputeQualityScore(ds domain.Dataset, publisherName string, weights []FieldWeight) (domain.QualityScore, error) {
	var raw map[string]any
	if len(ds.Raw) > 0 {
		err := json.Unmarshal(ds.Raw, &raw)
		if err != nil {
			return domain.QualityScore{}, fmt.Errorf("failed to parse dataset document %s: %s", ds.Identifier, err.Error())
		}
	}

	w := 0.0

	for _, fw := range weights {
		if fieldIsPopulated(raw, strings.Split(fw.Path, "/")) {
			w += fw.Weight
		}
	}

	score := round2(50.0 * (w + 1.0))
	completeness := round2(100.0 * w)

	return domain.QualityScore{
		PID:                         ds.Identifier,
		Publisher:                   publisherName,
		Title:                       ds.Summary.Title,
		WeightedQualityScore:        score,
		WeightedCompletenessPercent: completeness,
		WeightedErrorPercent:        0.0,
		WeightedQualityRating:       ratingForScore(score),
	}, nil
}

func ratingForScore(score float64) string {
	switch {
	case score > 90.0:
		return domain.RatingPlatinum
	case score > 80.0 && score < 90.0:
		return domain.RatingGold
	case score > 70.0 && score < 80.0:
		return domain.RatingSilver
	case score > 60.0 && score < 70.0:
		return domain.RatingBronze
	default:
		return domain.RatingNotRated
	}
}

func round2(f float64) float64 {
	return math.Round(f*100.0) / 100.0
}

func fieldIsPopulated(doc map[string]any, path []string) bool {
	if doc == nil {
		return false
	}

	head := path[0]

	// observations and structuralMetadata address fields inside arrays;
	// a single populated element satisfies the path
	if (head == "observations" || head == "structuralMetadata") && len(path) > 1 {
		return arrayFieldIsPopulated(doc[head], path[1])
	}

	value, found := doc[head]
	if !found {
		return false
	}

	if len(path) == 1 {
		return valueIsPopulated(value)
	}

	nested, ok := value.(map[string]any)
	if !ok {
		return false
	}

	return fieldIsPopulated(nested, path[1:])
}

func arrayFieldIsPopulated(value any, field string) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		// structural metadata columns live one level down from the table
		if field == "columnName" || field == "columnDescription" || field == "dataType" || field == "sensitive" {
			if elementFieldIsPopulated(m["elements"], columnField(field)) {
				return true
			}
			continue
		}

		if valueIsPopulated(m[tableField(field)]) {
			return true
		}
	}

	return false
}

func elementFieldIsPopulated(value any, field string) bool {
	items, ok := value.([]any)
	if !ok {
		return false
	}

	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}

		if valueIsPopulated(m[field]) {
			return true
		}
	}

	return false
}

func columnField(field string) string {
	switch field {
	case "columnName":
		return "name"
	case "columnDescription":
		return "description"
	default:
		return field
	}
}

func tableField(field string) string {
	switch field {
	case "tableName":
		return "name"
	case "tableDescription":
		return "description"
	default:
		return field
	}
}

func valueIsPopulated(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case bool:
		return true
	default:
		return true
	}
}
