package transform

import (
	"encoding/json"
	"fmt"
)

// questionAnswerPaths lists the metadata fields that are flattened into the
// question answers document. The key under which each value is stored is
// "properties/" followed by the path joined with "/".
var questionAnswerPaths = [][]string{
	{"summary", "title"},
	{"summary", "abstract"},
	{"summary", "contactPoint"},
	{"summary", "keywords"},
	{"summary", "alternateIdentifiers"},
	{"summary", "doiName"},
	{"documentation", "description"},
	{"documentation", "associatedMedia"},
	{"documentation", "isPartOf"},
	{"coverage", "spatial"},
	{"coverage", "typicalAgeRange"},
	{"coverage", "physicalSampleAvailability"},
	{"coverage", "followup"},
	{"coverage", "pathway"},
	{"provenance", "origin", "purpose"},
	{"provenance", "origin", "source"},
	{"provenance", "origin", "collectionSituation"},
	{"provenance", "temporal", "accrualPeriodicity"},
	{"provenance", "temporal", "distributionReleaseDate"},
	{"provenance", "temporal", "startDate"},
	{"provenance", "temporal", "endDate"},
	{"provenance", "temporal", "timeLag"},
	{"accessibility", "usage", "dataUseLimitation"},
	{"accessibility", "usage", "dataUseRequirements"},
	{"accessibility", "usage", "resourceCreator"},
	{"accessibility", "usage", "investigations"},
	{"accessibility", "usage", "isReferencedBy"},
	{"accessibility", "access", "accessRights"},
	{"accessibility", "access", "accessService"},
	{"accessibility", "access", "accessRequestCost"},
	{"accessibility", "access", "deliveryLeadTime"},
	{"accessibility", "access", "jurisdiction"},
	{"accessibility", "access", "dataProcessor"},
	{"accessibility", "access", "dataController"},
	{"accessibility", "formatAndStandards", "vocabularyEncodingScheme"},
	{"accessibility", "formatAndStandards", "conformsTo"},
	{"accessibility", "formatAndStandards", "language"},
	{"accessibility", "formatAndStandards", "format"},
	{"enrichmentAndLinkage", "qualifiedRelation"},
	{"enrichmentAndLinkage", "derivation"},
	{"enrichmentAndLinkage", "tools"},
}

var observationFields = []string{
	"observedNode",
	"measuredValue",
	"disambiguatingDescription",
	"observationDate",
	"measuredProperty",
}

// GenerateQuestionAnswers flattens a metadata document into the key value
// form the registry uses to prefill its onboarding questionnaire. A field is
// included whenever the key exists in the document, even when its value is
// empty. Observation fields are suffixed with the index of the observation
// they belong to.
func GenerateQuestionAnswers(raw []byte) (map[string]any, error) {
	var doc map[string]any

	err := json.Unmarshal(raw, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata document: %s", err.Error())
	}

	qa := map[string]any{}

	for _, path := range questionAnswerPaths {
		value, found := lookup(doc, path)
		if found {
			qa["properties/"+joinPath(path)] = value
		}
	}

	observations, _ := doc["observations"].([]any)
	for idx, o := range observations {
		obs, ok := o.(map[string]any)
		if !ok {
			continue
		}

		for _, field := range observationFields {
			value, found := obs[field]
			if found {
				qa[fmt.Sprintf("properties/observation/%s%d", field, idx)] = value
			}
		}
	}

	return qa, nil
}

func lookup(doc map[string]any, path []string) (any, bool) {
	value, found := doc[path[0]]
	if !found {
		return nil, false
	}

	if len(path) == 1 {
		return value, true
	}

	nested, ok := value.(map[string]any)
	if !ok {
		return nil, false
	}

	return lookup(nested, path[1:])
}

func joinPath(path []string) string {
	joined := path[0]
	for _, p := range path[1:] {
		joined = joined + "/" + p
	}
	return joined
}
