package transform

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
)

func TestTransformProducesRegistryDocument(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)

	doc, err := Transform(ds, publisher, nil, weights)
	is.NoErr(err)

	is.Equal(doc.PID, "pid-0001")
	is.Equal(doc.Name, "National cohort")
	is.Equal(doc.DatasetVersion, "2.0.0")
	is.Equal(doc.Type, "dataset")
	is.Equal(doc.Source, "federation")
	is.Equal(doc.ActiveFlag, domain.ActiveFlagInReview)
	is.True(doc.Is5Safes)
	is.True(doc.DatasetID != "")
	is.Equal(doc.Timestamps.Published, nil)
	is.Equal([]string(doc.Tags.Features), []string{"cohort", "national"})
}

func TestTransformDerivesDatasetFields(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)

	doc, err := Transform(ds, publisher, nil, weights)
	is.NoErr(err)

	fields := doc.DatasetFields
	is.Equal(fields.Publisher, "Health Alliance > Testshire NHS Trust")
	is.Equal(fields.Abstract, "A cohort of everyone.")
	is.Equal([]string(fields.GeographicCoverage), []string{"Testshire"})
	is.Equal(fields.AgeBand, "0-120")
	is.Equal(fields.ContactPoint, "data@example.org")
	is.Equal(fields.Periodicity, "MONTHLY")
	is.Equal(fields.DatasetStartDate, "2001-01-01")
	is.Equal(len(fields.Phenotypes), 0)
	is.Equal(fields.MetadataQuality.PID, "pid-0001")
	is.Equal(fields.MetadataQuality.WeightedErrorPercent, 0.0)
}

func TestTransformFailsOnMissingRequiredFields(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)
	ds.Summary.Title = ""

	_, err := Transform(ds, publisher, nil, weights)
	is.True(err != nil)

	_, ok := err.(*CriticalError)
	is.True(ok)
}

func TestTransformKeepsActiveFlagFromPreviousVersion(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)
	prev := &domain.RegistryDataset{PID: "pid-0001", ActiveFlag: domain.ActiveFlagActive}

	doc, err := Transform(ds, publisher, prev, weights)
	is.NoErr(err)

	is.Equal(doc.ActiveFlag, domain.ActiveFlagActive)
	is.True(doc.Timestamps.Published != nil)
}

func TestTransformDoesNotPromoteUnreviewedPreviousVersion(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)
	prev := &domain.RegistryDataset{PID: "pid-0001", ActiveFlag: domain.ActiveFlagInReview}

	doc, err := Transform(ds, publisher, prev, weights)
	is.NoErr(err)

	is.Equal(doc.ActiveFlag, domain.ActiveFlagInReview)
	is.Equal(doc.Timestamps.Published, nil)
}

func TestTransformComputesScoreFresh(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)
	prev := &domain.RegistryDataset{
		PID:        "pid-0001",
		ActiveFlag: domain.ActiveFlagActive,
		DatasetFields: domain.DatasetFields{
			MetadataQuality: domain.QualityScore{WeightedQualityScore: 99.99},
		},
	}

	doc, err := Transform(ds, publisher, prev, weights)
	is.NoErr(err)

	is.True(doc.DatasetFields.MetadataQuality.WeightedQualityScore != 99.99)
}

func TestTransformFlattensStructuralMetadata(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)

	doc, err := Transform(ds, publisher, nil, weights)
	is.NoErr(err)

	details := doc.DatasetFields.TechnicalDetails
	is.Equal(len(details), 2)
	is.Equal(details[0].TableName, "admissions")
	is.Equal(details[0].ColumnName, "patient_id")
	is.True(details[0].Sensitive)
	is.Equal(details[1].ColumnName, "admission_date")

	is.Equal(len(doc.StructuralMetadata), 1)
	class := doc.StructuralMetadata[0]
	is.Equal(class.DomainType, "DataClass")
	is.Equal(len(class.DataElements), 2)
	is.Equal(class.DataElements[0].DomainType, "DataElement")
	is.Equal(class.DataElements[0].DataType.DomainType, "PrimitiveType")
	is.Equal(class.DataElements[0].DataType.Label, "string")
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	is := is.New(t)

	weights, err := DefaultWeights()
	is.NoErr(err)
	is.Equal(len(weights), 55)

	sum := 0.0
	for _, w := range weights {
		sum += w.Weight
	}

	is.Equal(round2(sum), 1.0)
}

func TestScoreOfEmptyDocumentIsFifty(t *testing.T) {
	is := is.New(t)

	weights, err := DefaultWeights()
	is.NoErr(err)

	ds := domain.Dataset{Raw: json.RawMessage(`{}`)}
	score, err := ComputeQualityScore(ds, "Testshire NHS Trust", weights)
	is.NoErr(err)

	is.Equal(score.WeightedQualityScore, 50.0)
	is.Equal(score.WeightedCompletenessPercent, 0.0)
	is.Equal(score.WeightedQualityRating, domain.RatingNotRated)
}

func TestScoreOfCompleteDocumentIsOneHundred(t *testing.T) {
	is := is.New(t)

	weights, err := DefaultWeights()
	is.NoErr(err)

	ds := domain.Dataset{Identifier: "pid-0001", Raw: json.RawMessage(completeDatasetJson)}
	score, err := ComputeQualityScore(ds, "Testshire NHS Trust", weights)
	is.NoErr(err)

	is.Equal(score.WeightedQualityScore, 100.0)
	is.Equal(score.WeightedCompletenessPercent, 100.0)
	is.Equal(score.WeightedQualityRating, domain.RatingPlatinum)
}

func TestScoreToleratesBareArrayPaths(t *testing.T) {
	is := is.New(t)

	weights := []FieldWeight{
		{Path: "observations", Weight: 0.5},
		{Path: "structuralMetadata", Weight: 0.5},
	}

	ds := domain.Dataset{Raw: json.RawMessage(`{"observations": [{"observedNode": "persons"}]}`)}
	score, err := ComputeQualityScore(ds, "Testshire NHS Trust", weights)
	is.NoErr(err)

	is.Equal(score.WeightedCompletenessPercent, 50.0)
}

func TestScoreRejectsMalformedDocument(t *testing.T) {
	is := is.New(t)

	weights, err := DefaultWeights()
	is.NoErr(err)

	ds := domain.Dataset{Identifier: "pid-0001", Raw: json.RawMessage(`{not json`)}
	_, err = ComputeQualityScore(ds, "Testshire NHS Trust", weights)
	is.True(err != nil)
}

func TestTransformIsRepeatable(t *testing.T) {
	is, ds, publisher, weights := testSetup(t)

	first, err := Transform(ds, publisher, nil, weights)
	is.NoErr(err)

	second, err := Transform(ds, publisher, nil, weights)
	is.NoErr(err)

	// the generated id and the timestamps are the only fields allowed
	// to differ between two runs over the same input
	for _, doc := range []*domain.RegistryDataset{&first, &second} {
		doc.DatasetID = ""
		doc.Timestamps = domain.Timestamps{}
	}

	a, err := json.Marshal(first)
	is.NoErr(err)
	b, err := json.Marshal(second)
	is.NoErr(err)

	is.Equal(string(a), string(b))
}

func TestRatingBandsLeaveBoundariesUnrated(t *testing.T) {
	is := is.New(t)

	is.Equal(ratingForScore(95.0), domain.RatingPlatinum)
	is.Equal(ratingForScore(85.0), domain.RatingGold)
	is.Equal(ratingForScore(75.0), domain.RatingSilver)
	is.Equal(ratingForScore(65.0), domain.RatingBronze)
	is.Equal(ratingForScore(90.0), domain.RatingNotRated)
	is.Equal(ratingForScore(80.0), domain.RatingNotRated)
	is.Equal(ratingForScore(70.0), domain.RatingNotRated)
	is.Equal(ratingForScore(60.0), domain.RatingNotRated)
	is.Equal(ratingForScore(52.3), domain.RatingNotRated)
}

func TestQuestionAnswersIncludePresentButEmptyValues(t *testing.T) {
	is := is.New(t)

	qa, err := GenerateQuestionAnswers([]byte(`{"summary": {"title": "A study", "abstract": ""}}`))
	is.NoErr(err)

	is.Equal(qa["properties/summary/title"], "A study")

	abstract, found := qa["properties/summary/abstract"]
	is.True(found)
	is.Equal(abstract, "")

	_, found = qa["properties/summary/keywords"]
	is.True(!found)
}

func TestQuestionAnswersSuffixObservations(t *testing.T) {
	is := is.New(t)

	raw := `{
		"observations": [
			{"observedNode": "persons", "measuredValue": 1200},
			{"observedNode": "events"}
		]
	}`

	qa, err := GenerateQuestionAnswers([]byte(raw))
	is.NoErr(err)

	is.Equal(qa["properties/observation/observedNode0"], "persons")
	is.Equal(qa["properties/observation/measuredValue0"], 1200.0)
	is.Equal(qa["properties/observation/observedNode1"], "events")

	_, found := qa["properties/observation/measuredValue1"]
	is.True(!found)
}

func testSetup(t *testing.T) (*is.I, *domain.Dataset, domain.Publisher, []FieldWeight) {
	is := is.New(t)

	weights, err := DefaultWeights()
	is.NoErr(err)

	raw := `{
		"identifier": "pid-0001",
		"version": "2.0.0",
		"summary": {
			"title": "National cohort",
			"abstract": "A cohort of everyone.",
			"publisher": {"name": "Testshire NHS Trust", "memberOf": "Health Alliance"},
			"contactPoint": "data@example.org",
			"keywords": "cohort, national"
		},
		"coverage": {
			"spatial": ["Testshire"],
			"typicalAgeRange": "0-120"
		},
		"provenance": {
			"temporal": {
				"accrualPeriodicity": "MONTHLY",
				"startDate": "2001-01-01"
			}
		},
		"structuralMetadata": [
			{
				"name": "admissions",
				"description": "Hospital admissions",
				"elements": [
					{"name": "patient_id", "description": "Pseudonymised id", "dataType": "string", "sensitive": true},
					{"name": "admission_date", "description": "Date of admission", "dataType": "date", "sensitive": false}
				]
			}
		]
	}`

	ds := &domain.Dataset{}
	err = json.Unmarshal([]byte(raw), ds)
	is.NoErr(err)
	ds.Raw = json.RawMessage(raw)

	publisher := domain.Publisher{
		ID:   "pub-1",
		Name: "Testshire NHS Trust",
	}

	return is, ds, publisher, weights
}

// a document with every weighted field populated
const completeDatasetJson = `{
	"identifier": "pid-0001",
	"version": "2.0.0",
	"summary": {
		"title": "National cohort",
		"abstract": "A cohort of everyone.",
		"publisher": {"name": "Testshire NHS Trust"},
		"contactPoint": "data@example.org",
		"keywords": ["cohort"],
		"alternateIdentifiers": ["alt-0001"],
		"doiName": "10.1000/xyz"
	},
	"documentation": {
		"description": "Longitudinal records.",
		"associatedMedia": ["https://example.org/media"],
		"isPartOf": ["NOT APPLICABLE"]
	},
	"coverage": {
		"spatial": ["Testshire"],
		"typicalAgeRange": "0-120",
		"physicalSampleAvailability": ["NOT AVAILABLE"],
		"followup": "CONTINUOUS",
		"pathway": "Secondary care"
	},
	"provenance": {
		"origin": {
			"purpose": ["CARE"],
			"source": ["EPR"],
			"collectionSituation": ["IN-PATIENTS"]
		},
		"temporal": {
			"accrualPeriodicity": "MONTHLY",
			"distributionReleaseDate": "2020-06-01",
			"startDate": "2001-01-01",
			"endDate": "2020-01-01",
			"timeLag": "1-2 MONTHS"
		}
	},
	"accessibility": {
		"usage": {
			"dataUseLimitation": ["RESEARCH USE ONLY"],
			"dataUseRequirements": ["PROJECT SPECIFIC RESTRICTIONS"],
			"resourceCreator": ["Testshire NHS Trust"],
			"investigations": ["https://example.org/study"],
			"isReferencedBy": ["10.1000/ref"]
		},
		"access": {
			"accessRights": ["https://example.org/access"],
			"accessService": "Trusted research environment",
			"accessRequestCost": "Free",
			"deliveryLeadTime": "1-2 MONTHS",
			"jurisdiction": ["GB-ENG"],
			"dataProcessor": "Testshire NHS Trust",
			"dataController": "Testshire NHS Trust"
		},
		"formatAndStandards": {
			"vocabularyEncodingScheme": ["SNOMED CT"],
			"conformsTo": ["HL7 FHIR"],
			"language": ["en"],
			"format": ["CSV"]
		}
	},
	"enrichmentAndLinkage": {
		"qualifiedRelation": ["pid-0002"],
		"derivation": ["pid-0003"],
		"tools": ["https://example.org/tools"]
	},
	"observations": [
		{
			"observedNode": "persons",
			"measuredValue": 1200,
			"disambiguatingDescription": "Unique patients",
			"observationDate": "2020-01-01",
			"measuredProperty": "count"
		}
	],
	"structuralMetadata": [
		{
			"name": "admissions",
			"description": "Hospital admissions",
			"elements": [
				{"name": "patient_id", "description": "Pseudonymised id", "dataType": "string", "sensitive": true}
			]
		}
	]
}`
