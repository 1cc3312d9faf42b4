package domain

import (
	"encoding/json"
	"strings"
)

// DatasetSummary is a single entry in the custodian's dataset listing.
type DatasetSummary struct {
	Schema     string `json:"@schema,omitempty"`
	Identifier string `json:"identifier"`
	Name       string `json:"name,omitempty"`
	Version    string `json:"version"`
	Issued     string `json:"issued,omitempty"`
	Modified   string `json:"modified,omitempty"`
	Source     string `json:"source,omitempty"`
}

// Dataset is a full datasetv2 metadata document as served by a custodian.
// Any field may be absent in the source document; absence is "empty", not
// an error.
type Dataset struct {
	Identifier         string               `json:"identifier"`
	Version            string               `json:"version"`
	Issued             string               `json:"issued,omitempty"`
	Modified           string               `json:"modified,omitempty"`
	Summary            Summary              `json:"summary"`
	Documentation      Documentation        `json:"documentation"`
	Coverage           Coverage             `json:"coverage"`
	Provenance         Provenance           `json:"provenance"`
	Accessibility      Accessibility        `json:"accessibility"`
	Enrichment         EnrichmentAndLinkage `json:"enrichmentAndLinkage"`
	Observations       []Observation        `json:"observations"`
	StructuralMetadata []Table              `json:"structuralMetadata"`

	// Raw retains the document exactly as received, for schema validation
	// and question/answer flattening (which must see which keys were
	// actually present).
	Raw json.RawMessage `json:"-"`
}

type Summary struct {
	Title                string       `json:"title"`
	Abstract             string       `json:"abstract"`
	Publisher            PublisherRef `json:"publisher"`
	ContactPoint         string       `json:"contactPoint"`
	Keywords             StringList   `json:"keywords"`
	AlternateIdentifiers StringList   `json:"alternateIdentifiers"`
	DoiName              string       `json:"doiName"`
}

type PublisherRef struct {
	Identifier string `json:"identifier,omitempty"`
	Name       string `json:"name"`
	MemberOf   string `json:"memberOf,omitempty"`
}

type Documentation struct {
	Description     string     `json:"description"`
	AssociatedMedia StringList `json:"associatedMedia"`
	IsPartOf        StringList `json:"isPartOf"`
}

type Coverage struct {
	Spatial                    StringList `json:"spatial"`
	TypicalAgeRange            string     `json:"typicalAgeRange"`
	PhysicalSampleAvailability StringList `json:"physicalSampleAvailability"`
	Followup                   string     `json:"followup"`
	Pathway                    string     `json:"pathway"`
}

type Provenance struct {
	Origin   Origin   `json:"origin"`
	Temporal Temporal `json:"temporal"`
}

type Origin struct {
	Purpose             StringList `json:"purpose"`
	Source              StringList `json:"source"`
	CollectionSituation StringList `json:"collectionSituation"`
}

type Temporal struct {
	AccrualPeriodicity      string `json:"accrualPeriodicity"`
	DistributionReleaseDate string `json:"distributionReleaseDate"`
	StartDate               string `json:"startDate"`
	EndDate                 string `json:"endDate"`
	TimeLag                 string `json:"timeLag"`
}

type Accessibility struct {
	Usage              Usage              `json:"usage"`
	Access             Access             `json:"access"`
	FormatAndStandards FormatAndStandards `json:"formatAndStandards"`
}

type Usage struct {
	DataUseLimitation   StringList `json:"dataUseLimitation"`
	DataUseRequirements StringList `json:"dataUseRequirements"`
	ResourceCreator     StringList `json:"resourceCreator"`
	Investigations      StringList `json:"investigations"`
	IsReferencedBy      StringList `json:"isReferencedBy"`
}

type Access struct {
	AccessRights      StringList `json:"accessRights"`
	AccessService     string     `json:"accessService"`
	AccessRequestCost string     `json:"accessRequestCost"`
	DeliveryLeadTime  string     `json:"deliveryLeadTime"`
	Jurisdiction      StringList `json:"jurisdiction"`
	DataProcessor     string     `json:"dataProcessor"`
	DataController    string     `json:"dataController"`
}

type FormatAndStandards struct {
	VocabularyEncodingScheme StringList `json:"vocabularyEncodingScheme"`
	ConformsTo               StringList `json:"conformsTo"`
	Language                 StringList `json:"language"`
	Format                   StringList `json:"format"`
}

type EnrichmentAndLinkage struct {
	QualifiedRelation StringList `json:"qualifiedRelation"`
	Derivation        StringList `json:"derivation"`
	Tools             StringList `json:"tools"`
}

type Observation struct {
	ObservedNode              string      `json:"observedNode"`
	MeasuredValue             json.Number `json:"measuredValue,omitempty"`
	DisambiguatingDescription string      `json:"disambiguatingDescription"`
	ObservationDate           string      `json:"observationDate"`
	MeasuredProperty          string      `json:"measuredProperty"`
}

// Table is one structuralMetadata entry: a named table and its columns.
type Table struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Columns     []Column `json:"elements"`
}

type Column struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	DataType    string `json:"dataType"`
	Sensitive   bool   `json:"sensitive"`
}

// StringList is a list-valued metadata field. Custodians deliver these
// either as JSON arrays or as a single comma separated string; the latter
// is split on decode so that downstream consumers only ever see a list.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if strings.TrimSpace(s) == "" {
		*l = StringList{}
		return nil
	}

	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	*l = parts
	return nil
}
