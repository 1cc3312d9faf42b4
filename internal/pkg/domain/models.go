package domain

import "time"

// Sync status values for a dataset within one publisher's catalogue.
const (
	SyncStatusOK                 = "ok"
	SyncStatusFetchFailed        = "fetch_failed"
	SyncStatusUnsupportedVersion = "unsupported_version"
	SyncStatusValidationFailed   = "validation_failed"
)

// Active flags on a registry dataset document.
const (
	ActiveFlagInReview = "inReview"
	ActiveFlagActive   = "active"
	ActiveFlagArchive  = "archive"
)

// Publisher holds a publisher's federation configuration as stored in the
// registry.
type Publisher struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	MemberOf          string `json:"memberOf,omitempty"`
	FederationActive  bool   `json:"federationActive"`
	AuthType          string `json:"authType"` // "oauth", "api_key" or empty
	SecretName        string `json:"secretName,omitempty"`
	BaseURL           string `json:"baseURL"`
	DatasetsPath      string `json:"datasetsPath"`
	NotificationEmail string `json:"notificationEmail"`
}

// SyncStatus is the registry's bookkeeping record for one dataset within
// one publisher's catalogue. Entries are replaced wholesale each pass a
// dataset is touched, never patched.
type SyncStatus struct {
	PID           string    `json:"pid"`
	PublisherName string    `json:"publisherName"`
	Name          string    `json:"name"`
	Version       string    `json:"version"`
	Status        string    `json:"status"`
	LastSync      time.Time `json:"lastSync"`
}

// RegistryDataset is the canonical, versioned registry document for a
// dataset. A new version is never mutated in place: a fresh document is
// inserted and the prior one flagged archive.
type RegistryDataset struct {
	DatasetID      string `json:"datasetid"`
	PID            string `json:"pid"`
	Name           string `json:"name"`
	DatasetVersion string `json:"datasetVersion"`
	Type           string `json:"type"`
	Source         string `json:"source"`
	ActiveFlag     string `json:"activeflag"`
	Is5Safes       bool   `json:"is5Safes"`

	Dataset            Dataset       `json:"datasetv2"`
	DatasetFields      DatasetFields `json:"datasetfields"`
	QuestionAnswers    string        `json:"questionAnswers"`
	StructuralMetadata []DataClass   `json:"structuralMetadata"`

	Tags       Tags       `json:"tags"`
	Timestamps Timestamps `json:"timestamps"`
}

type Tags struct {
	Features StringList `json:"features"`
}

type Timestamps struct {
	Created   time.Time  `json:"created"`
	Updated   time.Time  `json:"updated"`
	Submitted time.Time  `json:"submitted"`
	Published *time.Time `json:"published,omitempty"`
}

// DatasetFields is the flattened convenience view of a dataset used for
// search and display.
type DatasetFields struct {
	Publisher                  string        `json:"publisher"`
	GeographicCoverage         StringList    `json:"geographicCoverage"`
	PhysicalSampleAvailability StringList    `json:"physicalSampleAvailability"`
	Abstract                   string        `json:"abstract"`
	ReleaseDate                string        `json:"releaseDate"`
	AccessRequestDuration      string        `json:"accessRequestDuration"`
	DatasetStartDate           string        `json:"datasetStartDate"`
	DatasetEndDate             string        `json:"datasetEndDate"`
	AgeBand                    string        `json:"ageBand"`
	ContactPoint               string        `json:"contactPoint"`
	Periodicity                string        `json:"periodicity"`
	MetadataQuality            QualityScore  `json:"metadataquality"`
	TechnicalDetails           []TableColumn `json:"technicaldetails"`
	Phenotypes                 []string      `json:"phenotypes"`
}

// QualityScore is the weighted metadata completeness score embedded in
// datasetfields. Invalid datasets never reach scoring, so the error
// percentage is always zero.
type QualityScore struct {
	PID                         string  `json:"pid"`
	Publisher                   string  `json:"publisher"`
	Title                       string  `json:"title"`
	WeightedQualityScore        float64 `json:"weighted_quality_score"`
	WeightedCompletenessPercent float64 `json:"weighted_completeness_percent"`
	WeightedErrorPercent        float64 `json:"weighted_error_percent"`
	WeightedQualityRating       string  `json:"weighted_quality_rating"`
}

// Quality rating bands.
const (
	RatingNotRated = "Not Rated"
	RatingBronze   = "Bronze"
	RatingSilver   = "Silver"
	RatingGold     = "Gold"
	RatingPlatinum = "Platinum"
)

// TableColumn is one row of the flat table/column listing derived from a
// dataset's structural metadata.
type TableColumn struct {
	TableName         string `json:"tableName"`
	TableDescription  string `json:"tableDescription"`
	ColumnName        string `json:"columnName"`
	ColumnDescription string `json:"columnDescription"`
	DataType          string `json:"dataType"`
	Sensitive         bool   `json:"sensitive"`
}

// DataClass is the nested display form of a structural metadata table.
type DataClass struct {
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	DomainType   string        `json:"domainType"`
	DataElements []DataElement `json:"dataElements"`
}

type DataElement struct {
	Label       string        `json:"label"`
	Description string        `json:"description"`
	DomainType  string        `json:"domainType"`
	DataType    PrimitiveType `json:"dataType"`
	Sensitive   bool          `json:"sensitive"`
}

type PrimitiveType struct {
	Label      string `json:"label"`
	DomainType string `json:"domainType"`
}

// ValidationError is one schema violation, annotated with the path to the
// offending node (a mix of object keys and array indices).
type ValidationError struct {
	Error string `json:"error"`
	Path  []any  `json:"path"`
}
