package transform

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
)

// CriticalError marks a record that cannot be transformed at all, as
// opposed to one that merely failed validation. The caller is expected to
// isolate it to the record it belongs to.
type CriticalError struct {
	msg string
}

func (e *CriticalError) Error() string {
	return e.msg
}

func NewCriticalError(format string, args ...any) *CriticalError {
	return &CriticalError{msg: fmt.Sprintf(format, args...)}
}

// Transform turns a custodian metadata document into a registry document
// ready for insertion. prev is the latest registry document for the same
// persistent identifier, or nil for a dataset the registry has never seen.
func Transform(ds *domain.Dataset, publisher domain.Publisher, prev *domain.RegistryDataset, weights []FieldWeight) (domain.RegistryDataset, error) {
	if ds == nil {
		return domain.RegistryDataset{}, NewCriticalError("no dataset to transform")
	}

	if ds.Identifier == "" {
		return domain.RegistryDataset{}, NewCriticalError("dataset has no identifier")
	}

	if ds.Version == "" {
		return domain.RegistryDataset{}, NewCriticalError("dataset %s has no version", ds.Identifier)
	}

	if ds.Summary.Title == "" {
		return domain.RegistryDataset{}, NewCriticalError("dataset %s has no title", ds.Identifier)
	}

	applyDefaults(ds)

	if len(ds.Raw) == 0 {
		raw, err := json.Marshal(ds)
		if err != nil {
			return domain.RegistryDataset{}, NewCriticalError("dataset %s: %s", ds.Identifier, err.Error())
		}
		ds.Raw = raw
	}

	qa, err := GenerateQuestionAnswers(ds.Raw)
	if err != nil {
		return domain.RegistryDataset{}, NewCriticalError("dataset %s: %s", ds.Identifier, err.Error())
	}

	qaJSON, err := json.Marshal(qa)
	if err != nil {
		return domain.RegistryDataset{}, NewCriticalError("dataset %s: failed to serialize question answers: %s", ds.Identifier, err.Error())
	}

	displayName := publisherDisplayName(ds, publisher)
	score, err := ComputeQualityScore(*ds, displayName, weights)
	if err != nil {
		return domain.RegistryDataset{}, NewCriticalError("dataset %s: %s", ds.Identifier, err.Error())
	}
	technicalDetails, dataClasses := transformStructuralMetadata(ds.StructuralMetadata)

	now := time.Now().UTC()

	doc := domain.RegistryDataset{
		DatasetID:      uuid.NewString(),
		PID:            ds.Identifier,
		Name:           ds.Summary.Title,
		DatasetVersion: ds.Version,
		Type:           "dataset",
		Source:         "federation",
		ActiveFlag:     domain.ActiveFlagInReview,
		Is5Safes:       true,
		Dataset:        *ds,
		DatasetFields: domain.DatasetFields{
			Publisher:                  displayName,
			GeographicCoverage:         ds.Coverage.Spatial,
			PhysicalSampleAvailability: ds.Coverage.PhysicalSampleAvailability,
			Abstract:                   ds.Summary.Abstract,
			ReleaseDate:                ds.Provenance.Temporal.DistributionReleaseDate,
			AccessRequestDuration:      ds.Accessibility.Access.DeliveryLeadTime,
			DatasetStartDate:           ds.Provenance.Temporal.StartDate,
			DatasetEndDate:             ds.Provenance.Temporal.EndDate,
			AgeBand:                    ds.Coverage.TypicalAgeRange,
			ContactPoint:               ds.Summary.ContactPoint,
			Periodicity:                ds.Provenance.Temporal.AccrualPeriodicity,
			MetadataQuality:            score,
			TechnicalDetails:           technicalDetails,
			Phenotypes:                 []string{},
		},
		QuestionAnswers:    string(qaJSON),
		StructuralMetadata: dataClasses,
		Tags:               domain.Tags{Features: ds.Summary.Keywords},
		Timestamps: domain.Timestamps{
			Created:   now,
			Updated:   now,
			Submitted: now,
		},
	}

	// a dataset that has passed review stays visible when a new version
	// arrives; anything else waits for review again
	if prev != nil && prev.ActiveFlag == domain.ActiveFlagActive {
		doc.ActiveFlag = domain.ActiveFlagActive
		doc.Timestamps.Published = &now
	}

	return doc, nil
}

func publisherDisplayName(ds *domain.Dataset, publisher domain.Publisher) string {
	name := ds.Summary.Publisher.Name
	memberOf := ds.Summary.Publisher.MemberOf

	if name == "" {
		name = publisher.Name
	}
	if memberOf == "" {
		memberOf = publisher.MemberOf
	}

	if memberOf != "" {
		return memberOf + " > " + name
	}

	return name
}

func transformStructuralMetadata(tables []domain.Table) ([]domain.TableColumn, []domain.DataClass) {
	rows := []domain.TableColumn{}
	classes := []domain.DataClass{}

	for _, table := range tables {
		class := domain.DataClass{
			Name:         table.Name,
			Description:  table.Description,
			DomainType:   "DataClass",
			DataElements: []domain.DataElement{},
		}

		for _, col := range table.Columns {
			rows = append(rows, domain.TableColumn{
				TableName:         table.Name,
				TableDescription:  table.Description,
				ColumnName:        col.Name,
				ColumnDescription: col.Description,
				DataType:          col.DataType,
				Sensitive:         col.Sensitive,
			})

			class.DataElements = append(class.DataElements, domain.DataElement{
				Label:       col.Name,
				Description: col.Description,
				DomainType:  "DataElement",
				DataType: domain.PrimitiveType{
					Label:      col.DataType,
					DomainType: "PrimitiveType",
				},
				Sensitive: col.Sensitive,
			})
		}

		classes = append(classes, class)
	}

	return rows, classes
}

// applyDefaults replaces nil list fields with empty ones so that the
// stored document always serializes lists as [], never null.
func applyDefaults(ds *domain.Dataset) {
	lists := []*domain.StringList{
		&ds.Summary.Keywords,
		&ds.Summary.AlternateIdentifiers,
		&ds.Documentation.AssociatedMedia,
		&ds.Documentation.IsPartOf,
		&ds.Coverage.Spatial,
		&ds.Coverage.PhysicalSampleAvailability,
		&ds.Provenance.Origin.Purpose,
		&ds.Provenance.Origin.Source,
		&ds.Provenance.Origin.CollectionSituation,
		&ds.Accessibility.Usage.DataUseLimitation,
		&ds.Accessibility.Usage.DataUseRequirements,
		&ds.Accessibility.Usage.ResourceCreator,
		&ds.Accessibility.Usage.Investigations,
		&ds.Accessibility.Usage.IsReferencedBy,
		&ds.Accessibility.Access.AccessRights,
		&ds.Accessibility.Access.Jurisdiction,
		&ds.Accessibility.FormatAndStandards.VocabularyEncodingScheme,
		&ds.Accessibility.FormatAndStandards.ConformsTo,
		&ds.Accessibility.FormatAndStandards.Language,
		&ds.Accessibility.FormatAndStandards.Format,
		&ds.Enrichment.QualifiedRelation,
		&ds.Enrichment.Derivation,
		&ds.Enrichment.Tools,
	}

	for _, l := range lists {
		if *l == nil {
			*l = domain.StringList{}
		}
	}

	if ds.Observations == nil {
		ds.Observations = []domain.Observation{}
	}
	if ds.StructuralMetadata == nil {
		ds.StructuralMetadata = []domain.Table{}
	}
}
