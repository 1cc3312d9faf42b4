package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/metadata-gateway/federation-sync/internal/pkg/application/services/custodian"
	"github.com/metadata-gateway/federation-sync/internal/pkg/application/transform"
	"github.com/metadata-gateway/federation-sync/internal/pkg/application/validate"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/notifications"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/repositories/database"
)

//go:generate moq -rm -out syncsvc_mock.go . SyncService

// SyncService reconciles one publisher's catalogue with the registry.
type SyncService interface {
	Sync(ctx context.Context, publisherID string) error
}

// CatalogueFactory creates a catalogue client for a publisher. Injected so
// that tests can substitute a mock catalogue.
type CatalogueFactory func(ctx context.Context, publisher domain.Publisher) (custodian.Catalogue, error)

func NewSyncService(db database.Datastore, notifier notifications.Notifier, supportedSchemas []string, weights []transform.FieldWeight, catalogues CatalogueFactory) SyncService {
	return &syncSvc{
		db:               db,
		notifier:         notifier,
		supportedSchemas: supportedSchemas,
		weights:          weights,
		catalogues:       catalogues,
	}
}

type syncSvc struct {
	db               database.Datastore
	notifier         notifications.Notifier
	supportedSchemas []string
	weights          []transform.FieldWeight
	catalogues       CatalogueFactory
}

func (svc *syncSvc) Sync(ctx context.Context, publisherID string) error {
	log := logging.GetFromContext(ctx)

	publisher, err := svc.db.GetPublisher(ctx, publisherID)
	if err != nil {
		return err
	}

	if !publisher.FederationActive {
		return fmt.Errorf("federation is deactivated for publisher %s", publisher.Name)
	}

	log.Info().Msgf("starting metadata sync for %s", publisher.Name)

	catalogue, err := svc.catalogues(ctx, publisher)
	if err != nil {
		return svc.failPass(ctx, publisher, err)
	}

	custodianDatasets, err := catalogue.ListDatasets(ctx)
	if err != nil {
		return svc.failPass(ctx, publisher, err)
	}

	registryDatasets, err := svc.db.GetSyncStatuses(ctx, publisher.Name)
	if err != nil {
		return err
	}

	archived := DatasetsToArchive(custodianDatasets, registryDatasets)
	fresh := ExtractNewDatasets(custodianDatasets, registryDatasets)
	custodianSide, registrySide := ExtractOverlappingDatasets(custodianDatasets, registryDatasets)

	pass := &passState{publisher: publisher}

	for _, summary := range fresh {
		svc.processDataset(ctx, catalogue, summary, nil, pass, false)
	}

	custodianByPid := map[string]domain.DatasetSummary{}
	for _, summary := range custodianSide {
		custodianByPid[summary.Identifier] = summary
	}

	for _, entry := range registrySide {
		summary, found := custodianByPid[entry.PID]
		if !found {
			return fmt.Errorf("no custodian counterpart found for overlapping dataset %s", entry.PID)
		}

		if entry.Status == domain.SyncStatusOK && entry.Version == summary.Version {
			continue
		}

		prev, err := svc.db.GetLatestDataset(ctx, entry.PID)
		if err != nil {
			return err
		}

		svc.processDataset(ctx, catalogue, summary, prev, pass, true)
	}

	return svc.commit(ctx, publisher, pass, archived)
}

// passState accumulates the outcome of processing every candidate record
// in one pass, so that all writes can be applied together at the end.
type passState struct {
	publisher domain.Publisher

	newDocs     []domain.RegistryDataset
	updatedDocs []domain.RegistryDataset

	superseded []string

	syncEntries []domain.SyncStatus

	invalid     []notifications.InvalidDataset
	unsupported []domain.DatasetSummary
	fetchFailed []domain.DatasetSummary
}

func (svc *syncSvc) processDataset(ctx context.Context, catalogue custodian.Catalogue, summary domain.DatasetSummary, prev *domain.RegistryDataset, pass *passState, isUpdate bool) {
	log := logging.GetFromContext(ctx)

	ds, err := catalogue.GetDataset(ctx, summary.Identifier)
	if err != nil {
		log.Error().Err(err).Msgf("error retrieving dataset %s", summary.Identifier)
		pass.fetchFailed = append(pass.fetchFailed, summary)
		pass.addSyncEntry(summary, domain.SyncStatusFetchFailed)
		return
	}

	if !validate.SupportedSchema(summary.Schema, svc.supportedSchemas) {
		log.Warn().Msgf("schema not supported for dataset %s", summary.Identifier)
		pass.unsupported = append(pass.unsupported, summary)
		pass.addSyncEntry(summary, domain.SyncStatusUnsupportedVersion)
		return
	}

	violations, err := validate.Validate(ctx, summary.Schema, ds.Raw)
	if err != nil {
		log.Error().Err(err).Msgf("error retrieving validation schema for dataset %s", summary.Identifier)
		pass.fetchFailed = append(pass.fetchFailed, summary)
		pass.addSyncEntry(summary, domain.SyncStatusFetchFailed)
		return
	}

	if len(violations) > 0 {
		pass.invalid = append(pass.invalid, notifications.InvalidDataset{Summary: summary, Errors: violations})
		pass.addSyncEntry(summary, domain.SyncStatusValidationFailed)
		return
	}

	doc, err := transform.Transform(ds, pass.publisher, prev, svc.weights)
	if err != nil {
		log.Error().Err(err).Msgf("failed to transform dataset %s", summary.Identifier)
		pass.invalid = append(pass.invalid, notifications.InvalidDataset{
			Summary: summary,
			Errors:  []domain.ValidationError{{Error: err.Error(), Path: []any{}}},
		})
		pass.addSyncEntry(summary, domain.SyncStatusValidationFailed)
		return
	}

	if isUpdate {
		pass.updatedDocs = append(pass.updatedDocs, doc)
		if prev != nil {
			pass.superseded = append(pass.superseded, doc.PID)
		}
	} else {
		pass.newDocs = append(pass.newDocs, doc)
	}

	pass.addSyncEntry(summary, domain.SyncStatusOK)
}

func (pass *passState) addSyncEntry(summary domain.DatasetSummary, status string) {
	name := summary.Name
	if name == "" {
		name = summary.Identifier
	}

	pass.syncEntries = append(pass.syncEntries, domain.SyncStatus{
		PID:           summary.Identifier,
		PublisherName: pass.publisher.Name,
		Name:          name,
		Version:       summary.Version,
		Status:        status,
		LastSync:      time.Now().UTC(),
	})
}

func (svc *syncSvc) commit(ctx context.Context, publisher domain.Publisher, pass *passState, archived []domain.SyncStatus) error {
	log := logging.GetFromContext(ctx)

	// archive disappeared and superseded pids before inserting the new
	// documents, so no pid ever has two active documents
	archivePids := make([]string, 0, len(archived)+len(pass.superseded))
	disappearedPids := make([]string, 0, len(archived))
	for _, entry := range archived {
		archivePids = append(archivePids, entry.PID)
		disappearedPids = append(disappearedPids, entry.PID)
	}
	archivePids = append(archivePids, pass.superseded...)

	err := svc.db.ArchiveDatasets(ctx, archivePids)
	if err != nil {
		return err
	}

	err = svc.db.RemoveSyncStatuses(ctx, disappearedPids)
	if err != nil {
		return err
	}

	docs := append(append([]domain.RegistryDataset{}, pass.newDocs...), pass.updatedDocs...)
	err = svc.db.AddDatasets(ctx, docs)
	if err != nil {
		return err
	}

	err = svc.db.ReplaceSyncStatuses(ctx, pass.syncEntries)
	if err != nil {
		return err
	}

	summary := notifications.Summary{
		Archived:    archived,
		New:         pass.newDocs,
		Updated:     pass.updatedDocs,
		Invalid:     pass.invalid,
		Unsupported: pass.unsupported,
	}

	if !summary.Empty() {
		svc.notifier.SendSummary(ctx, publisher, summary)
	}

	log.Info().Msgf("metadata sync for %s completed", publisher.Name)

	return nil
}

// failPass handles a failure that aborts the pass before any writes have
// happened. Authorisation and transport failures pause federation for the
// publisher and warn their contact address.
func (svc *syncSvc) failPass(ctx context.Context, publisher domain.Publisher, err error) error {
	log := logging.GetFromContext(ctx)

	authErr := &custodian.AuthError{}
	if errors.As(err, &authErr) {
		log.Error().Err(err).Msgf("authorisation failed for publisher %s", publisher.Name)
		svc.notifier.SendAuthErrorMail(ctx, publisher, authErr.URL)
		return svc.deactivate(ctx, publisher, err)
	}

	reqErr := &custodian.RequestError{}
	if errors.As(err, &reqErr) {
		log.Error().Err(err).Msgf("failed to retrieve datasets for publisher %s", publisher.Name)
		svc.notifier.SendFetchErrorMail(ctx, publisher, reqErr.URL)
		return svc.deactivate(ctx, publisher, err)
	}

	return err
}

func (svc *syncSvc) deactivate(ctx context.Context, publisher domain.Publisher, cause error) error {
	err := svc.db.SetFederationActive(ctx, publisher.ID, false)
	if err != nil {
		return fmt.Errorf("failed to deactivate federation for publisher %s: %s", publisher.ID, err.Error())
	}

	return cause
}
