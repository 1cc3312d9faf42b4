package sync

import (
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"golang.org/x/exp/slices"
)

// DatasetsToArchive returns the registry's sync entries whose persistent
// identifier no longer appears in the custodian's listing.
func DatasetsToArchive(custodian []domain.DatasetSummary, registry []domain.SyncStatus) []domain.SyncStatus {
	known := identifiers(custodian)

	archive := []domain.SyncStatus{}
	for _, entry := range registry {
		if !slices.Contains(known, entry.PID) {
			archive = append(archive, entry)
		}
	}

	return archive
}

// ExtractNewDatasets returns the custodian's listing entries whose
// persistent identifier the registry has never synced.
func ExtractNewDatasets(custodian []domain.DatasetSummary, registry []domain.SyncStatus) []domain.DatasetSummary {
	known := pids(registry)

	fresh := []domain.DatasetSummary{}
	for _, summary := range custodian {
		if !slices.Contains(known, summary.Identifier) {
			fresh = append(fresh, summary)
		}
	}

	return fresh
}

// ExtractOverlappingDatasets returns both sides of the intersection of the
// custodian's listing and the registry's sync entries. The two slices are
// paired by identifier, not by position.
func ExtractOverlappingDatasets(custodian []domain.DatasetSummary, registry []domain.SyncStatus) ([]domain.DatasetSummary, []domain.SyncStatus) {
	knownPids := pids(registry)
	knownIdentifiers := identifiers(custodian)

	custodianSide := []domain.DatasetSummary{}
	for _, summary := range custodian {
		if slices.Contains(knownPids, summary.Identifier) {
			custodianSide = append(custodianSide, summary)
		}
	}

	registrySide := []domain.SyncStatus{}
	for _, entry := range registry {
		if slices.Contains(knownIdentifiers, entry.PID) {
			registrySide = append(registrySide, entry)
		}
	}

	return custodianSide, registrySide
}

func identifiers(summaries []domain.DatasetSummary) []string {
	ids := make([]string, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.Identifier)
	}
	return ids
}

func pids(entries []domain.SyncStatus) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.PID)
	}
	return ids
}
