package sync

import (
	"testing"

	"github.com/matryer/is"
	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
)

func TestReconcilerPartitionsByIdentifier(t *testing.T) {
	is := is.New(t)

	custodian := []domain.DatasetSummary{
		{Identifier: "pid-a", Version: "1.0.0"},
		{Identifier: "pid-b", Version: "2.0.0"},
	}
	registry := []domain.SyncStatus{
		{PID: "pid-b", Version: "1.0.0", Status: domain.SyncStatusOK},
		{PID: "pid-c", Version: "1.0.0", Status: domain.SyncStatusOK},
	}

	archive := DatasetsToArchive(custodian, registry)
	is.Equal(len(archive), 1)
	is.Equal(archive[0].PID, "pid-c")

	fresh := ExtractNewDatasets(custodian, registry)
	is.Equal(len(fresh), 1)
	is.Equal(fresh[0].Identifier, "pid-a")

	custodianSide, registrySide := ExtractOverlappingDatasets(custodian, registry)
	is.Equal(len(custodianSide), 1)
	is.Equal(custodianSide[0].Identifier, "pid-b")
	is.Equal(len(registrySide), 1)
	is.Equal(registrySide[0].PID, "pid-b")
}

func TestReconcilerWithEmptyInputs(t *testing.T) {
	is := is.New(t)

	archive := DatasetsToArchive(nil, nil)
	is.True(archive != nil)
	is.Equal(len(archive), 0)

	fresh := ExtractNewDatasets(nil, nil)
	is.True(fresh != nil)
	is.Equal(len(fresh), 0)

	custodianSide, registrySide := ExtractOverlappingDatasets(nil, nil)
	is.True(custodianSide != nil)
	is.True(registrySide != nil)
	is.Equal(len(custodianSide), 0)
	is.Equal(len(registrySide), 0)
}

func TestReconcilerWithIdenticalSides(t *testing.T) {
	is := is.New(t)

	custodian := []domain.DatasetSummary{{Identifier: "pid-a", Version: "1.0.0"}}
	registry := []domain.SyncStatus{{PID: "pid-a", Version: "1.0.0", Status: domain.SyncStatusOK}}

	is.Equal(len(DatasetsToArchive(custodian, registry)), 0)
	is.Equal(len(ExtractNewDatasets(custodian, registry)), 0)

	custodianSide, registrySide := ExtractOverlappingDatasets(custodian, registry)
	is.Equal(len(custodianSide), 1)
	is.Equal(len(registrySide), 1)
}
