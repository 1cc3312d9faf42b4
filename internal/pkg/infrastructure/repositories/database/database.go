package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/metadata-gateway/federation-sync/internal/pkg/domain"
	"github.com/metadata-gateway/federation-sync/internal/pkg/infrastructure/repositories/persistence"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:generate moq -rm -out datastore_mock.go . Datastore

// Datastore is the registry's persistence interface. It is injected into
// the sync service to keep the orchestration testable.
type Datastore interface {
	GetPublisher(ctx context.Context, publisherID string) (domain.Publisher, error)
	SavePublisher(ctx context.Context, publisher domain.Publisher) error
	SetFederationActive(ctx context.Context, publisherID string, active bool) error

	GetSyncStatuses(ctx context.Context, publisherName string) ([]domain.SyncStatus, error)
	ReplaceSyncStatuses(ctx context.Context, entries []domain.SyncStatus) error
	RemoveSyncStatuses(ctx context.Context, pids []string) error

	GetLatestDataset(ctx context.Context, pid string) (*domain.RegistryDataset, error)
	AddDatasets(ctx context.Context, docs []domain.RegistryDataset) error
	ArchiveDatasets(ctx context.Context, pids []string) error
}

// ConnectorFunc is used to inject a database connection method into
// NewDatabaseConnection.
type ConnectorFunc func() (*gorm.DB, error)

// NewSQLiteConnector opens a connection to an in memory sqlite database.
func NewSQLiteConnector() ConnectorFunc {
	return func() (*gorm.DB, error) {
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err == nil {
			db.Exec("PRAGMA foreign_keys = ON")
		}

		return db, err
	}
}

// NewPostgreSQLConnector reads connection details from the environment and
// opens a connection to a postgres database.
func NewPostgreSQLConnector() ConnectorFunc {
	dbHost := os.Getenv("REGISTRY_DB_HOST")
	username := os.Getenv("REGISTRY_DB_USER")
	dbName := os.Getenv("REGISTRY_DB_NAME")
	password := os.Getenv("REGISTRY_DB_PASSWORD")
	sslMode := getEnvOrDefault("REGISTRY_DB_SSLMODE", "require")

	dbURI := fmt.Sprintf("host=%s user=%s dbname=%s sslmode=%s password=%s", dbHost, username, dbName, sslMode, password)

	return func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dbURI), &gorm.Config{})
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// NewDatabaseConnection initializes a new connection to the database and
// wraps it in a Datastore.
func NewDatabaseConnection(connect ConnectorFunc) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	err = impl.AutoMigrate(
		&persistence.Publisher{},
		&persistence.SyncStatus{},
		&persistence.Dataset{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %s", err.Error())
	}

	return &registryDB{impl: impl}, nil
}

type registryDB struct {
	impl *gorm.DB
}

func (db *registryDB) GetPublisher(ctx context.Context, publisherID string) (domain.Publisher, error) {
	row := persistence.Publisher{}

	result := db.impl.WithContext(ctx).Where(&persistence.Publisher{PublisherID: publisherID}).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domain.Publisher{}, fmt.Errorf("publisher not found for id %s", publisherID)
		}
		return domain.Publisher{}, result.Error
	}

	return domain.Publisher{
		ID:                row.PublisherID,
		Name:              row.Name,
		MemberOf:          row.MemberOf,
		FederationActive:  row.FederationActive,
		AuthType:          row.AuthType,
		SecretName:        row.SecretName,
		BaseURL:           row.BaseURL,
		DatasetsPath:      row.DatasetsPath,
		NotificationEmail: row.NotificationEmail,
	}, nil
}

func (db *registryDB) SavePublisher(ctx context.Context, publisher domain.Publisher) error {
	row := persistence.Publisher{
		PublisherID:       publisher.ID,
		Name:              publisher.Name,
		MemberOf:          publisher.MemberOf,
		FederationActive:  publisher.FederationActive,
		AuthType:          publisher.AuthType,
		SecretName:        publisher.SecretName,
		BaseURL:           publisher.BaseURL,
		DatasetsPath:      publisher.DatasetsPath,
		NotificationEmail: publisher.NotificationEmail,
	}

	return db.impl.WithContext(ctx).Create(&row).Error
}

func (db *registryDB) SetFederationActive(ctx context.Context, publisherID string, active bool) error {
	result := db.impl.WithContext(ctx).
		Model(&persistence.Publisher{}).
		Where("publisher_id = ?", publisherID).
		Update("federation_active", active)

	return result.Error
}

func (db *registryDB) GetSyncStatuses(ctx context.Context, publisherName string) ([]domain.SyncStatus, error) {
	rows := []persistence.SyncStatus{}

	result := db.impl.WithContext(ctx).Where(&persistence.SyncStatus{PublisherName: publisherName}).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]domain.SyncStatus, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.SyncStatus{
			PID:           row.PID,
			PublisherName: row.PublisherName,
			Name:          row.Name,
			Version:       row.Version,
			Status:        row.Status,
			LastSync:      row.LastSync,
		})
	}

	return entries, nil
}

func (db *registryDB) ReplaceSyncStatuses(ctx context.Context, entries []domain.SyncStatus) error {
	if len(entries) == 0 {
		return nil
	}

	pids := make([]string, 0, len(entries))
	for _, e := range entries {
		pids = append(pids, e.PID)
	}

	return db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Where("pid IN ?", pids).Delete(&persistence.SyncStatus{})
		if result.Error != nil {
			return result.Error
		}

		rows := make([]persistence.SyncStatus, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, persistence.SyncStatus{
				PID:           e.PID,
				PublisherName: e.PublisherName,
				Name:          e.Name,
				Version:       e.Version,
				Status:        e.Status,
				LastSync:      e.LastSync,
			})
		}

		return tx.Create(&rows).Error
	})
}

func (db *registryDB) RemoveSyncStatuses(ctx context.Context, pids []string) error {
	if len(pids) == 0 {
		return nil
	}

	result := db.impl.WithContext(ctx).Unscoped().Where("pid IN ?", pids).Delete(&persistence.SyncStatus{})
	return result.Error
}

func (db *registryDB) GetLatestDataset(ctx context.Context, pid string) (*domain.RegistryDataset, error) {
	row := persistence.Dataset{}

	result := db.impl.WithContext(ctx).
		Where(&persistence.Dataset{PID: pid}).
		Order("created_at DESC").
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	doc := &domain.RegistryDataset{}
	err := json.Unmarshal(row.Document, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset document %s: %s", row.DatasetID, err.Error())
	}

	return doc, nil
}

func (db *registryDB) AddDatasets(ctx context.Context, docs []domain.RegistryDataset) error {
	if len(docs) == 0 {
		return nil
	}

	rows := make([]persistence.Dataset, 0, len(docs))
	for _, doc := range docs {
		document, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal dataset document %s: %s", doc.DatasetID, err.Error())
		}

		rows = append(rows, persistence.Dataset{
			DatasetID:  doc.DatasetID,
			PID:        doc.PID,
			Name:       doc.Name,
			Version:    doc.DatasetVersion,
			ActiveFlag: doc.ActiveFlag,
			Document:   document,
		})
	}

	return db.impl.WithContext(ctx).Create(&rows).Error
}

func (db *registryDB) ArchiveDatasets(ctx context.Context, pids []string) error {
	if len(pids) == 0 {
		return nil
	}

	return db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&persistence.Dataset{}).
			Where("pid IN ?", pids).
			Update("active_flag", domain.ActiveFlagArchive)
		if result.Error != nil {
			return result.Error
		}

		// the stored documents carry the flag too
		rows := []persistence.Dataset{}
		err := tx.Where("pid IN ?", pids).Find(&rows).Error
		if err != nil {
			return err
		}

		for _, row := range rows {
			doc := domain.RegistryDataset{}
			err = json.Unmarshal(row.Document, &doc)
			if err != nil {
				return fmt.Errorf("failed to unmarshal dataset document %s: %s", row.DatasetID, err.Error())
			}

			doc.ActiveFlag = domain.ActiveFlagArchive

			document, err := json.Marshal(doc)
			if err != nil {
				return err
			}

			err = tx.Model(&persistence.Dataset{}).Where("id = ?", row.ID).Update("document", document).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
