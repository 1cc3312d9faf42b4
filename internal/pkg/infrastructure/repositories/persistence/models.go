package persistence

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Publisher holds a publisher's federation configuration.
type Publisher struct {
	gorm.Model
	PublisherID       string `gorm:"uniqueIndex"`
	Name              string
	MemberOf          string
	FederationActive  bool
	AuthType          string
	SecretName        string
	BaseURL           string
	DatasetsPath      string
	NotificationEmail string
}

// SyncStatus is the registry's bookkeeping row for one dataset within one
// publisher's catalogue.
type SyncStatus struct {
	gorm.Model
	PID           string `gorm:"column:pid;index"`
	PublisherName string `gorm:"index"`
	Name          string
	Version       string
	Status        string
	LastSync      time.Time
}

// Dataset is one versioned registry document. The full document is stored
// as JSON; the indexed columns exist for lookups only.
type Dataset struct {
	gorm.Model
	DatasetID  string `gorm:"uniqueIndex"`
	PID        string `gorm:"column:pid;index"`
	Name       string
	Version    string
	ActiveFlag string `gorm:"index"`
	Document   datatypes.JSON
}
