package storage

import (
	"snow/internal/config"
	"snow/internal/domain"
)

// Storage persists and loads run results (e.g. for the faills viewer).
type Storage interface {
	Save(report *domain.Report) error
	Load() (*domain.RunRecord, error)
	// SaveOutput writes a full record (e.g. after marking failures resolved).
	SaveOutput(record *domain.RunRecord) error
}

// JSONStorage stores results in a JSON file under the configured path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's results file.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// New picks the results database when one is configured, the JSON file
// otherwise.
func New(cfg *config.Config) (Storage, error) {
	if cfg.Database.Enabled() {
		return NewMySQLStorage(cfg.Database)
	}
	return NewJSONStorage(cfg), nil
}
