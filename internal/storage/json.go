package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"snow/internal/domain"
)

// Save writes the report to the configured results file.
func (s *JSONStorage) Save(report *domain.Report) error {
	return s.SaveOutput(domain.NewRunRecord(report))
}

// Load reads the last run from the configured results file.
func (s *JSONStorage) Load() (*domain.RunRecord, error) {
	path := s.cfg.GetResultsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var record domain.RunRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &record, nil
}

// SaveOutput writes the full record to the configured results file.
func (s *JSONStorage) SaveOutput(record *domain.RunRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetResultsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
