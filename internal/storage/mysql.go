package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"snow/internal/config"
	"snow/internal/domain"
)

var schema = []string{
	"CREATE TABLE IF NOT EXISTS snow_runs (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"total INT NOT NULL, " +
		"passed INT NOT NULL, " +
		"duration_seconds DOUBLE NOT NULL, " +
		"started_at DATETIME NOT NULL)",
	"CREATE TABLE IF NOT EXISTS snow_failures (" +
		"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
		"run_id BIGINT NOT NULL, " +
		"case_name VARCHAR(512) NOT NULL, " +
		"group_path VARCHAR(1024) NOT NULL, " +
		"message TEXT NOT NULL, " +
		"duration_seconds DOUBLE NOT NULL, " +
		"resolved BOOLEAN NOT NULL DEFAULT FALSE, " +
		"INDEX (run_id))",
}

// MySQLStorage keeps the history of runs in a MySQL database. Load returns
// the most recent run.
type MySQLStorage struct {
	db *sql.DB
}

// NewMySQLStorage opens the results database described by cfg
func NewMySQLStorage(cfg config.Database) (*MySQLStorage, error) {
	if !isValidDatabaseName(cfg.Name) {
		return nil, fmt.Errorf("invalid database name: %q", cfg.Name)
	}
	db, err := sql.Open("mysql", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	return &MySQLStorage{db: db}, nil
}

// DSN builds the driver connection string for cfg
func DSN(cfg config.Database) string {
	mc := mysql.NewConfig()
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.DBName = cfg.Name
	mc.ParseTime = true
	return mc.FormatDSN()
}

// Close closes the database handle
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}

func (s *MySQLStorage) migrate() error {
	for _, stmt := range schema {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create results tables: %w", err)
		}
	}
	return nil
}

// Save inserts the report as a new run
func (s *MySQLStorage) Save(report *domain.Report) error {
	return s.write(domain.NewRunRecord(report), report.Started, false)
}

// SaveOutput replaces the failures of the most recent run with the ones in
// record, keeping their resolved flags. Without a stored run it inserts one.
func (s *MySQLStorage) SaveOutput(record *domain.RunRecord) error {
	started, err := time.Parse(time.RFC3339, record.Meta.Timestamp)
	if err != nil {
		started = time.Now()
	}
	return s.write(record, started, true)
}

func (s *MySQLStorage) write(record *domain.RunRecord, started time.Time, replace bool) error {
	if err := s.migrate(); err != nil {
		return err
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var runID int64
	if replace {
		err := tx.QueryRow("SELECT id FROM snow_runs ORDER BY id DESC LIMIT 1").Scan(&runID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("read run: %w", err)
		}
	}

	if runID == 0 {
		res, err := tx.Exec(
			"INSERT INTO snow_runs (total, passed, duration_seconds, started_at) VALUES (?, ?, ?, ?)",
			record.Meta.TotalCases, record.Meta.PassedCases, record.Meta.DurationSeconds, started.UTC(),
		)
		if err != nil {
			return fmt.Errorf("insert run: %w", err)
		}
		if runID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("read run id: %w", err)
		}
	} else if _, err := tx.Exec("DELETE FROM snow_failures WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("clear failures: %w", err)
	}

	for _, f := range record.Details {
		_, err := tx.Exec(
			"INSERT INTO snow_failures (run_id, case_name, group_path, message, duration_seconds, resolved) VALUES (?, ?, ?, ?, ?, ?)",
			runID, f.CaseName, f.GroupPath, f.Message, f.DurationSeconds, f.Resolved,
		)
		if err != nil {
			return fmt.Errorf("insert failure: %w", err)
		}
	}
	return tx.Commit()
}

// Load reads the most recent run
func (s *MySQLStorage) Load() (*domain.RunRecord, error) {
	if err := s.migrate(); err != nil {
		return nil, err
	}

	var (
		runID   int64
		record  domain.RunRecord
		started time.Time
	)
	err := s.db.QueryRow(
		"SELECT id, total, passed, duration_seconds, started_at FROM snow_runs ORDER BY id DESC LIMIT 1",
	).Scan(&runID, &record.Meta.TotalCases, &record.Meta.PassedCases, &record.Meta.DurationSeconds, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no stored runs")
	}
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}
	record.Meta.FailedCases = record.Meta.TotalCases - record.Meta.PassedCases
	duration := time.Duration(record.Meta.DurationSeconds * float64(time.Second))
	record.Meta.Duration = duration.String()
	record.Meta.Timestamp = started.Format(time.RFC3339)

	rows, err := s.db.Query(
		"SELECT case_name, group_path, message, duration_seconds, resolved FROM snow_failures WHERE run_id = ? ORDER BY id",
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("read failures: %w", err)
	}
	defer rows.Close()

	record.Details = []domain.CaseFailure{}
	for rows.Next() {
		var f domain.CaseFailure
		if err := rows.Scan(&f.CaseName, &f.GroupPath, &f.Message, &f.DurationSeconds, &f.Resolved); err != nil {
			return nil, fmt.Errorf("scan failure: %w", err)
		}
		record.Details = append(record.Details, f)
	}
	return &record, rows.Err()
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	invalidChars := []string{"'", "\"", "`", ";", "--", "/*", "*/", " "}
	for _, char := range invalidChars {
		if strings.Contains(name, char) {
			return false
		}
	}
	return true
}
