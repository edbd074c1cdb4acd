// Package storage provides SQLite-based persistence for simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished headless run.
type RunRecord struct {
	ID         int64
	ScenarioID string
	Outcome    string
	Difficulty string
	Ticks      int
	Collisions int
	Deaths     int
	Rescued    int
	Seed       int64
	// Hash fingerprints the final world state; equal seeds and tuning
	// must produce equal hashes.
	Hash      uint64
	CreatedAt time.Time
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	ScenarioID string
	Runs       int
	Landed     int
	Dead       int
	Survived   int
	AvgTicks   float64
	LastRun    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'fixed',
			ticks INTEGER NOT NULL DEFAULT 0,
			collisions INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			rescued INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			hash TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario_id ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_outcome ON runs(scenario_id, outcome);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	difficulty := r.Difficulty
	if difficulty == "" {
		difficulty = "fixed"
	}
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (scenario_id, outcome, difficulty, ticks, collisions, deaths, rescued, seed, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ScenarioID, r.Outcome, difficulty, r.Ticks, r.Collisions, r.Deaths, r.Rescued, r.Seed,
		strconv.FormatUint(r.Hash, 16),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the latest runs, newest first. An empty scenarioID
// matches every scenario.
func (s *Store) RecentRuns(scenarioID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_id, outcome, difficulty, ticks, collisions, deaths, rescued, seed, hash, created_at
		 FROM runs
		 WHERE ? = '' OR scenario_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		scenarioID, scenarioID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var hash string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.Outcome, &r.Difficulty, &r.Ticks, &r.Collisions,
			&r.Deaths, &r.Rescued, &r.Seed, &hash, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if r.Hash, err = strconv.ParseUint(hash, 16, 64); err != nil {
			return nil, fmt.Errorf("storage: bad hash %q in run %d: %w", hash, r.ID, err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RunByID retrieves a single run. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	var r RunRecord
	var hash string
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, scenario_id, outcome, difficulty, ticks, collisions, deaths, rescued, seed, hash, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.ScenarioID, &r.Outcome, &r.Difficulty, &r.Ticks, &r.Collisions,
		&r.Deaths, &r.Rescued, &r.Seed, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	if r.Hash, err = strconv.ParseUint(hash, 16, 64); err != nil {
		return nil, fmt.Errorf("storage: bad hash %q in run %d: %w", hash, r.ID, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// ClearRuns deletes all runs of the given scenario.
func (s *Store) ClearRuns(scenarioID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scenario_id = ?", scenarioID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// AllScenarioStats retrieves statistics for every scenario that has been run.
func (s *Store) AllScenarioStats() (map[string]*ScenarioStats, error) {
	rows, err := s.db.Query(
		`SELECT scenario_id, COUNT(*),
		        SUM(outcome = 'landed'), SUM(outcome = 'dead'), SUM(outcome = 'survived'),
		        AVG(ticks), MAX(created_at)
		 FROM runs
		 GROUP BY scenario_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ScenarioStats)
	for rows.Next() {
		var st ScenarioStats
		var lastRun any
		if err := rows.Scan(&st.ScenarioID, &st.Runs, &st.Landed, &st.Dead, &st.Survived,
			&st.AvgTicks, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastRun = parseTime(lastRun)
		stats[st.ScenarioID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
