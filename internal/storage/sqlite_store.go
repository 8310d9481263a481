package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rzacher/sitebook/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists the same named collections as JSONStore in a
// SQLite file. Records are stored as JSON rows with an explicit
// position so a save/load round trip preserves order, and each save
// replaces its whole collection inside one transaction.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS records (
	collection TEXT NOT NULL,
	pos        INTEGER NOT NULL,
	id         TEXT NOT NULL,
	data       TEXT NOT NULL,
	PRIMARY KEY (collection, pos)
);
CREATE INDEX IF NOT EXISTS idx_records_id ON records (collection, id);
CREATE TABLE IF NOT EXISTS settings (
	id   INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}
	return s.SaveSettings(models.DefaultSettings())
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) open() error {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// GetDB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) ready() error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

// loadCollection reads every row of a named collection in position
// order and unmarshals each payload into out's element type via fn.
// Rows that no longer parse are skipped, matching the "corrupt data
// degrades to absent" recovery policy.
func (s *SQLiteStore) loadCollection(name string, fn func(data []byte) error) error {
	if err := s.ready(); err != nil {
		return err
	}

	rows, err := s.db.Query(`SELECT data FROM records WHERE collection = ? ORDER BY pos`, name)
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return fmt.Errorf("failed to scan collection %s: %w", name, err)
		}
		if err := fn(data); err != nil {
			continue
		}
	}
	return rows.Err()
}

// saveCollection replaces a named collection wholesale: delete all,
// insert all, one transaction.
func (s *SQLiteStore) saveCollection(name string, ids []string, payloads [][]byte) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM records WHERE collection = ?`, name); err != nil {
		return fmt.Errorf("failed to clear collection %s: %w", name, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records (collection, pos, id, data) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range payloads {
		if _, err := stmt.Exec(name, i, ids[i], payloads[i]); err != nil {
			return fmt.Errorf("failed to write collection %s: %w", name, err)
		}
	}

	return tx.Commit()
}

func marshalAll[T any](items []T, id func(T) string) ([]string, [][]byte, error) {
	ids := make([]string, 0, len(items))
	payloads := make([][]byte, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to serialize record: %w", err)
		}
		ids = append(ids, id(item))
		payloads = append(payloads, data)
	}
	return ids, payloads, nil
}

func (s *SQLiteStore) GetProjects() ([]models.Project, error) {
	var projects []models.Project
	err := s.loadCollection(CollectionProjects, func(data []byte) error {
		var p models.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		projects = append(projects, p)
		return nil
	})
	return projects, err
}

func (s *SQLiteStore) SaveProjects(projects []models.Project) error {
	ids, payloads, err := marshalAll(projects, func(p models.Project) string { return p.ID })
	if err != nil {
		return err
	}
	return s.saveCollection(CollectionProjects, ids, payloads)
}

func (s *SQLiteStore) GetPunchItems() ([]models.PunchItem, error) {
	var items []models.PunchItem
	err := s.loadCollection(CollectionPunchItems, func(data []byte) error {
		var item models.PunchItem
		if err := json.Unmarshal(data, &item); err != nil {
			return err
		}
		items = append(items, item)
		return nil
	})
	return items, err
}

func (s *SQLiteStore) SavePunchItems(items []models.PunchItem) error {
	ids, payloads, err := marshalAll(items, func(i models.PunchItem) string { return i.ID })
	if err != nil {
		return err
	}
	return s.saveCollection(CollectionPunchItems, ids, payloads)
}

func (s *SQLiteStore) GetSubs() ([]models.SubContractor, error) {
	var subs []models.SubContractor
	err := s.loadCollection(CollectionSubs, func(data []byte) error {
		var sub models.SubContractor
		if err := json.Unmarshal(data, &sub); err != nil {
			return err
		}
		subs = append(subs, sub)
		return nil
	})
	return subs, err
}

func (s *SQLiteStore) SaveSubs(subs []models.SubContractor) error {
	ids, payloads, err := marshalAll(subs, func(s models.SubContractor) string { return s.ID })
	if err != nil {
		return err
	}
	return s.saveCollection(CollectionSubs, ids, payloads)
}

func (s *SQLiteStore) GetEstimates() ([]models.Estimate, error) {
	var estimates []models.Estimate
	err := s.loadCollection(CollectionEstimates, func(data []byte) error {
		var e models.Estimate
		if err := json.Unmarshal(data, &e); err != nil {
			return err
		}
		estimates = append(estimates, e)
		return nil
	})
	return estimates, err
}

func (s *SQLiteStore) SaveEstimates(estimates []models.Estimate) error {
	ids, payloads, err := marshalAll(estimates, func(e models.Estimate) string { return e.ID })
	if err != nil {
		return err
	}
	return s.saveCollection(CollectionEstimates, ids, payloads)
}

func (s *SQLiteStore) GetAnalyses() ([]models.PhotoAnalysis, error) {
	var analyses []models.PhotoAnalysis
	err := s.loadCollection(CollectionAnalyses, func(data []byte) error {
		var a models.PhotoAnalysis
		if err := json.Unmarshal(data, &a); err != nil {
			return err
		}
		analyses = append(analyses, a)
		return nil
	})
	return analyses, err
}

func (s *SQLiteStore) SaveAnalyses(analyses []models.PhotoAnalysis) error {
	ids, payloads, err := marshalAll(analyses, func(a models.PhotoAnalysis) string { return a.ID })
	if err != nil {
		return err
	}
	return s.saveCollection(CollectionAnalyses, ids, payloads)
}

func (s *SQLiteStore) GetSignatures() ([]models.Signature, error) {
	var signatures []models.Signature
	err := s.loadCollection(CollectionSignatures, func(data []byte) error {
		var sig models.Signature
		if err := json.Unmarshal(data, &sig); err != nil {
			return err
		}
		signatures = append(signatures, sig)
		return nil
	})
	return signatures, err
}

func (s *SQLiteStore) SaveSignatures(signatures []models.Signature) error {
	ids, payloads, err := marshalAll(signatures, func(s models.Signature) string { return s.ID })
	if err != nil {
		return err
	}
	return s.saveCollection(CollectionSignatures, ids, payloads)
}

func (s *SQLiteStore) GetSettings() (models.AppSettings, error) {
	if err := s.ready(); err != nil {
		return models.AppSettings{}, err
	}

	var data []byte
	err := s.db.QueryRow(`SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.AppSettings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings models.AppSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.AppSettings) error {
	if err := s.ready(); err != nil {
		return err
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO settings (id, data) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data`, data)
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
