package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rzacher/sitebook/internal/models"
)

// Store is the on-disk shape of the JSON provider: every named
// collection plus the settings singleton in one file.
type Store struct {
	Version    int                    `json:"version"`
	Settings   models.AppSettings     `json:"settings"`
	Projects   []models.Project       `json:"projects"`
	PunchItems []models.PunchItem     `json:"punchItems"`
	Subs       []models.SubContractor `json:"subs"`
	Estimates  []models.Estimate      `json:"estimates"`
	Analyses   []models.PhotoAnalysis `json:"photoAnalyses"`
	Signatures []models.Signature     `json:"signatures"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyStore() *Store {
	return &Store{
		Version:  1,
		Settings: models.DefaultSettings(),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

// Load reads the store file. A missing or unparseable file degrades to
// an empty store with default settings rather than failing: partial or
// corrupt local data should never block the app from functioning.
func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.store = emptyStore()
			return nil
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		s.store = emptyStore()
		return nil
	}

	// An older or hand-edited file may omit settings entirely.
	if s.store.Settings.CompanyName == "" && s.store.Settings.DefaultLaborRates == nil {
		s.store.Settings = models.DefaultSettings()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetProjects() ([]models.Project, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.Project(nil), s.store.Projects...), nil
}

func (s *JSONStore) SaveProjects(projects []models.Project) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Projects = projects
	return s.save()
}

func (s *JSONStore) GetPunchItems() ([]models.PunchItem, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.PunchItem(nil), s.store.PunchItems...), nil
}

func (s *JSONStore) SavePunchItems(items []models.PunchItem) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.PunchItems = items
	return s.save()
}

func (s *JSONStore) GetSubs() ([]models.SubContractor, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.SubContractor(nil), s.store.Subs...), nil
}

func (s *JSONStore) SaveSubs(subs []models.SubContractor) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Subs = subs
	return s.save()
}

func (s *JSONStore) GetEstimates() ([]models.Estimate, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.Estimate(nil), s.store.Estimates...), nil
}

func (s *JSONStore) SaveEstimates(estimates []models.Estimate) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Estimates = estimates
	return s.save()
}

func (s *JSONStore) GetAnalyses() ([]models.PhotoAnalysis, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.PhotoAnalysis(nil), s.store.Analyses...), nil
}

func (s *JSONStore) SaveAnalyses(analyses []models.PhotoAnalysis) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Analyses = analyses
	return s.save()
}

func (s *JSONStore) GetSignatures() ([]models.Signature, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return append([]models.Signature(nil), s.store.Signatures...), nil
}

func (s *JSONStore) SaveSignatures(signatures []models.Signature) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Signatures = signatures
	return s.save()
}

func (s *JSONStore) GetSettings() (models.AppSettings, error) {
	if err := s.loaded(); err != nil {
		return models.AppSettings{}, err
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.AppSettings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.store.Settings = settings
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple sitebook processes that share the same storage path at
//     the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
