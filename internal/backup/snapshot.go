package backup

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/storage"
)

// Snapshot is the bulk export/import format: every named collection
// plus settings in one JSON document. It is provider-independent, so a
// snapshot taken from a SQLite store imports into a JSON store.
type Snapshot struct {
	ExportedAt string                 `json:"exportedAt"`
	Projects   []models.Project       `json:"projects"`
	PunchItems []models.PunchItem     `json:"punchItems"`
	Subs       []models.SubContractor `json:"subs"`
	Estimates  []models.Estimate      `json:"estimates"`
	Analyses   []models.PhotoAnalysis `json:"photoAnalyses"`
	Signatures []models.Signature     `json:"signatures"`
	Settings   models.AppSettings     `json:"settings"`
}

// Export reads every collection from the store and returns a snapshot.
func Export(store storage.Provider, exportedAt string) (*Snapshot, error) {
	snap := &Snapshot{ExportedAt: exportedAt}
	var err error

	if snap.Projects, err = store.GetProjects(); err != nil {
		return nil, fmt.Errorf("failed to export projects: %w", err)
	}
	if snap.PunchItems, err = store.GetPunchItems(); err != nil {
		return nil, fmt.Errorf("failed to export punch items: %w", err)
	}
	if snap.Subs, err = store.GetSubs(); err != nil {
		return nil, fmt.Errorf("failed to export subs: %w", err)
	}
	if snap.Estimates, err = store.GetEstimates(); err != nil {
		return nil, fmt.Errorf("failed to export estimates: %w", err)
	}
	if snap.Analyses, err = store.GetAnalyses(); err != nil {
		return nil, fmt.Errorf("failed to export photo analyses: %w", err)
	}
	if snap.Signatures, err = store.GetSignatures(); err != nil {
		return nil, fmt.Errorf("failed to export signatures: %w", err)
	}
	if snap.Settings, err = store.GetSettings(); err != nil {
		return nil, fmt.Errorf("failed to export settings: %w", err)
	}

	return snap, nil
}

// WriteFile serializes the snapshot to path.
func (s *Snapshot) WriteFile(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// ParseSnapshot decodes snapshot data, rejecting anything that does
// not parse as a snapshot document. Parsing happens fully before any
// import, so a bad file never partially applies.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot data: %w", err)
	}
	return &snap, nil
}

// Import replaces every collection in the store with the snapshot
// contents. The snapshot has already been parsed in full; a save
// failure mid-way is the only partial state possible, and each save is
// still a wholesale collection replace.
func Import(store storage.Provider, snap *Snapshot) error {
	if err := store.SaveProjects(snap.Projects); err != nil {
		return fmt.Errorf("failed to import projects: %w", err)
	}
	if err := store.SavePunchItems(snap.PunchItems); err != nil {
		return fmt.Errorf("failed to import punch items: %w", err)
	}
	if err := store.SaveSubs(snap.Subs); err != nil {
		return fmt.Errorf("failed to import subs: %w", err)
	}
	if err := store.SaveEstimates(snap.Estimates); err != nil {
		return fmt.Errorf("failed to import estimates: %w", err)
	}
	if err := store.SaveAnalyses(snap.Analyses); err != nil {
		return fmt.Errorf("failed to import photo analyses: %w", err)
	}
	if err := store.SaveSignatures(snap.Signatures); err != nil {
		return fmt.Errorf("failed to import signatures: %w", err)
	}
	if err := store.SaveSettings(snap.Settings); err != nil {
		return fmt.Errorf("failed to import settings: %w", err)
	}
	return nil
}

// Clear wipes every collection and resets settings to the default.
func Clear(store storage.Provider) error {
	return Import(store, &Snapshot{Settings: models.DefaultSettings()})
}
