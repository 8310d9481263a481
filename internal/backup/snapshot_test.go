package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rzacher/sitebook/internal/models"
	"github.com/rzacher/sitebook/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "sitebook.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestSnapshot_ExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)

	if err := src.SaveProjects([]models.Project{{ID: "p1", Name: "Job"}}); err != nil {
		t.Fatal(err)
	}
	if err := src.SavePunchItems([]models.PunchItem{{ID: "i1", ProjectID: "p1"}}); err != nil {
		t.Fatal(err)
	}
	settings, _ := src.GetSettings()
	settings.CompanyName = "Snapshot Test LLC"
	if err := src.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	snap, err := Export(src, "2025-06-15T10:00:00Z")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "export.json")
	if err := snap.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseSnapshot(data)
	if err != nil {
		t.Fatalf("ParseSnapshot failed: %v", err)
	}

	dst := newTestStore(t)
	if err := Import(dst, parsed); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	projects, _ := dst.GetProjects()
	if len(projects) != 1 || projects[0].Name != "Job" {
		t.Errorf("projects did not round trip: %v", projects)
	}
	items, _ := dst.GetPunchItems()
	if len(items) != 1 || items[0].ID != "i1" {
		t.Errorf("punch items did not round trip: %v", items)
	}
	gotSettings, _ := dst.GetSettings()
	if gotSettings.CompanyName != "Snapshot Test LLC" {
		t.Errorf("settings did not round trip: %q", gotSettings.CompanyName)
	}
}

func TestParseSnapshot_RejectsGarbage(t *testing.T) {
	if _, err := ParseSnapshot([]byte("this is not json")); err == nil {
		t.Error("garbage input should fail to parse")
	}
}

func TestImport_BadFileNeverPartiallyApplies(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveProjects([]models.Project{{ID: "keep", Name: "Keep Me"}}); err != nil {
		t.Fatal(err)
	}

	// Parsing fails before Import is ever reached.
	if _, err := ParseSnapshot([]byte(`{"projects": "not-an-array"}`)); err == nil {
		t.Fatal("malformed snapshot should fail to parse")
	}

	projects, _ := store.GetProjects()
	if len(projects) != 1 || projects[0].ID != "keep" {
		t.Errorf("store changed despite a failed parse: %v", projects)
	}
}

func TestClear_ResetsToDefaults(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveSubs([]models.SubContractor{{ID: "s1"}}); err != nil {
		t.Fatal(err)
	}
	settings, _ := store.GetSettings()
	settings.CompanyName = "Custom Name"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	if err := Clear(store); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	subs, _ := store.GetSubs()
	if len(subs) != 0 {
		t.Errorf("subs should be empty after Clear, got %d", len(subs))
	}
	gotSettings, _ := store.GetSettings()
	if gotSettings.CompanyName != models.DefaultSettings().CompanyName {
		t.Errorf("settings should reset to default, got %q", gotSettings.CompanyName)
	}
}
