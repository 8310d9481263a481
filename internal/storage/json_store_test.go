package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rzacher/sitebook/internal/models"
)

func newTestJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "sitebook.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

func TestJSONStore_MissingFileLoadsEmpty(t *testing.T) {
	store := newTestJSONStore(t)

	projects, err := store.GetProjects()
	if err != nil {
		t.Fatalf("GetProjects failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected empty projects, got %d", len(projects))
	}
}

func TestJSONStore_CorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitebook.json")
	if err := os.WriteFile(path, []byte("{not json at all"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("corrupt file should load as empty, got error: %v", err)
	}

	items, err := store.GetPunchItems()
	if err != nil {
		t.Fatalf("GetPunchItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty punch items, got %d", len(items))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.CompanyName != models.DefaultSettings().CompanyName {
		t.Errorf("expected default settings, got company %q", settings.CompanyName)
	}
}

func TestJSONStore_RoundTripPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitebook.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	items := []models.PunchItem{
		{ID: "c", Description: "third"},
		{ID: "a", Description: "first"},
		{ID: "b", Description: "second"},
	}
	if err := store.SavePunchItems(items); err != nil {
		t.Fatalf("SavePunchItems failed: %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got, err := reopened.GetPunchItems()
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d items, want 3", len(got))
	}
	for i, want := range []string{"c", "a", "b"} {
		if got[i].ID != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestJSONStore_SaveReplacesWholesale(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.SaveSubs([]models.SubContractor{{ID: "s1"}, {ID: "s2"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSubs([]models.SubContractor{{ID: "s3"}}); err != nil {
		t.Fatal(err)
	}

	subs, err := store.GetSubs()
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].ID != "s3" {
		t.Errorf("save should replace the whole collection, got %v", subs)
	}
}

func TestJSONStore_GettersReturnCopies(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.SaveProjects([]models.Project{{ID: "p1", Name: "Original"}}); err != nil {
		t.Fatal(err)
	}

	first, _ := store.GetProjects()
	first[0].Name = "Mutated"

	second, _ := store.GetProjects()
	if second[0].Name != "Original" {
		t.Error("mutating a returned slice should not affect the store")
	}
}

func TestJSONStore_DeleteDoesNotCascade(t *testing.T) {
	store := newTestJSONStore(t)

	if err := store.SaveProjects([]models.Project{{ID: "p1", Name: "Job"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SavePunchItems([]models.PunchItem{{ID: "i1", ProjectID: "p1"}}); err != nil {
		t.Fatal(err)
	}

	// Deleting the project leaves its punch items in place.
	if err := store.SaveProjects(nil); err != nil {
		t.Fatal(err)
	}

	items, err := store.GetPunchItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ProjectID != "p1" {
		t.Errorf("punch items should survive project deletion, got %v", items)
	}

	projects, _ := store.GetProjects()
	if models.ProjectName("p1", projects) != "Unknown Project" {
		t.Errorf("dangling reference should resolve to the placeholder")
	}
}

func TestJSONStore_SettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitebook.json")
	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatal(err)
	}

	settings, _ := store.GetSettings()
	settings.CompanyName = "Test Builders Inc"
	settings.DefaultLaborRates[models.TradeElectrical] = 99
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.CompanyName != "Test Builders Inc" {
		t.Errorf("company = %q", got.CompanyName)
	}
	if got.DefaultLaborRates[models.TradeElectrical] != 99 {
		t.Errorf("electrical rate = %v, want 99", got.DefaultLaborRates[models.TradeElectrical])
	}
}

func TestJSONStore_InitRefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitebook.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init should refuse an existing file")
	}
}
