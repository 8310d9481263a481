package storage

import (
	"path/filepath"
	"testing"

	"github.com/rzacher/sitebook/internal/models"
)

func newTestSQLiteStore(t *testing.T) (*SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitebook.db")
	store := NewSQLiteStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestSQLiteStore_FreshStoreIsEmpty(t *testing.T) {
	store, _ := newTestSQLiteStore(t)

	projects, err := store.GetProjects()
	if err != nil {
		t.Fatalf("GetProjects failed: %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("expected no projects, got %d", len(projects))
	}

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings failed: %v", err)
	}
	if settings.CompanyName != models.DefaultSettings().CompanyName {
		t.Errorf("fresh store should fall back to default settings, got %q", settings.CompanyName)
	}
}

func TestSQLiteStore_RoundTripPreservesOrder(t *testing.T) {
	store, path := newTestSQLiteStore(t)

	estimates := []models.Estimate{
		{ID: "e2", ClientName: "Second", LineItems: []models.EstimateLineItem{
			{ID: "li1", Trade: models.TradeElectrical, ManHours: 10, LaborRate: 85, Quantity: 1},
		}},
		{ID: "e1", ClientName: "First"},
	}
	if err := store.SaveEstimates(estimates); err != nil {
		t.Fatalf("SaveEstimates failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.GetEstimates()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "e2" || got[1].ID != "e1" {
		t.Fatalf("insertion order not preserved: %v", got)
	}
	if len(got[0].LineItems) != 1 || got[0].LineItems[0].LaborRate != 85 {
		t.Errorf("nested line items did not survive the round trip: %v", got[0].LineItems)
	}
}

func TestSQLiteStore_SaveReplacesWholesale(t *testing.T) {
	store, _ := newTestSQLiteStore(t)

	if err := store.SaveSignatures([]models.Signature{{ID: "s1"}, {ID: "s2"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSignatures([]models.Signature{{ID: "s3"}}); err != nil {
		t.Fatal(err)
	}

	sigs, err := store.GetSignatures()
	if err != nil {
		t.Fatal(err)
	}
	if len(sigs) != 1 || sigs[0].ID != "s3" {
		t.Errorf("save should replace the whole collection, got %v", sigs)
	}
}

func TestSQLiteStore_CollectionsAreIndependent(t *testing.T) {
	store, _ := newTestSQLiteStore(t)

	if err := store.SaveProjects([]models.Project{{ID: "p1"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveSubs([]models.SubContractor{{ID: "s1", Trade: models.TradePlumbing}}); err != nil {
		t.Fatal(err)
	}
	if err := store.SaveProjects(nil); err != nil {
		t.Fatal(err)
	}

	subs, err := store.GetSubs()
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 {
		t.Errorf("clearing projects should not touch subs, got %d", len(subs))
	}
}

func TestSQLiteStore_SettingsUpsert(t *testing.T) {
	store, path := newTestSQLiteStore(t)

	settings, _ := store.GetSettings()
	settings.CompanyName = "Upserted LLC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	settings.CompanyName = "Upserted Twice LLC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got.CompanyName != "Upserted Twice LLC" {
		t.Errorf("company = %q", got.CompanyName)
	}
}

func TestSQLiteStore_GettersRequireLoad(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "sitebook.db"))

	if _, err := store.GetProjects(); err == nil {
		t.Error("reading before Load should fail")
	}
}
