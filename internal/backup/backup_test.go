package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeStoreFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestManager_CreateAndListJSONBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStoreFile(t, dir, "sitebook.json", `{"version":1}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("backup should keep the store extension, got %s", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1}` {
		t.Errorf("backup content = %q", data)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Path != backupPath {
		t.Errorf("listed path %s, want %s", backups[0].Path, backupPath)
	}
}

func TestManager_CreateBackupRequiresStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("backing up a missing store should fail")
	}
}

func TestManager_RestoreReplacesStore(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStoreFile(t, dir, "sitebook.json", `{"version":1,"note":"old"}`)

	mgr := NewManager(storePath)
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatal(err)
	}

	// Store changes after the backup was taken.
	if err := os.WriteFile(storePath, []byte(`{"version":1,"note":"new"}`), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	data, err := os.ReadFile(storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"version":1,"note":"old"}` {
		t.Errorf("restore did not bring back the backup content: %q", data)
	}
}

func TestManager_RestoreRejectsCorruptBackup(t *testing.T) {
	dir := t.TempDir()
	storePath := writeStoreFile(t, dir, "sitebook.json", `{"version":1}`)

	mgr := NewManager(storePath)
	if err := os.MkdirAll(mgr.GetBackupDir(), 0700); err != nil {
		t.Fatal(err)
	}
	corrupt := writeStoreFile(t, mgr.GetBackupDir(), BackupFilePrefix+"20250101-0000.json", "not json")

	if err := mgr.RestoreBackup(corrupt); err == nil {
		t.Error("restoring a corrupt backup should fail")
	}

	// The live store is untouched.
	data, _ := os.ReadFile(storePath)
	if string(data) != `{"version":1}` {
		t.Errorf("store changed after a rejected restore: %q", data)
	}
}
