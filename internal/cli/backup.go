package cli

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/rzacher/sitebook/internal/backup"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" default:"1" help:"Create a backup of the store."`
	List    BackupListCmd    `cmd:"" help:"List available backups."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	// Load once so a fresh store file exists before it is copied.
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := ctx.Store.Close(); err != nil {
		return err
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}

	fmt.Printf("✓ Backup created: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s (newest first):\n", mgr.GetBackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %s\n",
			b.Timestamp.Format("2006-01-02 15:04"),
			humanize.Bytes(uint64(b.Size)),
			filepath.Base(b.Path))
	}
	return nil
}

type BackupRestoreCmd struct {
	Backup string `arg:"" optional:"" help:"Backup filename (defaults to the newest)."`
	Force  bool   `short:"f" help:"Skip confirmation."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	path := c.Backup
	if path == "" {
		backups, err := mgr.ListBackups()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return fmt.Errorf("no backups to restore")
		}
		path = backups[0].Path
	} else if filepath.Dir(path) == "." {
		path = filepath.Join(mgr.GetBackupDir(), path)
	}

	if !c.Force {
		ok, err := confirm(fmt.Sprintf("Restore %s? The current store is backed up first.", filepath.Base(path)))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Close(); err != nil {
		return err
	}
	if err := mgr.RestoreBackup(path); err != nil {
		return err
	}

	fmt.Printf("✓ Restored from %s\n", filepath.Base(path))
	return nil
}
