package cli

import (
	"fmt"
	"os"

	"github.com/rzacher/sitebook/internal/backup"
)

type ExportCmd struct {
	Output string `arg:"" optional:"" help:"Output path." default:"sitebook-export.json"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	snap, err := backup.Export(ctx.Store, nowStamp())
	if err != nil {
		return err
	}
	if err := snap.WriteFile(c.Output); err != nil {
		return err
	}

	fmt.Printf("✓ Exported %d projects, %d punch items, %d subs, %d estimates to %s\n",
		len(snap.Projects), len(snap.PunchItems), len(snap.Subs), len(snap.Estimates), c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Snapshot file to import."`
	Force bool   `short:"f" help:"Skip confirmation."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	// Parse fully before touching the store so a bad file never
	// partially applies.
	snap, err := backup.ParseSnapshot(data)
	if err != nil {
		return err
	}

	if !c.Force {
		ok, err := confirm("Importing replaces every record in the store. Continue?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Import cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := backup.Import(ctx.Store, snap); err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d projects, %d punch items, %d subs, %d estimates\n",
		len(snap.Projects), len(snap.PunchItems), len(snap.Subs), len(snap.Estimates))
	return nil
}

type ClearCmd struct {
	Force bool `short:"f" help:"Skip confirmation."`
}

func (c *ClearCmd) Run(ctx *Context) error {
	if !c.Force {
		ok, err := confirm("Delete every record and reset settings to defaults?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Clear cancelled.")
			return nil
		}
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := backup.Clear(ctx.Store); err != nil {
		return err
	}

	fmt.Println("✓ Store cleared")
	return nil
}
