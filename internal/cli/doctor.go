package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/rzacher/sitebook/internal/backup"
	"github.com/rzacher/sitebook/internal/storage"
	"github.com/rzacher/sitebook/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	// Check 1: store reachable
	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	// Check 2: data validation (only if the store is reachable)
	if storeReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (store not reachable)\n")
	}

	// Check 3: backups present (warning only)
	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: single instance (warning only; two writers can clobber
	// each other's wholesale saves)
	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 5: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkValidation(ctx *Context) error {
	data := validation.Data{}
	var err error
	if data.Projects, err = ctx.Store.GetProjects(); err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}
	if data.PunchItems, err = ctx.Store.GetPunchItems(); err != nil {
		return fmt.Errorf("failed to get punch items: %w", err)
	}
	if data.Subs, err = ctx.Store.GetSubs(); err != nil {
		return fmt.Errorf("failed to get subs: %w", err)
	}
	if data.Estimates, err = ctx.Store.GetEstimates(); err != nil {
		return fmt.Errorf("failed to get estimates: %w", err)
	}
	if data.Signatures, err = ctx.Store.GetSignatures(); err != nil {
		return fmt.Errorf("failed to get signatures: %w", err)
	}

	result := validation.New().ValidateAll(data)
	if result.HasConflicts() {
		for _, c := range result.Conflicts {
			fmt.Printf("   [%s] %s\n", c.Type, c.Message)
		}
		return fmt.Errorf("%d validation conflicts found", len(result.Conflicts))
	}

	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'sitebook backup create'")
	}

	return nil
}

func checkSingleInstance() error {
	self := filepath.Base(os.Args[0])
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range procs {
		if strings.EqualFold(p.Executable(), self) {
			count++
		}
	}
	if count > 1 {
		return fmt.Errorf("%d instances running; concurrent writes can lose data", count)
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
