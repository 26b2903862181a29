package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/gentleday/gentleday/internal/cli"
	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/storage/sqlite"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkDayIntegrity(ctx); err != nil {
			fmt.Printf("❌ Day integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Day integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Day integrity: SKIPPED (database not reachable)\n")
	}

	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	if running, err := serverRunning(); err != nil {
		fmt.Printf("⚠ Server process: UNKNOWN\n")
		fmt.Printf("   %v\n", err)
	} else if running {
		fmt.Printf("✓ Server process: RUNNING\n")
	} else {
		fmt.Printf("ℹ Server process: not running (start with 'gentleday serve')\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	db := ctx.Store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	var result int
	if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	runner, err := migrationRunner(ctx)
	if err != nil {
		return err
	}

	currentVersion, err := runner.CurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.LatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'gentleday migrate')", currentVersion, latestVersion)
	}
	return nil
}

// checkDayIntegrity looks for closed days without a closing timestamp
// and time blocks pointing at missing days.
func checkDayIntegrity(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		// Boolean columns are INTEGER on sqlite only; postgres installs
		// are expected to be checked server-side.
		return nil
	}

	db := ctx.Store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var halfClosed int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM days
		WHERE is_closed = 1 AND (closed_at IS NULL OR closed_at = '')
	`).Scan(&halfClosed)
	if err != nil {
		return fmt.Errorf("failed to check closed days: %w", err)
	}
	if halfClosed > 0 {
		return fmt.Errorf("found %d closed days without a closing timestamp", halfClosed)
	}

	var orphaned int
	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM time_blocks tb
		LEFT JOIN days d ON tb.day_id = d.id
		WHERE d.id IS NULL
	`).Scan(&orphaned)
	if err != nil {
		return fmt.Errorf("failed to check orphaned time blocks: %w", err)
	}
	if orphaned > 0 {
		return fmt.Errorf("found %d time blocks referencing non-existent days", orphaned)
	}

	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*sqlite.Store); !ok {
		// The postgres schema stores dates the same way but GLOB is a
		// sqlite operator, so this check is sqlite-only.
		return nil
	}

	db := ctx.Store.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM days
		WHERE date NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check day dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d days with invalid date format", invalidCount)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// serverRunning scans the process table for another gentleday process
// besides this one.
func serverRunning() (bool, error) {
	procs, err := ps.Processes()
	if err != nil {
		return false, fmt.Errorf("failed to list processes: %w", err)
	}
	self := os.Getpid()
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		if strings.Contains(p.Executable(), constants.AppName) {
			return true, nil
		}
	}
	return false, nil
}
