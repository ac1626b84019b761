package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/LootForge_Go/internal/config"
	"github.com/osse101/LootForge_Go/internal/database"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (env + db + migrations)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	cfg, err := config.Load()
	if err != nil {
		PrintError("Configuration invalid; the server will refuse to start:\n%v", err)
		hasError = true
	} else {
		PrintSuccess("Configuration valid (%s)", cfg.Environment)
		for _, w := range cfg.Warnings() {
			PrintWarning("%s", w)
		}
	}

	if err := pingDB(dbURL()); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		pool, err := database.NewPool(dbURL(), 2, time.Minute, 5*time.Minute)
		if err == nil {
			defer pool.Close()
			if err := database.MigrationStatus(ctx, pool); err != nil {
				PrintError("Migration status failed: %v", err)
				hasError = true
			}
		}
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}
