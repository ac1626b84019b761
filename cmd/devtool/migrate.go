package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/LootForge_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, status")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	PrintInfo("Connecting to %s", redactPassword(dbURL()))
	pool, err := database.NewPool(dbURL(), 2, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
	case "down":
		if err := database.MigrateDown(ctx, pool); err != nil {
			return err
		}
		PrintSuccess("Rolled back one migration")
	case "status":
		return database.MigrationStatus(ctx, pool)
	default:
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}
	return nil
}
