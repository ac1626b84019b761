package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/osse101/LootForge_Go/internal/catalog"
	"github.com/osse101/LootForge_Go/internal/database"
	"github.com/osse101/LootForge_Go/internal/database/postgres"
	"github.com/osse101/LootForge_Go/internal/event"
	"github.com/osse101/LootForge_Go/internal/passive"
	"github.com/osse101/LootForge_Go/internal/validation"
)

type DeadLetterCommand struct{}

func (c *DeadLetterCommand) Name() string {
	return "deadletter"
}

func (c *DeadLetterCommand) Description() string {
	return "Inspect or replay a dead-letter file: inspect|replay <file>"
}

func (c *DeadLetterCommand) Run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: devtool deadletter inspect|replay <file>")
	}

	report, err := readDeadLetterFile(args[1])
	if err != nil {
		return err
	}

	switch args[0] {
	case "inspect":
		printDeadLetterReport(args[1], report)
		return nil
	case "replay":
		printDeadLetterReport(args[1], report)
		return replayDeadLetters(report)
	default:
		return fmt.Errorf("unknown deadletter action: %s", args[0])
	}
}

func readDeadLetterFile(path string) (*validation.DeadLetterReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}
	defer f.Close()

	schema := getEnv("DEADLETTER_SCHEMA", defaultSchemaDL)
	return validation.ReadDeadLetters(f, validation.NewSchemaValidator(), schema)
}

func printDeadLetterReport(path string, report *validation.DeadLetterReport) {
	PrintHeader("Dead letters: " + path)

	types := make([]string, 0, len(report.ByType))
	for t := range report.ByType {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		PrintInfo("%-20s %d", t, report.ByType[event.Type(t)])
	}

	if len(report.Rejected) == 0 {
		PrintSuccess("%d valid entries", len(report.Entries))
		return
	}
	PrintWarning("%d valid entries, %d rejected", len(report.Entries), len(report.Rejected))
	for _, r := range report.Rejected {
		PrintError("line %d: %v", r.Line, r.Err)
	}
}

// replayDeadLetters recomputes derived stats for every player named by a
// dead-lettered inventory change. The other event types only feed metrics and
// are not replayable.
func replayDeadLetters(report *validation.DeadLetterReport) error {
	players, err := report.StalePlayers()
	if err != nil {
		return err
	}
	if len(players) == 0 {
		PrintInfo("Nothing to replay")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	PrintInfo("Connecting to database: %s", redactPassword(dbURL()))
	pool, err := database.NewPool(dbURL(), 4, time.Minute, 5*time.Minute)
	if err != nil {
		return err
	}
	defer pool.Close()

	stats := passive.NewService(postgres.NewPlayerRepository(pool), passive.NewAggregator(catalog.Default()), passive.CacheConfig{})

	failed := 0
	for _, id := range players {
		if _, err := stats.Recalculate(ctx, id); err != nil {
			PrintError("%s: %v", id, err)
			failed++
			continue
		}
		PrintSuccess("%s recalculated", id)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d players failed to recalculate", failed, len(players))
	}
	return nil
}
