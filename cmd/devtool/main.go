package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	registry := NewRegistry(
		&MigrateCommand{},
		&WaitForDBCommand{},
		&HealthCheckCommand{},
		&DoctorCommand{},
		&SeedCommand{},
		&DeadLetterCommand{},
	)

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		PrintError("%v", err)
		if errors.Is(err, errUnknownCommand) {
			registry.PrintHelp(os.Stderr)
		}
		os.Exit(1)
	}
}
