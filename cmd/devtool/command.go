package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

const (
	defaultBaseURL  = "http://localhost:8080"
	defaultDBUser   = "postgres"
	defaultDBPass   = "postgres"
	defaultDBHost   = "localhost"
	defaultDBPort   = "5432"
	defaultDBName   = "lootforge"
	defaultSchemaDL = "configs/schemas/deadletter.schema.json"
)

var errUnknownCommand = errors.New("unknown command")

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Registry maps subcommand names to commands
type Registry struct {
	commands map[string]Command
}

func NewRegistry(cmds ...Command) *Registry {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		r.Register(c)
	}
	return r
}

// Register adds cmd, replacing any command with the same name
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}

// Dispatch runs the command named by args[0] with the remaining args
func (r *Registry) Dispatch(args []string) error {
	if len(args) == 0 {
		return errUnknownCommand
	}
	cmd, ok := r.Get(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownCommand, args[0])
	}
	if err := cmd.Run(args[1:]); err != nil {
		return fmt.Errorf("%s failed: %w", cmd.Name(), err)
	}
	return nil
}

// PrintHelp writes usage with one aligned line per command
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: devtool <command> [args...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.List() {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	tw.Flush()
}
