package commands

import (
	"context"
	"errors"
	"io"
	"sort"

	"github.com/gYonder/husk/internal/session"
)

type ExecutionEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type Command struct {
	Run         func(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error
	Name        string
	Description string
}

// ErrExit is returned by the exit builtin. The REPL terminates once the
// pipeline containing it has completed.
var ErrExit = errors.New("exit")

var Registry = make(map[string]*Command)

func Register(cmd *Command) {
	Registry[cmd.Name] = cmd
}

func Get(name string) (*Command, bool) {
	cmd, ok := Registry[name]
	return cmd, ok
}

// IsBuiltin reports whether name is a shell builtin.
func IsBuiltin(name string) bool {
	_, ok := Registry[name]
	return ok
}

// Names returns the sorted builtin names.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
