package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/gYonder/husk/internal/session"
)

func init() {
	Register(&Command{
		Name:        "echo",
		Description: "Write arguments to standard output",
		Run:         echo,
	})
}

// echo joins its arguments with single spaces. Only a leading -n is treated
// as an option; anything else is printed verbatim, as real echo does.
func echo(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	newline := true
	if len(args) > 0 && args[0] == "-n" {
		newline = false
		args = args[1:]
	}

	if _, err := fmt.Fprint(env.Stdout, strings.Join(args, " ")); err != nil {
		return err
	}
	if newline {
		if _, err := fmt.Fprintln(env.Stdout); err != nil {
			return err
		}
	}
	return nil
}
