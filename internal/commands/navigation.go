package commands

import (
	"context"
	"fmt"

	"github.com/gYonder/husk/internal/session"
)

func init() {
	Register(&Command{
		Name:        "cd",
		Description: "Change the working directory",
		Run:         cd,
	})
	Register(&Command{
		Name:        "pwd",
		Description: "Print the working directory",
		Run:         pwd,
	})
	Register(&Command{
		Name:        "exit",
		Description: "Exit the shell",
		Run:         exitCmd,
	})
}

func cd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	target := "~"
	if len(args) > 0 {
		target = args[0]
	}

	if err := s.Chdir(target); err != nil {
		fmt.Fprintf(env.Stderr, "cd: %s: No such file or directory\n", target)
	}
	return nil
}

func pwd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	cwd, err := s.Cwd()
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, cwd)
	return nil
}

// exitCmd ignores its arguments; the REPL reacts to ErrExit after the
// current pipeline has been awaited.
func exitCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	return ErrExit
}
