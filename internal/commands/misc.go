package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gYonder/husk/internal/session"
	"github.com/spf13/pflag"
)

func init() {
	Register(&Command{
		Name:        "type",
		Description: "Describe how a command name would be resolved",
		Run:         typeCmd,
	})
	Register(&Command{
		Name:        "history",
		Description: "Show command history",
		Run:         history,
	})
}

// typeCmd resolves each name against the builtins first, then the
// executable index. Results go to stdout, including misses.
func typeCmd(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	for _, name := range args {
		switch {
		case IsBuiltin(name):
			fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
		default:
			if path, ok := s.Exes.Lookup(name); ok {
				fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
			} else {
				fmt.Fprintf(env.Stdout, "%s: not found\n", name)
			}
		}
	}
	return nil
}

func history(ctx context.Context, s *session.Session, env *ExecutionEnv, args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	clear := fs.BoolP("clear", "c", false, "clear the history list")
	fs.SetOutput(env.Stderr)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *clear {
		if s.HistoryClearer != nil {
			s.HistoryClearer()
		}
		return nil
	}

	if s.HistoryGetter == nil {
		return nil
	}
	hist := s.HistoryGetter()

	// Optional count: show only the last N entries, numbering preserved.
	start := 0
	if rest := fs.Args(); len(rest) > 0 {
		n, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("history: %s: numeric argument required", rest[0])
		}
		if n < len(hist) {
			start = len(hist) - n
		}
	}

	for i := start; i < len(hist); i++ {
		fmt.Fprintf(env.Stdout, "    %d  %s\n", i+1, hist[i])
	}
	return nil
}
