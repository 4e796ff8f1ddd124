package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/gYonder/husk/internal/commands"
	"github.com/gYonder/husk/internal/config"
	"github.com/gYonder/husk/internal/session"
	"github.com/gYonder/husk/internal/ui"
)

// Shell is the main REPL for husk.
type Shell struct {
	Session *session.Session
	RL      *readline.Instance
	cfg     *config.Config
	history []string // accepted input lines, numbered from 1
}

// New creates a new Shell with the given session.
func New(s *session.Session, cfg *config.Config) (*Shell, error) {
	completer := NewCompleter(s)

	historyPath, _ := config.HistoryPath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            ui.RenderPrompt(),
		HistoryFile:       historyPath,
		HistoryLimit:      cfg.HistorySize,
		HistorySearchFold: true,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, err
	}

	sh := &Shell{
		Session: s,
		RL:      rl,
		cfg:     cfg,
	}

	// Expose history to the history builtin without the commands package
	// owning it.
	s.HistoryGetter = sh.History
	s.HistoryClearer = sh.clearHistory

	return sh, nil
}

// Run starts the REPL loop. It returns when the exit builtin runs, on EOF
// at an empty prompt, or on a read error.
func (sh *Shell) Run() error {
	defer sh.RL.Close()

	ctx := context.Background()

	for {
		line, err := sh.RL.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C discards the un-submitted line and reprompts.
			continue
		}
		if err != nil { // io.EOF on Ctrl-D
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// The line exists in history before its pipeline is built.
		sh.history = append(sh.history, line)

		if expanded, wasAlias := ExpandAlias(line, sh.Session.Aliases); wasAlias {
			line = expanded
		}

		if sh.cfg.PathRefresh == config.RefreshCommand {
			sh.Session.Exes.Invalidate()
		}

		pipeline, err := Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("husk: %v", err)))
			continue
		}

		if err := pipeline.Execute(ctx, sh.Session); err != nil {
			if errors.Is(err, commands.ErrExit) {
				return nil
			}
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(fmt.Sprintf("husk: %v", err)))
		}
	}
}

// History returns the accepted input lines of this session in input order.
func (sh *Shell) History() []string {
	return sh.history
}

func (sh *Shell) clearHistory() {
	sh.history = nil
}
