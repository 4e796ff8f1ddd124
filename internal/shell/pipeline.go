package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"

	"github.com/gYonder/husk/internal/commands"
	"github.com/gYonder/husk/internal/session"
)

// Pipeline is an ordered sequence of commands connected by anonymous pipes.
type Pipeline struct {
	Commands []*Command
}

// Parse builds a pipeline from one input line. The line is split on the
// literal pipe character before tokenizing, so a quoted "|" still separates
// stages; tokenization is per segment. For N segments, N-1 pipe pairs are
// allocated up front and threaded between neighboring commands.
func Parse(line string) (*Pipeline, error) {
	segments := strings.Split(line, "|")
	n := len(segments)

	readers := make([]*os.File, n-1)
	writers := make([]*os.File, n-1)
	for i := 0; i < n-1; i++ {
		pr, pw, err := os.Pipe()
		if err != nil {
			for j := 0; j < i; j++ {
				readers[j].Close()
				writers[j].Close()
			}
			return nil, fmt.Errorf("failed to create pipe: %w", err)
		}
		readers[i] = pr
		writers[i] = pw
	}

	p := &Pipeline{Commands: make([]*Command, n)}
	for i, seg := range segments {
		var stdin, stdout *os.File
		if i > 0 {
			stdin = readers[i-1]
		}
		if i < n-1 {
			stdout = writers[i]
		}
		p.Commands[i] = newCommand(strings.TrimSpace(seg), stdin, stdout)
	}
	return p, nil
}

// Execute runs every stage and waits for all of them. A single-stage
// pipeline runs inline on the caller's goroutine; a multi-stage pipeline
// gets one goroutine per stage, builtins included, so that producers and
// consumers are live before either is awaited and pipe back-pressure
// cannot deadlock.
//
// Stage-local failures (unknown command, spawn failure, redirect open
// failure, builtin argument errors) are reported on the stage's stderr sink
// and never escape. The only error Execute returns is ErrExit: an exit
// builtin anywhere in the pipeline terminates the shell once every stage
// has completed.
func (p *Pipeline) Execute(ctx context.Context, sess *session.Session) error {
	if len(p.Commands) == 1 {
		return runStage(ctx, sess, p.Commands[0])
	}

	var wg sync.WaitGroup
	errs := make([]error, len(p.Commands))
	for i, c := range p.Commands {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = runStage(ctx, sess, c)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if errors.Is(err, commands.ErrExit) {
			return commands.ErrExit
		}
	}
	return nil
}

// runStage executes one command: a builtin inside the shell process, or an
// external program via spawn. Endpoints are released on every path so a
// failed stage still delivers EOF downstream.
func runStage(ctx context.Context, sess *session.Session, c *Command) error {
	defer c.CloseEndpoints()

	if c.openErr != nil {
		fmt.Fprintf(c.stderrWriter(), "husk: %v\n", c.openErr)
		return nil
	}
	if len(c.Argv) == 0 {
		return nil
	}

	if builtin, ok := commands.Get(c.Argv[0]); ok {
		err := builtin.Run(ctx, sess, c.Streams(), c.Argv[1:])
		if err != nil && !errors.Is(err, commands.ErrExit) {
			// A downstream stage that stopped reading is not news.
			if !errors.Is(err, syscall.EPIPE) {
				fmt.Fprintf(c.stderrWriter(), "husk: %v\n", err)
			}
			return nil
		}
		return err
	}

	runExternal(ctx, sess, c)
	return nil
}
