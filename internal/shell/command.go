package shell

import (
	"fmt"
	"os"

	"github.com/gYonder/husk/internal/commands"
)

// Command is one pipeline stage, immutable after construction: the argument
// vector plus the stage's stream endpoints. A nil endpoint inherits the
// shell's terminal. Every non-nil endpoint is owned exclusively by this
// Command and must be closed exactly once, as soon as the stage has handed
// it to a child process or finished writing through it.
type Command struct {
	Argv   []string
	Stdin  *os.File // read end of the upstream pipe
	Stdout *os.File // write end of the downstream pipe, or redirect target
	Stderr *os.File // redirect target

	// openErr records a redirection target that could not be opened. The
	// stage is skipped at execution time; its endpoints still get closed so
	// EOF propagates downstream.
	openErr error
}

// newCommand tokenizes one pipe segment, extracts its redirections and
// opens their targets. stdin and stdout are the inter-stage pipe ends
// assigned by the pipeline builder (nil on the outer edges). An explicit
// redirect on a non-final stage is opened for its create/truncate side
// effect, but the pipe keeps priority as the stage's sink.
func newCommand(segment string, stdin, stdout *os.File) *Command {
	argv, rd := extractRedirections(Tokenize(segment))

	c := &Command{Argv: argv, Stdin: stdin, Stdout: stdout}

	if rd.Stdout != "" {
		f, err := openWriteFile(rd.Stdout, rd.StdoutAppend)
		if err != nil {
			c.openErr = err
			return c
		}
		if c.Stdout != nil {
			// Piped stages keep the pipe as their sink.
			f.Close()
		} else {
			c.Stdout = f
		}
	}

	if rd.Stderr != "" {
		f, err := openWriteFile(rd.Stderr, rd.StderrAppend)
		if err != nil {
			c.openErr = err
			return c
		}
		c.Stderr = f
	}

	return c
}

func openWriteFile(path string, append bool) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Streams returns the stage's I/O bindings with terminal fallbacks, for
// running a builtin inside the shell process.
func (c *Command) Streams() *commands.ExecutionEnv {
	env := &commands.ExecutionEnv{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	if c.Stdin != nil {
		env.Stdin = c.Stdin
	}
	if c.Stdout != nil {
		env.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		env.Stderr = c.Stderr
	}
	return env
}

// stderrWriter returns where this stage's own error messages go.
func (c *Command) stderrWriter() *os.File {
	if c.Stderr != nil {
		return c.Stderr
	}
	return os.Stderr
}

// CloseEndpoints releases every endpoint the Command still owns. Safe to
// call more than once; each endpoint is closed exactly once. Closing the
// write end promptly is what lets the downstream reader see EOF.
func (c *Command) CloseEndpoints() {
	if c.Stdin != nil {
		c.Stdin.Close()
		c.Stdin = nil
	}
	if c.Stdout != nil {
		c.Stdout.Close()
		c.Stdout = nil
	}
	if c.Stderr != nil {
		c.Stderr.Close()
		c.Stderr = nil
	}
}
