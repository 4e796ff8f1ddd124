package shell

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/gYonder/husk/internal/session"
)

// runExternal spawns a non-builtin stage as a child process with the
// stage's stream bindings. The program is invoked by name, letting the OS
// resolve it through PATH again; the index is only consulted for existence.
// A lookup miss or spawn failure is reported on the stage's stderr sink and
// the stage contributes no output. The child's exit status is not surfaced.
func runExternal(ctx context.Context, sess *session.Session, c *Command) {
	name := c.Argv[0]
	if _, ok := sess.Exes.Lookup(name); !ok {
		fmt.Fprintf(c.stderrWriter(), "%s: command not found\n", name)
		return
	}

	cmd := exec.CommandContext(ctx, name, c.Argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}
	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}
	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(c.stderrWriter(), "husk: %s: %v\n", name, err)
		return
	}

	// The child holds its own copies of the endpoints now; releasing ours
	// before Wait is what lets downstream readers reach EOF.
	c.CloseEndpoints()

	_ = cmd.Wait()
}
