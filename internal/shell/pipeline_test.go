package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_SingleStage(t *testing.T) {
	p, err := Parse("echo hello world")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(p.Commands) != 1 {
		t.Fatalf("got %d commands, want 1", len(p.Commands))
	}

	c := p.Commands[0]
	if diff := cmp.Diff([]string{"echo", "hello", "world"}, c.Argv); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
	// A single-stage pipeline allocates no pipes; all streams inherit.
	if c.Stdin != nil || c.Stdout != nil || c.Stderr != nil {
		t.Errorf("single stage should inherit all streams: %+v", c)
	}
}

func TestParse_PipeEndpointWiring(t *testing.T) {
	p, err := Parse("a one | b two | c three")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	defer func() {
		for _, c := range p.Commands {
			c.CloseEndpoints()
		}
	}()

	if len(p.Commands) != 3 {
		t.Fatalf("got %d commands, want 3", len(p.Commands))
	}

	first, mid, last := p.Commands[0], p.Commands[1], p.Commands[2]

	if first.Stdin != nil {
		t.Error("first stage stdin must inherit the terminal")
	}
	if first.Stdout == nil || mid.Stdin == nil || mid.Stdout == nil || last.Stdin == nil {
		t.Fatal("inter-stage pipe endpoints missing")
	}
	if last.Stdout != nil {
		t.Error("last stage stdout must inherit the terminal")
	}

	// N-1 pipes for N stages, each endpoint bound to exactly one stage.
	endpoints := []uintptr{first.Stdout.Fd(), mid.Stdin.Fd(), mid.Stdout.Fd(), last.Stdin.Fd()}
	seen := make(map[uintptr]bool)
	for _, fd := range endpoints {
		if seen[fd] {
			t.Errorf("endpoint fd %d bound twice", fd)
		}
		seen[fd] = true
	}
}

func TestParse_SegmentsAreTrimmedAndTokenized(t *testing.T) {
	p, err := Parse("  echo 'a b'   |   cat  ")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	defer func() {
		for _, c := range p.Commands {
			c.CloseEndpoints()
		}
	}()

	if diff := cmp.Diff([]string{"echo", "a b"}, p.Commands[0].Argv); diff != "" {
		t.Errorf("first argv mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"cat"}, p.Commands[1].Argv); diff != "" {
		t.Errorf("second argv mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RedirectionBindsToStage(t *testing.T) {
	dir := t.TempDir()
	p, err := Parse("echo hi > " + dir + "/out.txt")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	c := p.Commands[0]
	defer c.CloseEndpoints()

	if diff := cmp.Diff([]string{"echo", "hi"}, c.Argv); diff != "" {
		t.Errorf("argv mismatch (-want +got):\n%s", diff)
	}
	if c.Stdout == nil {
		t.Fatal("stdout not bound to the redirect target")
	}
}

func TestParse_RedirectOpenFailureMarksStage(t *testing.T) {
	p, err := Parse("echo hi > /nonexistent-dir-husk/out.txt")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.Commands[0].openErr == nil {
		t.Fatal("expected openErr for unopenable redirect target")
	}
}
