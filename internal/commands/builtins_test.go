package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gYonder/husk/internal/commands"
	"github.com/gYonder/husk/internal/exepath"
	"github.com/gYonder/husk/internal/session"
)

func testEnv() (*commands.ExecutionEnv, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &commands.ExecutionEnv{
		Stdin:  bytes.NewReader(nil),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

func run(t *testing.T, s *session.Session, name string, args ...string) (string, string) {
	t.Helper()
	cmd, ok := commands.Get(name)
	require.True(t, ok, "builtin %s not registered", name)

	env, stdout, stderr := testEnv()
	require.NoError(t, cmd.Run(context.Background(), s, env, args))
	return stdout.String(), stderr.String()
}

func TestBuiltinSet(t *testing.T) {
	for _, name := range []string{"echo", "exit", "type", "pwd", "cd", "history"} {
		assert.True(t, commands.IsBuiltin(name), "%s should be a builtin", name)
	}
	assert.False(t, commands.IsBuiltin("ls"))
}

func TestEcho(t *testing.T) {
	s := session.NewSession(exepath.New(""))

	stdout, _ := run(t, s, "echo", "hello", "world")
	assert.Equal(t, "hello world\n", stdout)

	stdout, _ = run(t, s, "echo")
	assert.Equal(t, "\n", stdout)

	stdout, _ = run(t, s, "echo", "-n", "no", "newline")
	assert.Equal(t, "no newline", stdout)

	// Only a leading -n is an option.
	stdout, _ = run(t, s, "echo", "a", "-n")
	assert.Equal(t, "a -n\n", stdout)
}

func TestPwd(t *testing.T) {
	s := session.NewSession(exepath.New(""))

	cwd, err := os.Getwd()
	require.NoError(t, err)

	stdout, _ := run(t, s, "pwd")
	assert.Equal(t, cwd+"\n", stdout)
}

func TestCd(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(orig)

	s := session.NewSession(exepath.New(""))
	dir := t.TempDir()

	_, stderr := run(t, s, "cd", dir)
	assert.Empty(t, stderr)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCd_MissingDirectory(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(orig)

	s := session.NewSession(exepath.New(""))

	_, stderr := run(t, s, "cd", "/nonexistent-husk")
	assert.Equal(t, "cd: /nonexistent-husk: No such file or directory\n", stderr)

	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, orig, got, "cwd unchanged after failed cd")
}

func TestCd_TildeExpansion(t *testing.T) {
	orig, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(orig)

	home := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(home, "docs"), 0o755))

	s := session.NewSession(exepath.New(""))
	s.HomeDir = home

	_, stderr := run(t, s, "cd", "~/docs")
	assert.Empty(t, stderr)

	want, err := filepath.EvalSymlinks(filepath.Join(home, "docs"))
	require.NoError(t, err)
	got, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestType(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	s := session.NewSession(exepath.New(dir))

	stdout, _ := run(t, s, "type", "echo")
	assert.Equal(t, "echo is a shell builtin\n", stdout)

	stdout, _ = run(t, s, "type", "history")
	assert.Equal(t, "history is a shell builtin\n", stdout)

	stdout, _ = run(t, s, "type", "tool")
	assert.Equal(t, "tool is "+exe+"\n", stdout)

	stdout, _ = run(t, s, "type", "nosuch")
	assert.Equal(t, "nosuch: not found\n", stdout)
}

func TestType_BuiltinWinsOverPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "echo"), []byte("#!/bin/sh\n"), 0o755))

	s := session.NewSession(exepath.New(dir))

	stdout, _ := run(t, s, "type", "echo")
	assert.Equal(t, "echo is a shell builtin\n", stdout)
}

func TestHistory(t *testing.T) {
	s := session.NewSession(exepath.New(""))
	lines := []string{"echo one", "pwd", "echo two"}
	s.HistoryGetter = func() []string { return lines }

	stdout, _ := run(t, s, "history")
	assert.Equal(t, "    1  echo one\n    2  pwd\n    3  echo two\n", stdout)
}

func TestHistory_LastN(t *testing.T) {
	s := session.NewSession(exepath.New(""))
	lines := []string{"echo one", "pwd", "echo two"}
	s.HistoryGetter = func() []string { return lines }

	stdout, _ := run(t, s, "history", "2")
	assert.Equal(t, "    2  pwd\n    3  echo two\n", stdout)

	// N larger than the history shows everything.
	stdout, _ = run(t, s, "history", "10")
	assert.Equal(t, "    1  echo one\n    2  pwd\n    3  echo two\n", stdout)
}

func TestHistory_Clear(t *testing.T) {
	s := session.NewSession(exepath.New(""))
	lines := []string{"echo one"}
	cleared := false
	s.HistoryGetter = func() []string { return lines }
	s.HistoryClearer = func() { cleared = true }

	stdout, _ := run(t, s, "history", "-c")
	assert.Empty(t, stdout)
	assert.True(t, cleared)
}

func TestExit(t *testing.T) {
	s := session.NewSession(exepath.New(""))

	cmd, ok := commands.Get("exit")
	require.True(t, ok)

	env, _, _ := testEnv()
	err := cmd.Run(context.Background(), s, env, nil)
	assert.ErrorIs(t, err, commands.ErrExit)

	// Arguments are ignored.
	err = cmd.Run(context.Background(), s, env, []string{"1"})
	assert.ErrorIs(t, err, commands.ErrExit)
}
