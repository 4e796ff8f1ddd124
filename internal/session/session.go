package session

import (
	"os"
	"strings"

	"github.com/gYonder/husk/internal/exepath"
)

// Session holds the process-wide mutable state of the shell: the working
// directory (delegated to the OS), the user's home, configured aliases and
// the executable index shared by every pipeline stage.
type Session struct {
	Exes           *exepath.Index
	HistoryGetter  func() []string
	HistoryClearer func()
	Aliases        map[string]string // User-defined command aliases
	HomeDir        string
}

func NewSession(exes *exepath.Index) *Session {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}

	return &Session{
		Exes:    exes,
		HomeDir: home,
		Aliases: make(map[string]string),
	}
}

// Cwd returns the shell's current working directory.
func (s *Session) Cwd() (string, error) {
	return os.Getwd()
}

// Chdir changes the shell process's working directory. Every "~" in the
// argument is replaced by the user's home directory first.
func (s *Session) Chdir(path string) error {
	return os.Chdir(s.ExpandHome(path))
}

// ExpandHome replaces each literal "~" in path with the home directory.
func (s *Session) ExpandHome(path string) string {
	if s.HomeDir == "" {
		return path
	}
	return strings.ReplaceAll(path, "~", s.HomeDir)
}
