package shell

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/gYonder/husk/internal/commands"
	"github.com/gYonder/husk/internal/session"
)

// HuskCompleter provides tab completion for the shell: builtin and indexed
// executable names for the first word, local filesystem paths after that.
type HuskCompleter struct {
	Session *session.Session
}

// NewCompleter creates a new HuskCompleter
func NewCompleter(s *session.Session) readline.AutoCompleter {
	return &HuskCompleter{Session: s}
}

// Do implements readline.AutoCompleter
func (c *HuskCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])

	words := strings.Fields(lineStr)

	// If empty or first word (command completion)
	if len(words) == 0 || (len(words) == 1 && !strings.HasSuffix(lineStr, " ")) {
		prefix := ""
		if len(words) == 1 {
			prefix = words[0]
		}
		return c.completeCommand(prefix)
	}

	// Otherwise, complete paths for the current argument
	lastSpace := strings.LastIndex(lineStr, " ")
	partial := ""
	if lastSpace < len(lineStr)-1 {
		partial = lineStr[lastSpace+1:]
	}

	return c.completePath(partial)
}

// completeCommand returns matching command names: builtins plus executable
// stems from the index, by prefix first, fuzzily when no prefix matches.
func (c *HuskCompleter) completeCommand(prefix string) ([][]rune, int) {
	candidates := append(commands.Names(), c.Session.Exes.Stems()...)

	seen := make(map[string]bool)
	var matches []string
	for _, name := range candidates {
		if seen[name] {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
			seen[name] = true
		}
	}

	// Prefix matches complete in place; fuzzy hits would mangle the typed
	// prefix, so they only kick in when nothing else matched and the whole
	// word gets replaced.
	if len(matches) == 0 && prefix != "" {
		ranked := fuzzy.RankFindFold(prefix, candidates)
		sort.Sort(ranked)
		for _, r := range ranked {
			if !seen[r.Target] {
				matches = append(matches, r.Target)
				seen[r.Target] = true
			}
		}
		result := make([][]rune, len(matches))
		for i, m := range matches {
			result[i] = []rune(m + " ")
		}
		return result, len(prefix)
	}

	sort.Strings(matches)

	result := make([][]rune, len(matches))
	for i, m := range matches {
		// Return only the suffix that needs to be added
		result[i] = []rune(m[len(prefix):] + " ")
	}

	return result, len(prefix)
}

// completePath returns matching file and directory names from the local
// filesystem.
func (c *HuskCompleter) completePath(partial string) ([][]rune, int) {
	expanded := c.Session.ExpandHome(partial)

	var searchDir, searchPrefix string
	switch {
	case expanded == "":
		searchDir = "."
	case strings.HasSuffix(expanded, "/"):
		searchDir = expanded
	default:
		searchDir = filepath.Dir(expanded)
		searchPrefix = filepath.Base(expanded)
	}

	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil, 0
	}

	var matches []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, searchPrefix) {
			continue
		}
		if e.IsDir() {
			matches = append(matches, name+"/")
		} else {
			matches = append(matches, name)
		}
	}

	sort.Strings(matches)

	result := make([][]rune, len(matches))
	for i, m := range matches {
		suffix := m[len(searchPrefix):]
		// Space after files; directories stay open for more path.
		if !strings.HasSuffix(suffix, "/") {
			suffix += " "
		}
		result[i] = []rune(suffix)
	}

	return result, len(searchPrefix)
}
