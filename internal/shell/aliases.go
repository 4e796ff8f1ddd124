package shell

import (
	"strings"
)

// ExpandAlias rewrites the first word of line when it names a configured
// alias. Expansion is single-shot: the replacement is not scanned for
// aliases again. Returns the rewritten line and whether a rewrite
// happened.
func ExpandAlias(line string, aliases map[string]string) (string, bool) {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	expansion, ok := aliases[name]
	if !ok {
		return line, false
	}

	if rest != "" {
		return expansion + " " + rest, true
	}
	return expansion, true
}
