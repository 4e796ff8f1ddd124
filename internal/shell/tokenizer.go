package shell

import (
	"strings"
)

// Tokenize splits one input line into argument strings under shell quoting
// rules. Quoting is fully resolved here: no token in the result contains an
// unescaped quote or backslash metacharacter, and no token is empty.
//
// Pipe and redirection characters are NOT operators at this level; they
// survive inside tokens unless surrounded by whitespace, in which case they
// come out as standalone tokens for the redirection extractor. The pipeline
// builder splits on "|" before tokenizing.
//
// Unterminated quotes and a trailing bare backslash are absorbed leniently:
// the dangling escape is dropped and everything accumulated so far is kept.
func Tokenize(line string) []string {
	t := &tokenizer{line: line}
	return t.tokenize()
}

type tokenizer struct {
	tokens   []string
	current  strings.Builder
	line     string
	pos      int
	inSingle bool
	inDouble bool
}

func (t *tokenizer) tokenize() []string {
	for t.pos < len(t.line) {
		ch := t.line[t.pos]

		switch {
		case ch == ' ' && !t.inSingle && !t.inDouble:
			// Runs of unquoted spaces collapse; they never yield empty
			// tokens, leading or trailing.
			t.flushWord()
			t.pos++
		case ch == '\n':
			t.pos++
		case ch == '\\' && !t.inSingle:
			t.readEscaped()
		case ch == '\'' && !t.inDouble:
			t.inSingle = !t.inSingle
			t.pos++
		case ch == '"' && !t.inSingle:
			t.inDouble = !t.inDouble
			t.pos++
		default:
			t.current.WriteByte(ch)
			t.pos++
		}
	}
	t.flushWord()
	return t.tokens
}

func (t *tokenizer) flushWord() {
	if t.current.Len() > 0 {
		t.tokens = append(t.tokens, t.current.String())
		t.current.Reset()
	}
}

// readEscaped consumes a backslash and the character after it. Outside
// quotes the next character is emitted literally. Inside double quotes the
// backslash only escapes ", \, $ and `; before any other character both
// bytes are kept. A backslash at end of input is dropped.
func (t *tokenizer) readEscaped() {
	if t.pos+1 >= len(t.line) {
		t.pos++
		return
	}
	next := t.line[t.pos+1]
	if t.inDouble && !isDoubleQuoteEscapable(next) {
		t.current.WriteByte('\\')
	}
	t.current.WriteByte(next)
	t.pos += 2
}

func isDoubleQuoteEscapable(ch byte) bool {
	return ch == '"' || ch == '\\' || ch == '$' || ch == '`'
}
