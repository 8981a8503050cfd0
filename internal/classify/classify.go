// Package classify implements the per-line state machine that
// decides whether a physical line is code, comment, blank, or mixed.
// It is a pure, allocation-free translation of the reference
// classifier: it never reads a file and never looks anything up in
// the language registry beyond the Ruleset it is given.
package classify

import (
	"strings"

	"github.com/loclens/loclens/internal/lang"
)

// StateKind distinguishes the three states the classifier can be in
// between lines.
type StateKind int

const (
	Code StateKind = iota
	BlockComment
	String
)

// State is the state threaded across lines of one file. The zero
// value is the initial state: Code.
type State struct {
	Kind    StateKind
	Depth   int  // valid when Kind == BlockComment, always >= 1
	Delim   byte // valid when Kind == String
}

// Kind is the classification of one physical line.
type Kind int

const (
	KindCode Kind = iota
	KindComment
	KindMixed
	KindBlank
)

// Classify scans one physical line (no trailing newline) against the
// incoming state and ruleset, returning the outgoing state and the
// line's Kind. Blank-line short-circuiting is the caller's
// responsibility (counter.Count checks the trimmed line before
// calling in); Classify itself always scans character by character.
func Classify(line string, in State, rs *lang.Ruleset) (State, Kind) {
	state := in
	hasCode := false
	hasComment := state.Kind == BlockComment

	i := 0
	n := len(line)
	for i < n {
		switch state.Kind {
		case Code:
			if c := line[i]; c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v' {
				i++
				continue
			}
			rest := line[i:]
			if rs.HasBlockComment() && strings.HasPrefix(rest, rs.BlockCommentStart) {
				hasComment = true
				state = State{Kind: BlockComment, Depth: 1}
				i += len(rs.BlockCommentStart)
				continue
			}
			if _, ok := matchLineComment(rest, rs.LineComments); ok {
				hasComment = true
				return State{Kind: Code}, deriveKind(hasCode, hasComment)
			}
			if d, ok := matchStringDelim(line[i], rs.StringDelimiters); ok {
				hasCode = true
				state = State{Kind: String, Delim: d}
				i++
				continue
			}
			hasCode = true
			i++

		case BlockComment:
			rest := line[i:]
			if strings.HasPrefix(rest, rs.BlockCommentEnd) {
				state.Depth--
				i += len(rs.BlockCommentEnd)
				if state.Depth <= 0 {
					state = State{Kind: Code}
				}
				continue
			}
			if rs.Nested && rs.BlockCommentStart != "" && strings.HasPrefix(rest, rs.BlockCommentStart) {
				state.Depth++
				i += len(rs.BlockCommentStart)
				continue
			}
			i++

		case String:
			c := line[i]
			if c == '\\' {
				i += 2
				continue
			}
			if c == state.Delim {
				state = State{Kind: Code}
				i++
				continue
			}
			i++
		}
	}

	// end-of-line policy: a String never survives past its own line
	if state.Kind == String {
		state = State{Kind: Code}
	}
	return state, deriveKind(hasCode, hasComment)
}

// deriveKind maps (hasCode, hasComment) to a line Kind.
func deriveKind(hasCode, hasComment bool) Kind {
	switch {
	case hasCode && hasComment:
		return KindMixed
	case hasComment:
		return KindComment
	case hasCode:
		return KindCode
	default:
		return KindBlank
	}
}

// matchLineComment finds the first line-comment token (checked in
// list order, so multi-character tokens can precede single-character
// ones) that prefixes rest.
func matchLineComment(rest string, tokens []string) (string, bool) {
	for _, tok := range tokens {
		if tok != "" && strings.HasPrefix(rest, tok) {
			return tok, true
		}
	}
	return "", false
}

// matchStringDelim reports whether c is a configured single-character
// string delimiter.
func matchStringDelim(c byte, delims []string) (byte, bool) {
	for _, d := range delims {
		if len(d) == 1 && d[0] == c {
			return c, true
		}
	}
	return 0, false
}
