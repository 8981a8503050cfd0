// Package lang holds the language registry: the immutable lexical
// ruleset table and the extension/filename resolution rules that
// classify.Classify and counter.Count depend on.
package lang

import (
	"fmt"
	"strings"
)

// Ruleset is the lexical description of one language. Zero value is
// not meaningful; construct via the registry.
type Ruleset struct {
	Name              string
	LineComments      []string
	BlockCommentStart string
	BlockCommentEnd   string
	Nested            bool
	StringDelimiters  []string
	RawStringStart    string
	RawStringEnd      string
}

// HasBlockComment reports whether this ruleset defines a block-comment
// pair.
func (r Ruleset) HasBlockComment() bool {
	return r.BlockCommentStart != "" && r.BlockCommentEnd != ""
}

// HasComments reports whether the ruleset defines any comment syntax
// at all; counter.Count takes a fast path when this is false.
func (r Ruleset) HasComments() bool {
	return len(r.LineComments) > 0 || r.HasBlockComment()
}

func (r Ruleset) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("ruleset has empty name")
	}
	if r.Nested && !r.HasBlockComment() {
		return fmt.Errorf("%s: nested requires both block comment start and end", r.Name)
	}
	for _, tok := range r.LineComments {
		if tok == "" || strings.ContainsAny(tok, "\n\r") {
			return fmt.Errorf("%s: invalid line-comment token %q", r.Name, tok)
		}
	}
	return nil
}
