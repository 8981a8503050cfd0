package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/classify"
	"github.com/loclens/loclens/internal/lang"
)

func cLike() *lang.Ruleset {
	return &lang.Ruleset{
		Name:              "C",
		LineComments:      []string{"//"},
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
		StringDelimiters:  []string{"\"", "'"},
	}
}

func rustLike() *lang.Ruleset {
	rs := cLike()
	rs.Nested = true
	return rs
}

func pythonLike() *lang.Ruleset {
	return &lang.Ruleset{
		Name:             "Python",
		LineComments:     []string{"#"},
		StringDelimiters: []string{"\"", "'"},
	}
}

func TestClassifyLineComment(t *testing.T) {
	state, kind := classify.Classify("    // hi", classify.State{}, cLike())
	assert.Equal(t, classify.KindComment, kind)
	assert.Equal(t, classify.Code, state.Kind)
}

func TestClassifyMixedTrailingLineComment(t *testing.T) {
	_, kind := classify.Classify(`int x = 0; // trailing`, classify.State{}, cLike())
	assert.Equal(t, classify.KindMixed, kind)
}

func TestClassifyBlockCommentOpensAndPersists(t *testing.T) {
	state, kind := classify.Classify("/* start of a comment", classify.State{}, cLike())
	assert.Equal(t, classify.KindComment, kind)
	require.Equal(t, classify.BlockComment, state.Kind)
	assert.Equal(t, 1, state.Depth)

	state2, kind2 := classify.Classify("still inside", state, cLike())
	assert.Equal(t, classify.KindComment, kind2)
	assert.Equal(t, classify.BlockComment, state2.Kind)
}

func TestClassifyBlockCommentCloses(t *testing.T) {
	state, kind := classify.Classify("let x = 5; /* block */", classify.State{}, cLike())
	assert.Equal(t, classify.KindMixed, kind)
	assert.Equal(t, classify.Code, state.Kind)
}

func TestClassifyNestedBlockComment(t *testing.T) {
	state, kind := classify.Classify("/* outer /* inner */", classify.State{}, rustLike())
	assert.Equal(t, classify.KindComment, kind)
	require.Equal(t, classify.BlockComment, state.Kind)
	assert.Equal(t, 1, state.Depth)
}

func TestClassifyNonNestedBlockCommentClosesOnFirstEnd(t *testing.T) {
	state, kind := classify.Classify("/* outer /* inner */", classify.State{}, cLike())
	assert.Equal(t, classify.KindComment, kind)
	assert.Equal(t, classify.Code, state.Kind)
}

func TestClassifyStringHidesCommentTokens(t *testing.T) {
	_, kind := classify.Classify(`x = "a # not a comment"`, classify.State{}, pythonLike())
	assert.Equal(t, classify.KindCode, kind)
}

func TestClassifyStringResetsAtEndOfLine(t *testing.T) {
	state, _ := classify.Classify(`s = "unterminated`, classify.State{}, cLike())
	assert.Equal(t, classify.Code, state.Kind)
}

func TestClassifyStringEscape(t *testing.T) {
	_, kind := classify.Classify(`s := "a\"b"`, classify.State{}, cLike())
	assert.Equal(t, classify.KindCode, kind)
}

func TestClassifyLineCommentOrderPrefersBlockOpenFirst(t *testing.T) {
	rs := &lang.Ruleset{
		Name:              "Mixed",
		LineComments:      []string{"//"},
		BlockCommentStart: "/*",
		BlockCommentEnd:   "*/",
	}
	_, kind := classify.Classify("/* block not line */", classify.State{}, rs)
	assert.Equal(t, classify.KindComment, kind)
}
