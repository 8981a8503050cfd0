package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/lang"
	"github.com/loclens/loclens/internal/rules"
)

const validDoc = `
languages:
  - name: Brainfuck
    extensions: [bf]
    string_delimiters: []
`

func TestLoadValidDocumentMerges(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	require.NoError(t, rules.Load("custom.yaml", []byte(validDoc), reg))

	rs, ok := reg.Get("Brainfuck")
	require.True(t, ok)
	require.Equal(t, "Brainfuck", rs.Name)

	detected, ok := reg.Detect("program.bf")
	require.True(t, ok)
	require.Equal(t, "Brainfuck", detected.Name)
}

func TestLoadRejectsSecondImport(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	require.NoError(t, rules.Load("custom.yaml", []byte(validDoc), reg))
	err = rules.Load("custom2.yaml", []byte(validDoc), reg)
	require.Error(t, err)
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	bad := "languages:\n  - extensions: [bf]\n" // missing required "name"
	err = rules.Load("bad.yaml", []byte(bad), reg)
	require.Error(t, err)
	var ve rules.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	reg, err := lang.New()
	require.NoError(t, err)

	bad := "languages:\n  - name: X\n    extensions: [x]\n    bogus_field: true\n"
	err = rules.Load("bad.yaml", []byte(bad), reg)
	require.Error(t, err)
}
