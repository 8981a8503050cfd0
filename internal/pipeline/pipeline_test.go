package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/filter"
	"github.com/loclens/loclens/internal/lang"
	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/pipeline"
)

func goRuleset(t *testing.T) *lang.Ruleset {
	reg, err := lang.New()
	require.NoError(t, err)
	rs, ok := reg.Get("Go")
	require.True(t, ok)
	return rs
}

func TestRunNoEntriesIsNoSourceFiles(t *testing.T) {
	_, err := pipeline.Run(context.Background(), nil, pipeline.Options{})
	require.Error(t, err)
	var re *model.RunError
	require.True(t, errors.As(err, &re))
	require.Equal(t, model.KindNoSourceFiles, re.Kind)
}

func TestRunAggregatesAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	rs := goRuleset(t)

	a := filepath.Join(dir, "a.go")
	b := filepath.Join(dir, "b.go")
	require.NoError(t, os.WriteFile(a, []byte("package a\n// c\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("package b\n\n"), 0o644))

	entries := []filter.Resolved{{Path: a, Ruleset: rs}, {Path: b, Ruleset: rs}}
	summary, err := pipeline.Run(context.Background(), entries, pipeline.Options{})
	require.NoError(t, err)

	require.Len(t, summary.Languages, 1)
	require.Equal(t, "Go", summary.Languages[0].Language)
	require.Equal(t, int64(2), summary.Languages[0].Files)
	require.Equal(t, int64(2), summary.Totals.Code)
	require.Equal(t, int64(1), summary.Totals.Comments)
	require.Equal(t, int64(1), summary.Totals.Blanks)
}

func TestRunDeduplicatesIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	rs := goRuleset(t)

	a := filepath.Join(dir, "a.go")
	b := filepath.Join(dir, "b.go")
	content := []byte("package a\n")
	require.NoError(t, os.WriteFile(a, content, 0o644))
	require.NoError(t, os.WriteFile(b, content, 0o644))

	entries := []filter.Resolved{{Path: a, Ruleset: rs}, {Path: b, Ruleset: rs}}
	summary, err := pipeline.Run(context.Background(), entries, pipeline.Options{})
	require.NoError(t, err)
	require.Equal(t, int64(1), summary.Totals.Files)
}

func TestRunNoDedupCountsBoth(t *testing.T) {
	dir := t.TempDir()
	rs := goRuleset(t)

	a := filepath.Join(dir, "a.go")
	b := filepath.Join(dir, "b.go")
	content := []byte("package a\n")
	require.NoError(t, os.WriteFile(a, content, 0o644))
	require.NoError(t, os.WriteFile(b, content, 0o644))

	entries := []filter.Resolved{{Path: a, Ruleset: rs}, {Path: b, Ruleset: rs}}
	summary, err := pipeline.Run(context.Background(), entries, pipeline.Options{NoDedup: true})
	require.NoError(t, err)
	require.Equal(t, int64(2), summary.Totals.Files)
}
