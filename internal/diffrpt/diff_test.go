package diffrpt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/diffrpt"
	"github.com/loclens/loclens/internal/model"
)

func TestDiffDetectsAddedAndRemoved(t *testing.T) {
	oldReport := model.Report{Languages: map[string]model.ReportEntry{
		"Go": {Code: 10},
	}}
	newReport := model.Report{Languages: map[string]model.ReportEntry{
		"Python": {Code: 5},
	}}

	deltas := diffrpt.Diff(oldReport, newReport)
	require.Len(t, deltas, 2)

	byName := map[string]diffrpt.Delta{}
	for _, d := range deltas {
		byName[d.Language] = d
	}
	require.True(t, byName["Go"].Removed)
	require.True(t, byName["Python"].Added)
}

func TestDiffComputesCodeDelta(t *testing.T) {
	oldReport := model.Report{Languages: map[string]model.ReportEntry{"Go": {Code: 10}}}
	newReport := model.Report{Languages: map[string]model.ReportEntry{"Go": {Code: 15}}}

	deltas := diffrpt.Diff(oldReport, newReport)
	require.Len(t, deltas, 1)
	require.Equal(t, int64(5), deltas[0].CodeDiff)
	require.False(t, deltas[0].Added)
	require.False(t, deltas[0].Removed)
}
