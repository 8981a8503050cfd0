package summation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/summation"
)

func TestSumUnionsLanguageKeys(t *testing.T) {
	a := model.Report{
		Languages: map[string]model.ReportEntry{"Go": {NFiles: 1, Code: 10}},
		Sum:       model.ReportEntry{NFiles: 1, Code: 10},
	}
	b := model.Report{
		Languages: map[string]model.ReportEntry{"Python": {NFiles: 2, Code: 20}},
		Sum:       model.ReportEntry{NFiles: 2, Code: 20},
	}

	out := summation.Sum(a, b)
	require.Equal(t, int64(10), out.Languages["Go"].Code)
	require.Equal(t, int64(20), out.Languages["Python"].Code)
	require.Equal(t, int64(30), out.Sum.Code)
	require.Equal(t, int64(3), out.Sum.NFiles)
}

func TestSumAddsOverlappingLanguage(t *testing.T) {
	a := model.Report{Languages: map[string]model.ReportEntry{"Go": {Code: 5}}, Sum: model.ReportEntry{Code: 5}}
	b := model.Report{Languages: map[string]model.ReportEntry{"Go": {Code: 7}}, Sum: model.ReportEntry{Code: 7}}

	out := summation.Sum(a, b)
	require.Equal(t, int64(12), out.Languages["Go"].Code)
}

func TestSumNoReportsIsEmpty(t *testing.T) {
	out := summation.Sum()
	require.Empty(t, out.Languages)
	require.Equal(t, int64(0), out.Sum.Code)
}
