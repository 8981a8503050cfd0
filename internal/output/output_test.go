package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/output"
)

func sampleSummary() model.Summary {
	return model.Reduce([]model.FileStats{
		{Path: "a.go", Language: "Go", Code: 10, Comments: 2, Blanks: 1},
		{Path: "b.py", Language: "Python", Code: 5, Comments: 1, Blanks: 0},
	}, 100)
}

func TestRenderJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleSummary(), output.FormatJSON, false))

	var report model.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
	require.Equal(t, int64(15), report.Sum.Code)
	require.Equal(t, int64(10), report.Languages["Go"].Code)
}

func TestRenderCSVHasHeaderAndSum(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleSummary(), output.FormatCSV, false))
	out := buf.String()
	require.Contains(t, out, "language,files,blank,comment,code")
	require.Contains(t, out, "SUM")
}

func TestRenderTableDoesNotError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Render(&buf, sampleSummary(), output.FormatTable, false))
	require.Contains(t, buf.String(), "SUM")
}

func TestRenderUnknownFormatErrors(t *testing.T) {
	var buf bytes.Buffer
	err := output.Render(&buf, sampleSummary(), output.Format("bogus"), false)
	require.Error(t, err)
}
