// Package summation adds JSON interchange reports together, field by
// field, for the "multiple roots as one combined total" CLI flow.
package summation

import "github.com/loclens/loclens/internal/model"

// Sum merges reports field-wise across matching language keys,
// unioning the key set, and sums the SUM entry and elapsed-time
// header fields the same way.
func Sum(reports ...model.Report) model.Report {
	out := model.Report{Languages: map[string]model.ReportEntry{}}
	var header model.ReportHeader
	haveHeader := false

	for _, r := range reports {
		for name, entry := range r.Languages {
			agg := out.Languages[name]
			out.Languages[name] = addEntry(agg, entry)
		}
		out.Sum = addEntry(out.Sum, r.Sum)
		if r.Header != nil {
			haveHeader = true
			header.ElapsedSec += r.Header.ElapsedSec
			header.TotalFiles += r.Header.TotalFiles
			header.TotalLines += r.Header.TotalLines
			if header.Version == "" {
				header.Version = r.Header.Version
			}
		}
	}

	if haveHeader {
		if header.ElapsedSec > 0 {
			header.FilesPerS = float64(header.TotalFiles) / header.ElapsedSec
			header.LinesPerS = float64(header.TotalLines) / header.ElapsedSec
		}
		out.Header = &header
	}
	return out
}

func addEntry(a, b model.ReportEntry) model.ReportEntry {
	return model.ReportEntry{
		NFiles:  a.NFiles + b.NFiles,
		Blank:   a.Blank + b.Blank,
		Comment: a.Comment + b.Comment,
		Code:    a.Code + b.Code,
	}
}
