// Package diffrpt compares two JSON interchange reports and reports
// the per-language delta, plus languages added or removed entirely.
package diffrpt

import "github.com/loclens/loclens/internal/model"

// Delta is the change in one language's counters between two reports.
type Delta struct {
	Language   string
	NFilesDiff int64
	BlankDiff  int64
	CommentDiff int64
	CodeDiff   int64
	Added      bool
	Removed    bool
}

// Diff compares oldReport to newReport and returns one Delta per
// language that appears in either report, sorted by language name for
// deterministic output.
func Diff(oldReport, newReport model.Report) []Delta {
	names := map[string]struct{}{}
	for name := range oldReport.Languages {
		names[name] = struct{}{}
	}
	for name := range newReport.Languages {
		names[name] = struct{}{}
	}

	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	insertionSort(ordered)

	deltas := make([]Delta, 0, len(ordered))
	for _, name := range ordered {
		oldEntry, inOld := oldReport.Languages[name]
		newEntry, inNew := newReport.Languages[name]
		deltas = append(deltas, Delta{
			Language:    name,
			NFilesDiff:  newEntry.NFiles - oldEntry.NFiles,
			BlankDiff:   newEntry.Blank - oldEntry.Blank,
			CommentDiff: newEntry.Comment - oldEntry.Comment,
			CodeDiff:    newEntry.Code - oldEntry.Code,
			Added:       !inOld && inNew,
			Removed:     inOld && !inNew,
		})
	}
	return deltas
}

func insertionSort(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
