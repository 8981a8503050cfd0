package progress

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// TreeHandler renders events as an indented tree following directory
// nesting, with a machine-readable summary at scan completion.
type TreeHandler struct {
	writer    io.Writer
	depth     int
	timings   []TimingEntry
	rules     []RuleEntry
	scanStart time.Time
}

func NewTreeHandler(writer io.Writer) *TreeHandler {
	return &TreeHandler{writer: writer}
}

func (h *TreeHandler) Handle(event Event) {
	indent := strings.Repeat("│  ", h.depth)
	prefix := "├─ "

	switch event.Type {
	case EventScanStart:
		h.scanStart = time.Now()
		fmt.Fprintf(h.writer, "Scanning %s...\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "Excluding: %s\n", event.Info)
		}
		fmt.Fprintln(h.writer)

	case EventScanComplete:
		msPerKFiles := 0.0
		if event.FileCount > 0 {
			msPerKFiles = (event.Duration.Seconds() * 1000) / (float64(event.FileCount) / 1000)
		}
		fmt.Fprintf(h.writer, "└─ Completed: %d files, %d directories in %.1fs (%.1fms per 1000 files)\n",
			event.FileCount, event.DirCount, event.Duration.Seconds(), msPerKFiles)
		h.printMachineReadableTimingData()
		h.printMachineReadableRuleData()

	case EventEnterDirectory:
		fmt.Fprintf(h.writer, "%s%s%s\n", indent, prefix, event.Path)
		h.depth++

	case EventLeaveDirectory:
		h.depth--
		if h.depth < 0 {
			h.depth = 0
		}
		if event.Duration > 0 {
			indent := strings.Repeat("│  ", h.depth)
			h.timings = append(h.timings, TimingEntry{Path: event.Path, Duration: event.Duration, Depth: h.depth})
			seconds := event.Duration.Seconds()
			fmt.Fprintf(h.writer, "%s└─ %s ⏱  %.2fs\n", indent, getTimingIcon(seconds), seconds)
		}

	case EventFileProcessingStart:
		fmt.Fprintf(h.writer, "%s%sCounting: %s (%s)\n", indent, prefix, event.Path, event.Language)

	case EventFileProcessingEnd:
		// Rolls up into the directory timing on leave.

	case EventSkipped:
		fmt.Fprintf(h.writer, "%s%sSkipping: %s (%s)\n", indent, prefix, event.Path, event.Reason)

	case EventProgress:
		fmt.Fprintf(h.writer, "%s%sProgress: %d files, %d directories\n", indent, prefix, event.FileCount, event.DirCount)

	case EventScanInitializing:
		fmt.Fprintf(h.writer, "%s%sInitializing: %s\n", indent, prefix, event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "%s%sExcluding: %s\n", indent, prefix, event.Info)
		}

	case EventFileWriting:
		fmt.Fprintf(h.writer, "%s%sWriting results to: %s\n", indent, prefix, event.Path)

	case EventFileWritten:
		fmt.Fprintf(h.writer, "%s%sResults written: %s\n", indent, prefix, event.Path)

	case EventInfo:
		fmt.Fprintf(h.writer, "%s%s%s\n", indent, prefix, event.Info)

	case EventGitIgnoreEnter, EventGitIgnoreLeave:
		fmt.Fprintf(h.writer, "%s%s%s\n", indent, prefix, event.Info)

	case EventRuleCheck:
		fmt.Fprintf(h.writer, "%s%sValidating rules: %s\n", indent, prefix, event.Name)
		for _, detail := range event.Details {
			fmt.Fprintf(h.writer, "%s│  %s\n", indent, detail)
		}

	case EventRuleResult:
		h.rules = append(h.rules, RuleEntry{Name: event.Name, Reason: event.Reason, Path: event.Path, Matched: event.Matched})
		if event.Path != "" {
			fmt.Fprintf(h.writer, "%s└─ ✓ loaded: %s - %s (in %s)\n", indent, event.Name, event.Reason, event.Path)
		} else {
			fmt.Fprintf(h.writer, "%s└─ ✓ loaded: %s - %s\n", indent, event.Name, event.Reason)
		}
	}
}

func (h *TreeHandler) printMachineReadableTimingData() {
	if len(h.timings) == 0 {
		return
	}
	sorted := sortTimingsByDuration(h.timings, 10)
	fmt.Fprintln(h.writer)
	fmt.Fprintf(h.writer, "TOP SLOWEST DIRECTORIES\n")
	maxShow := len(sorted)
	if maxShow > 10 {
		maxShow = 10
	}
	for i := 0; i < maxShow; i++ {
		timing := sorted[i]
		seconds := timing.Duration.Seconds()
		fmt.Fprintf(h.writer, " %s %2d. %-45s %6.2fs\n", getTimingIcon(seconds), i+1, shortenPath(timing.Path, 60), seconds)
	}
	fmt.Fprintln(h.writer)
}

func (h *TreeHandler) printMachineReadableRuleData() {
	if len(h.rules) == 0 {
		return
	}
	fmt.Fprintf(h.writer, "CUSTOM RULES\n")
	fmt.Fprintf(h.writer, " loaded: %d\n", len(h.rules))
	fmt.Fprintln(h.writer)
}
