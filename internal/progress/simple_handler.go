package progress

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// SimpleHandler renders events as flat bracketed-tag lines, with a
// short summary printed once the scan completes.
type SimpleHandler struct {
	writer    io.Writer
	timings   []TimingEntry
	rules     []RuleEntry
	scanStart time.Time
}

func NewSimpleHandler(writer io.Writer) *SimpleHandler {
	return &SimpleHandler{writer: writer}
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case EventScanStart:
		h.scanStart = time.Now()
		fmt.Fprintf(h.writer, "[SCAN] Starting: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[SCAN] Excluding: %s\n", event.Info)
		}

	case EventScanComplete:
		totalScanTime := time.Since(h.scanStart)
		msPerKFiles := 0.0
		if event.FileCount > 0 {
			msPerKFiles = (event.Duration.Seconds() * 1000) / (float64(event.FileCount) / 1000)
		}
		fmt.Fprintf(h.writer, "[SCAN] Completed: %d files, %d directories in %.1fs (%.1fms per 1000 files)\n",
			event.FileCount, event.DirCount, event.Duration.Seconds(), msPerKFiles)
		h.printConciseTimingSummary(totalScanTime)
		h.printConciseRuleSummary()

	case EventEnterDirectory:
		fmt.Fprintf(h.writer, "[DIR]  Entering: %s\n", event.Path)

	case EventLeaveDirectory:
		if event.Duration > 0 {
			h.timings = append(h.timings, TimingEntry{Path: event.Path, Duration: event.Duration})
			seconds := event.Duration.Seconds()
			fmt.Fprintf(h.writer, "[TIME] %s: %s %.2fs\n", event.Path, getTimingIcon(seconds), seconds)
		}

	case EventFileProcessingStart:
		fmt.Fprintf(h.writer, "[FILE] Counting: %s (%s)\n", event.Path, event.Language)

	case EventFileProcessingEnd:
		// No per-file output; timing rolls up into the directory summary.

	case EventSkipped:
		fmt.Fprintf(h.writer, "[SKIP] Excluding: %s (%s)\n", event.Path, event.Reason)

	case EventProgress:
		fmt.Fprintf(h.writer, "[PROG] Progress: %d files, %d directories\n", event.FileCount, event.DirCount)

	case EventScanInitializing:
		fmt.Fprintf(h.writer, "[INIT] Initializing scan: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[INIT] Excluding: %s\n", event.Info)
		}

	case EventFileWriting:
		fmt.Fprintf(h.writer, "[OUT]  Writing results to: %s\n", event.Path)

	case EventFileWritten:
		fmt.Fprintf(h.writer, "[OUT]  Results written: %s\n", event.Path)

	case EventInfo:
		fmt.Fprintf(h.writer, "[INFO] %s\n", event.Info)

	case EventGitIgnoreEnter, EventGitIgnoreLeave:
		fmt.Fprintf(h.writer, "[GIT]  %s\n", event.Info)

	case EventRuleCheck:
		fmt.Fprintf(h.writer, "[RULE] Validating: %s\n", event.Name)
		for _, detail := range event.Details {
			fmt.Fprintf(h.writer, "       %s\n", detail)
		}

	case EventRuleResult:
		h.rules = append(h.rules, RuleEntry{Name: event.Name, Reason: event.Reason, Path: event.Path, Matched: event.Matched})
		if event.Path != "" {
			fmt.Fprintf(h.writer, "[RULE] ✓ loaded: %s - %s (in %s)\n", event.Name, event.Reason, event.Path)
		} else {
			fmt.Fprintf(h.writer, "[RULE] ✓ loaded: %s - %s\n", event.Name, event.Reason)
		}
	}
}

func (h *SimpleHandler) printConciseTimingSummary(totalScanTime time.Duration) {
	if len(h.timings) == 0 {
		return
	}

	var totalDirTime time.Duration
	slowCount := 0
	var slowest TimingEntry
	for _, timing := range h.timings {
		totalDirTime += timing.Duration
		if timing.Duration.Seconds() >= 10.0 {
			slowCount++
		}
		if timing.Duration > slowest.Duration {
			slowest = timing
		}
	}
	avgTime := totalDirTime.Seconds() / float64(len(h.timings))

	fmt.Fprintf(h.writer, "\nTIMING SUMMARY\n")
	fmt.Fprintf(h.writer, "  directories: %d\n", len(h.timings))
	fmt.Fprintf(h.writer, "  average: %.3fs\n", avgTime)
	if slowCount > 0 {
		fmt.Fprintf(h.writer, "  slow (>=10s): %d\n", slowCount)
	}
	if slowest.Duration > 0 {
		displayPath := slowest.Path
		if len(displayPath) > 50 {
			parts := strings.Split(displayPath, "/")
			if len(parts) > 2 {
				displayPath = ".../" + strings.Join(parts[len(parts)-2:], "/")
			}
		}
		fmt.Fprintf(h.writer, "  slowest: %s (%.2fs)\n", displayPath, slowest.Duration.Seconds())
	}
	fmt.Fprintln(h.writer)
}

func (h *SimpleHandler) printConciseRuleSummary() {
	if len(h.rules) == 0 {
		return
	}
	fmt.Fprintf(h.writer, "\nCUSTOM RULES SUMMARY\n")
	fmt.Fprintf(h.writer, "  loaded: %d\n", len(h.rules))
	fmt.Fprintln(h.writer)
}
