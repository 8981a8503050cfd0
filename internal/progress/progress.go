package progress

import (
	"os"
	"strings"
	"time"
)

// Progress is the centralized verbose-mode reporter a scan holds a
// single instance of, gated by enabled so call sites don't need their
// own nil/flag checks.
type Progress struct {
	enabled     bool
	handler     Handler
	withTimings bool
	traceRules  bool
	dirTimings  map[string]time.Time
}

// New returns a Progress that reports to handler when enabled is true.
// A nil handler defaults to a SimpleHandler on stderr.
func New(enabled bool, handler Handler) *Progress {
	if handler == nil {
		handler = NewSimpleHandler(os.Stderr)
	}
	return &Progress{
		enabled:    enabled,
		handler:    handler,
		dirTimings: make(map[string]time.Time),
	}
}

func (p *Progress) EnableTimings()     { p.withTimings = true }
func (p *Progress) EnableRuleTracing() { p.traceRules = true }

func (p *Progress) Report(event Event) {
	if !p.enabled {
		return
	}
	p.handler.Handle(event)
}

func (p *Progress) ScanStart(roots []string, excludePatterns []string) {
	p.Report(Event{
		Type: EventScanStart,
		Path: strings.Join(roots, ", "),
		Info: strings.Join(excludePatterns, ", "),
	})
}

func (p *Progress) ScanComplete(files, dirs int, duration time.Duration) {
	p.Report(Event{Type: EventScanComplete, FileCount: files, DirCount: dirs, Duration: duration})
}

func (p *Progress) EnterDirectory(path string) {
	if p.withTimings {
		p.dirTimings[path] = time.Now()
	}
	p.Report(Event{Type: EventEnterDirectory, Path: path, Timestamp: time.Now()})
}

func (p *Progress) LeaveDirectory(path string) {
	var duration time.Duration
	if p.withTimings {
		if start, ok := p.dirTimings[path]; ok {
			duration = time.Since(start)
			delete(p.dirTimings, path)
		}
	}
	p.Report(Event{Type: EventLeaveDirectory, Path: path, Duration: duration})
}

func (p *Progress) FileProcessingStart(path, language string) {
	p.Report(Event{Type: EventFileProcessingStart, Path: path, Language: language})
}

func (p *Progress) FileProcessingEnd(path string, duration time.Duration) {
	p.Report(Event{Type: EventFileProcessingEnd, Path: path, Duration: duration})
}

func (p *Progress) Skipped(path, reason string) {
	p.Report(Event{Type: EventSkipped, Path: path, Reason: reason})
}

func (p *Progress) ProgressUpdate(files, dirs int) {
	p.Report(Event{Type: EventProgress, FileCount: files, DirCount: dirs})
}

func (p *Progress) ScanInitializing(roots []string, excludePatterns []string) {
	p.Report(Event{
		Type: EventScanInitializing,
		Path: strings.Join(roots, ", "),
		Info: strings.Join(excludePatterns, ", "),
	})
}

func (p *Progress) FileWriting(path string) {
	p.Report(Event{Type: EventFileWriting, Path: path})
}

func (p *Progress) FileWritten(path string) {
	p.Report(Event{Type: EventFileWritten, Path: path})
}

func (p *Progress) Info(message string) {
	p.Report(Event{Type: EventInfo, Info: message})
}

func (p *Progress) GitIgnoreEnter(path string) {
	p.Report(Event{Type: EventGitIgnoreEnter, Path: path, Info: "gitignore patterns active: " + path})
}

func (p *Progress) GitIgnoreLeave(path string) {
	p.Report(Event{Type: EventGitIgnoreLeave, Path: path, Info: "gitignore patterns removed: " + path})
}

// RuleCheck reports that a custom-rules document named name is being
// validated and imported. Only emitted when EnableRuleTracing was
// called, since most runs have no custom rules to trace.
func (p *Progress) RuleCheck(name string, details []string) {
	if !p.traceRules {
		return
	}
	p.Report(Event{Type: EventRuleCheck, Name: name, Details: details})
}

func (p *Progress) RuleResult(name string, matched bool, reason string) {
	if !p.traceRules || !matched {
		return
	}
	p.Report(Event{Type: EventRuleResult, Name: name, Matched: matched, Reason: reason})
}

// NullHandler discards every event. It backs a Progress constructed
// with enabled=false so callers never need a nil check.
type NullHandler struct{}

func NewNullHandler() *NullHandler { return &NullHandler{} }

func (h *NullHandler) Handle(event Event) {}
