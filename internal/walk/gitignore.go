package walk

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// patternSet holds the compiled (still textual, doublestar compiles
// lazily per Match call) patterns from one .gitignore-equivalent file
// plus whether each is a negation.
type patternSet struct {
	dir      string
	patterns []ignorePattern
}

type ignorePattern struct {
	glob   string
	negate bool
}

// loadIgnoreFile parses one ignore file (.gitignore, .git/info/exclude)
// line by line: blank lines and comments are skipped, trailing slashes
// are stripped, and — unlike the reference loader this was adapted
// from — negation patterns are kept and honored rather than dropped.
func loadIgnoreFile(path string) ([]ignorePattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []ignorePattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		negate := strings.HasPrefix(line, "!")
		if negate {
			line = line[1:]
		}
		line = strings.TrimSuffix(line, "/")
		if line == "" {
			continue
		}
		out = append(out, ignorePattern{glob: line, negate: negate})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ignoreStack is a per-directory stack of pattern sets, pushed on
// descent and never popped explicitly — each recursive call gets its
// own child stack holding a copy of the parent's sets, so siblings
// never see each other's patterns.
type ignoreStack struct {
	sets []patternSet
}

func newIgnoreStack() *ignoreStack {
	return &ignoreStack{}
}

func (s *ignoreStack) child() *ignoreStack {
	sets := make([]patternSet, len(s.sets))
	copy(sets, s.sets)
	return &ignoreStack{sets: sets}
}

// pushDir loads .gitignore and .git/info/exclude (when present) from
// dir and appends them to the stack.
func (s *ignoreStack) pushDir(dir string) {
	if patterns, err := loadIgnoreFile(filepath.Join(dir, ".gitignore")); err == nil && len(patterns) > 0 {
		s.sets = append(s.sets, patternSet{dir: dir, patterns: patterns})
	}
	if patterns, err := loadIgnoreFile(filepath.Join(dir, ".git", "info", "exclude")); err == nil && len(patterns) > 0 {
		s.sets = append(s.sets, patternSet{dir: dir, patterns: patterns})
	}
}

// matches reports whether full should be excluded per the accumulated
// stack, evaluating every pattern in push order so later (more
// specific, deeper-directory) negations can override earlier excludes.
func (s *ignoreStack) matches(full string, isDir bool) bool {
	name := filepath.Base(full)
	excluded := false
	for _, set := range s.sets {
		rel, err := filepath.Rel(set.dir, full)
		if err != nil {
			rel = full
		}
		rel = filepath.ToSlash(rel)
		for _, p := range set.patterns {
			if matchOne(p.glob, rel, name, isDir) {
				excluded = !p.negate
			}
		}
	}
	return excluded
}

func matchOne(glob, rel, name string, isDir bool) bool {
	if ok, err := doublestar.Match(glob, rel); err == nil && ok {
		return true
	}
	if ok, err := doublestar.Match(glob, name); err == nil && ok {
		return true
	}
	if isDir {
		if ok, err := doublestar.Match(glob+"/**", rel); err == nil && ok {
			return true
		}
	}
	return false
}
