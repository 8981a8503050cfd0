// Package filter applies the size/extension/regex/content predicate
// pipeline to discovered paths and resolves each survivor to a
// language via internal/lang.
package filter

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/loclens/loclens/internal/lang"
)

// Options configures the predicate pipeline. A nil/empty field
// disables that predicate. Regexes are compiled once by the caller
// and reused across every candidate.
type Options struct {
	MaxSizeBytes int64

	IncludeExt map[string]struct{} // lowercase, no dot
	ExcludeExt map[string]struct{}

	MatchFile    *regexp.Regexp
	NotMatchFile []*regexp.Regexp
	FullPath     bool

	MatchDir    *regexp.Regexp
	NotMatchDir *regexp.Regexp

	IncludeContent *regexp.Regexp
	ExcludeContent *regexp.Regexp

	ForcedLanguage map[string]string // lowercase extension (no dot) -> language name, user override

	IncludeLang map[string]struct{} // lowercase language name
	ExcludeLang map[string]struct{}

	SkipGenerated bool
}

// Resolved is one path paired with its resolved ruleset.
type Resolved struct {
	Path    string
	Ruleset *lang.Ruleset
}

// Apply runs the full §4.5 pipeline over candidates and returns the
// survivors paired with their resolved language.
func Apply(candidates []string, opts Options, reg *lang.Registry) []Resolved {
	out := make([]Resolved, 0, len(candidates))
	for _, path := range candidates {
		rs, ok := resolveOne(path, opts, reg)
		if !ok {
			continue
		}
		out = append(out, Resolved{Path: path, Ruleset: rs})
	}
	return out
}

func resolveOne(path string, opts Options, reg *lang.Registry) (*lang.Ruleset, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	if !sizeOK(path, opts.MaxSizeBytes) {
		return nil, false
	}
	if !extensionOK(ext, opts) {
		return nil, false
	}
	if !fileNameOK(path, opts) {
		return nil, false
	}
	if !dirOK(path, opts) {
		return nil, false
	}

	var content []byte
	needsContent := opts.IncludeContent != nil || opts.ExcludeContent != nil || opts.SkipGenerated
	if needsContent {
		c, err := os.ReadFile(path)
		if err != nil {
			return nil, false
		}
		content = c
	}
	if opts.IncludeContent != nil && !opts.IncludeContent.Match(content) {
		return nil, false
	}
	if opts.ExcludeContent != nil && opts.ExcludeContent.Match(content) {
		return nil, false
	}
	if opts.SkipGenerated && enry.IsGenerated(path, content) {
		return nil, false
	}

	rs, ok := resolveLanguage(path, ext, opts, reg)
	if !ok {
		return nil, false
	}
	if !languageOK(rs.Name, opts) {
		return nil, false
	}
	return rs, true
}

func sizeOK(path string, maxSize int64) bool {
	if maxSize <= 0 {
		return true
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Size() <= maxSize
}

func extensionOK(ext string, opts Options) bool {
	if len(opts.IncludeExt) > 0 {
		if ext == "" {
			return false
		}
		if _, ok := opts.IncludeExt[ext]; !ok {
			return false
		}
	}
	if _, excluded := opts.ExcludeExt[ext]; excluded {
		return false
	}
	return true
}

func fileNameOK(path string, opts Options) bool {
	target := filepath.Base(path)
	if opts.FullPath {
		target = path
	}
	if opts.MatchFile != nil && !opts.MatchFile.MatchString(target) {
		return false
	}
	for _, re := range opts.NotMatchFile {
		if re.MatchString(target) {
			return false
		}
	}
	return true
}

func dirOK(path string, opts Options) bool {
	parent := filepath.Dir(path)
	if opts.MatchDir != nil && !opts.MatchDir.MatchString(parent) {
		return false
	}
	if opts.NotMatchDir != nil {
		if opts.NotMatchDir.MatchString(filepath.Base(parent)) || opts.NotMatchDir.MatchString(parent) {
			return false
		}
	}
	return true
}

func resolveLanguage(path, ext string, opts Options, reg *lang.Registry) (*lang.Ruleset, bool) {
	if name, ok := opts.ForcedLanguage[ext]; ok {
		return reg.GetCI(name)
	}
	return reg.Detect(path)
}

func languageOK(name string, opts Options) bool {
	lower := strings.ToLower(name)
	if len(opts.IncludeLang) > 0 {
		if _, ok := opts.IncludeLang[lower]; !ok {
			return false
		}
	}
	if _, excluded := opts.ExcludeLang[lower]; excluded {
		return false
	}
	return true
}
