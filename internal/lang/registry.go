package lang

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// Registry is the process-wide language table. It is built once from
// the embedded built-in document and may be augmented exactly once by
// a user-supplied custom-rules document before any walk begins; it is
// read-only for every reader thereafter.
type Registry struct {
	mu         sync.RWMutex
	byName     map[string]*Ruleset
	byExt      map[string]string // lowercase extension (no dot) -> language name, builtin table
	userExt    map[string]string // lowercase extension (no dot) -> language name, from Import
	byFilename map[string]string // lowercase full basename -> language name
	imported   bool
}

// New builds a registry from the embedded built-in table.
func New() (*Registry, error) {
	r := &Registry{
		byName:     map[string]*Ruleset{},
		byExt:      map[string]string{},
		userExt:    map[string]string{},
		byFilename: map[string]string{},
	}
	var doc document
	if err := yaml.Unmarshal(builtinYAML, &doc); err != nil {
		return nil, fmt.Errorf("lang: decode builtin table: %w", err)
	}
	if err := r.merge(doc, false); err != nil {
		return nil, fmt.Errorf("lang: builtin table: %w", err)
	}
	return r, nil
}

// merge adds every entry of doc to the registry. isUser distinguishes
// a one-shot custom-rules Import from the builtin bootstrap: user
// extension mappings are kept in a separate table so Detect can give
// them §4.1 rule-1 precedence over both the builtin extension map and
// the filename map, and a duplicate language name is only tolerated
// coming from a user import (where it means "override"), never within
// the builtin table itself.
func (r *Registry) merge(doc document, isUser bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range doc.Languages {
		rs := d.toRuleset()
		if err := rs.validate(); err != nil {
			return err
		}
		if _, exists := r.byName[rs.Name]; exists && !isUser {
			return fmt.Errorf("duplicate language name %q", rs.Name)
		}
		stored := rs
		r.byName[rs.Name] = &stored

		for _, ext := range d.Extensions {
			key := strings.ToLower(strings.TrimPrefix(ext, "."))
			if isUser {
				r.userExt[key] = rs.Name
			} else {
				r.byExt[key] = rs.Name
			}
		}
		for _, fn := range d.Filenames {
			r.byFilename[strings.ToLower(fn)] = rs.Name
		}
	}
	return nil
}

// Import merges a user-supplied custom-rules document (already
// schema-validated by the caller) into the registry. It may be called
// at most once per registry; a second call is rejected per §4.8.
func (r *Registry) Import(raw []byte) error {
	r.mu.Lock()
	if r.imported {
		r.mu.Unlock()
		return fmt.Errorf("lang: custom rules already imported")
	}
	r.imported = true
	r.mu.Unlock()

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("lang: decode custom rules: %w", err)
	}
	return r.merge(doc, true)
}

// Get returns the named ruleset (case-sensitive; callers doing
// case-insensitive lookups should use GetCI).
func (r *Registry) Get(name string) (*Ruleset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rs, ok := r.byName[name]
	return rs, ok
}

// GetCI resolves a language name case-insensitively, as required for
// the forced-language and include/exclude language options.
func (r *Registry) GetCI(name string) (*Ruleset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	target := strings.ToLower(name)
	for n, rs := range r.byName {
		if strings.ToLower(n) == target {
			return rs, true
		}
	}
	return nil, false
}

// Detect resolves a path to a ruleset following the §4.1 precedence:
// (1) a user-defined extension mapping, (2) the full-basename
// mapping, (3) the double-suffix rule, (4) the builtin extension
// mapping, (5) nothing. Forced mappings (an explicit extension ->
// language override supplied by the caller) are applied by
// internal/filter before falling back to Detect.
func (r *Registry) Detect(path string) (*Ruleset, bool) {
	base := filepath.Base(path)
	lowerBase := strings.ToLower(base)
	ext := strings.ToLower(extensionOf(base))

	r.mu.RLock()
	defer r.mu.RUnlock()

	if ext != "" {
		if name, ok := r.userExt[ext]; ok {
			return r.byName[name], true
		}
	}

	if name, ok := r.byFilename[lowerBase]; ok {
		return r.byName[name], true
	}

	if name, ok := doubleSuffix(lowerBase); ok {
		if rs, ok := r.byName[name]; ok {
			return rs, true
		}
	}

	if ext == "" {
		return nil, false
	}
	if name, ok := r.byExt[ext]; ok {
		return r.byName[name], true
	}
	return nil, false
}

// doubleSuffix implements the lowercase double-suffix rule for
// generated C# files: *.g.cs and *.designer.cs map to "C# Generated".
func doubleSuffix(lowerBase string) (string, bool) {
	for _, suffix := range []string{".g.cs", ".designer.cs"} {
		if strings.HasSuffix(lowerBase, suffix) {
			return "C# Generated", true
		}
	}
	return "", false
}

// extensionOf returns the extension without its leading dot, or ""
// for an extensionless basename such as "Makefile".
func extensionOf(base string) string {
	ext := filepath.Ext(base)
	return strings.TrimPrefix(ext, ".")
}

// Languages returns every registered language name.
func (r *Registry) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.byName))
	for name := range r.byName {
		out = append(out, name)
	}
	return out
}

// Extensions returns every registered extension (without leading
// dot), builtin and user-imported alike.
func (r *Registry) Extensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{}, len(r.byExt)+len(r.userExt))
	out := make([]string, 0, len(r.byExt)+len(r.userExt))
	for ext := range r.userExt {
		if _, ok := seen[ext]; !ok {
			seen[ext] = struct{}{}
			out = append(out, ext)
		}
	}
	for ext := range r.byExt {
		if _, ok := seen[ext]; !ok {
			seen[ext] = struct{}{}
			out = append(out, ext)
		}
	}
	return out
}
