// Package rules imports a user-supplied custom-rules YAML document
// and merges it into a language registry, reusing internal/validation
// for the embedded-JSON-Schema check this project's config loading
// always performs before trusting an external document.
package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/loclens/loclens/internal/lang"
	"github.com/loclens/loclens/internal/validation"
)

const schemaName = "language-rules.json"

// ValidationError wraps the schema validation causes with the
// offending filename, the "single error string" shape the
// custom-rules-file contract calls for.
type ValidationError struct {
	File   string
	Causes []string
}

func (e ValidationError) Error() string {
	if len(e.Causes) == 0 {
		return fmt.Sprintf("%s: invalid custom rules", e.File)
	}
	return fmt.Sprintf("%s: %s", e.File, strings.Join(e.Causes, "; "))
}

// LoadFile reads path and imports it into reg. Import enforces the
// single-load guard itself.
func LoadFile(path string, reg *lang.Registry) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rules: read %s: %w", path, err)
	}
	return Load(path, raw, reg)
}

// Load validates raw YAML content (already read, named by path for
// error messages) against the embedded schema and imports it into
// reg.
func Load(path string, raw []byte, reg *lang.Registry) error {
	if err := validation.ValidateYAML(schemaName, raw); err != nil {
		if ve, ok := err.(validation.ValidationError); ok {
			return ValidationError{File: path, Causes: ve.Errors}
		}
		return ValidationError{File: path, Causes: []string{err.Error()}}
	}
	return reg.Import(raw)
}
