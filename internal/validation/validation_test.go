package validation

import (
	"strings"
	"testing"
)

const validLanguageDoc = `
languages:
  - name: Brainfuck
    extensions: [bf]
`

func TestValidateYAMLValidDocument(t *testing.T) {
	if err := ValidateYAML("language-rules.json", []byte(validLanguageDoc)); err != nil {
		t.Fatalf("expected valid document to pass, got: %v", err)
	}
}

func TestValidateYAMLMissingRequiredField(t *testing.T) {
	bad := "languages:\n  - extensions: [bf]\n"
	err := ValidateYAML("language-rules.json", []byte(bad))
	if err == nil {
		t.Fatal("expected validation error for missing name")
	}
	if !strings.Contains(err.Error(), "name") {
		t.Fatalf("expected error to mention 'name', got: %v", err)
	}
}

func TestValidateYAMLRejectsUnknownField(t *testing.T) {
	bad := "languages:\n  - name: X\n    extensions: [x]\n    bogus: true\n"
	err := ValidateYAML("language-rules.json", []byte(bad))
	if err == nil {
		t.Fatal("expected validation error for unknown field")
	}
}

func TestValidateJSONSchemaNotFound(t *testing.T) {
	err := ValidateJSON("nonexistent-schema.json", map[string]interface{}{})
	if err == nil {
		t.Fatal("expected error for nonexistent schema")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Fatalf("expected schema loading error, got: %v", err)
	}
}

func TestListAvailableSchemas(t *testing.T) {
	schemas, err := ListAvailableSchemas()
	if err != nil {
		t.Fatalf("failed to list schemas: %v", err)
	}
	found := false
	for _, s := range schemas {
		if s == "language-rules.json" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected to find language-rules.json in %v", schemas)
	}
}
