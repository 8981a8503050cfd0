package lang

// ruleDef is the YAML decode shape for one language entry, shared by
// builtin.yaml and by user-supplied custom-rules files (internal/rules
// validates a document of this same shape against the embedded JSON
// schema before handing it back here to merge).
type ruleDef struct {
	Name              string   `yaml:"name" json:"name"`
	Extensions        []string `yaml:"extensions" json:"extensions"`
	Filenames         []string `yaml:"filenames,omitempty" json:"filenames,omitempty"`
	LineComments      []string `yaml:"line_comments,omitempty" json:"line_comments,omitempty"`
	BlockCommentStart string   `yaml:"block_comment_start,omitempty" json:"block_comment_start,omitempty"`
	BlockCommentEnd   string   `yaml:"block_comment_end,omitempty" json:"block_comment_end,omitempty"`
	Nested            bool     `yaml:"nested_comments,omitempty" json:"nested_comments,omitempty"`
	StringDelimiters  []string `yaml:"string_delimiters,omitempty" json:"string_delimiters,omitempty"`
	RawStringStart    string   `yaml:"raw_string_start,omitempty" json:"raw_string_start,omitempty"`
	RawStringEnd      string   `yaml:"raw_string_end,omitempty" json:"raw_string_end,omitempty"`
}

// toRuleset applies the §4.8 defaults (nested=false, string delimiters
// default to {", '}) and converts to the immutable Ruleset.
func (d ruleDef) toRuleset() Ruleset {
	delims := d.StringDelimiters
	if delims == nil {
		delims = []string{"\"", "'"}
	}
	return Ruleset{
		Name:              d.Name,
		LineComments:      d.LineComments,
		BlockCommentStart: d.BlockCommentStart,
		BlockCommentEnd:   d.BlockCommentEnd,
		Nested:            d.Nested,
		StringDelimiters:  delims,
		RawStringStart:    d.RawStringStart,
		RawStringEnd:      d.RawStringEnd,
	}
}

// document is the top-level shape of builtin.yaml and of a
// user-supplied custom-rules file: a list of language entries.
type document struct {
	Languages []ruleDef `yaml:"languages" json:"languages"`
}
