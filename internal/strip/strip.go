// Package strip rewrites a source file with comment-only lines
// removed, reusing internal/classify to decide what to drop.
package strip

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/loclens/loclens/internal/classify"
	"github.com/loclens/loclens/internal/lang"
)

// Strip reads every line of r, drops lines the classifier marks pure
// Comment, and writes the rest verbatim to w. A Mixed line (code with
// a trailing comment) is kept unmodified: the classifier reports a
// line's kind, not the byte offset the comment starts at, so trimming
// just the trailing comment would need a larger contract change than
// this subcommand warrants.
func Strip(w io.Writer, r io.Reader, rs *lang.Ruleset) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024*16)

	state := classify.State{}
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if state.Kind != classify.BlockComment {
				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}
			continue
		}

		var kind classify.Kind
		state, kind = classify.Classify(line, state, rs)
		if kind == classify.KindComment {
			continue
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}
