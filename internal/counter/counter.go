// Package counter opens a single file, rejects binaries, and drives
// internal/classify line by line to produce a model.FileStats value.
package counter

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/loclens/loclens/internal/classify"
	"github.com/loclens/loclens/internal/lang"
	"github.com/loclens/loclens/internal/model"
)

const binarySniffSize = 8 * 1024

// Count opens path, classifies every physical line against rs, and
// returns the resulting stats. A file judged binary returns a
// zero-count stat, never an error — the binary heuristic is
// deliberately lenient per the error handling design.
func Count(path string, rs *lang.Ruleset) (model.FileStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.FileStats{}, err
	}
	defer f.Close()

	binary, err := isBinary(f)
	if err != nil {
		return model.FileStats{}, err
	}
	if binary {
		return model.FileStats{Path: path, Language: rs.Name}, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return model.FileStats{}, err
	}

	stats := model.FileStats{Path: path, Language: rs.Name}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024*16)

	fastPath := !rs.HasComments()
	state := classify.State{}

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			if state.Kind == classify.BlockComment {
				stats.Comments++
			} else {
				stats.Blanks++
			}
			continue
		}

		if fastPath {
			stats.Code++
			continue
		}

		var kind classify.Kind
		state, kind = classify.Classify(line, state, rs)
		switch kind {
		case classify.KindCode, classify.KindMixed:
			stats.Code++
		case classify.KindComment:
			stats.Comments++
		case classify.KindBlank:
			stats.Blanks++
		}
	}
	// per-line read errors are skipped, not fatal; bufio.Scanner
	// surfaces them via Err() only after Scan() returns false, and the
	// design calls for counting whatever was already read rather than
	// discarding it
	_ = scanner.Err()

	return stats, nil
}

// isBinary reads up to binarySniffSize bytes and applies the NUL-byte
// density heuristic: more than max(1, bytesRead/10) NUL bytes marks
// the file as binary.
func isBinary(f *os.File) (bool, error) {
	buf := make([]byte, binarySniffSize)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	if n == 0 {
		return false, nil
	}
	nulCount := bytes.Count(buf[:n], []byte{0})
	threshold := n / 10
	if threshold < 1 {
		threshold = 1
	}
	return nulCount > threshold, nil
}

// ContentHash reads the whole file and returns a fast, non-cryptographic
// hash used only for run-scoped deduplication.
func ContentHash(path string) (uint64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(content), nil
}
