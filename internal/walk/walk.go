// Package walk discovers candidate file paths from a set of roots:
// by filesystem traversal (honoring ignore files and a directory
// denylist), by VCS enumeration (shelling out to git), or by reading
// a list file. It never resolves a language or applies content/regex
// filters — that is internal/filter's job.
package walk

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/progress"
)

// VCSMode selects how the walker enumerates files.
type VCSMode int

const (
	// VCSAuto tries git enumeration and falls back to a filesystem
	// walk on any failure.
	VCSAuto VCSMode = iota
	// VCSGit requires git enumeration; a failure is fatal.
	VCSGit
	// VCSNone always performs a filesystem walk.
	VCSNone
)

// defaultExcludeDirs mirrors the reference walker's built-in
// directory denylist.
var defaultExcludeDirs = []string{
	".git", "node_modules", "target", "vendor", "dist", "build",
	"__pycache__", ".svn", ".hg", ".tox", ".eggs",
	"venv", ".venv", "env", ".env",
}

// Config configures one discovery run. It is immutable once Walk
// begins.
type Config struct {
	Roots              []string
	VCS                VCSMode
	RecurseSubmodules  bool
	ListFile           string // non-empty selects list-file mode, ignoring Roots/VCS
	Hidden             bool   // include dotfiles/dotdirs when true
	FollowSymlinks     bool
	MaxDepth           int // 0 means unlimited
	ExtraExcludeDirs   []string
	NoDefaultExcludes  bool
	RespectGitignore   bool
	Logger             *slog.Logger
	Progress           *progress.Progress
}

func (c Config) log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (c Config) prog() *progress.Progress {
	if c.Progress != nil {
		return c.Progress
	}
	return progress.New(false, progress.NewNullHandler())
}

func (c Config) excludeDirSet() map[string]struct{} {
	set := map[string]struct{}{}
	if !c.NoDefaultExcludes {
		for _, d := range defaultExcludeDirs {
			set[d] = struct{}{}
		}
	}
	for _, d := range c.ExtraExcludeDirs {
		set[d] = struct{}{}
	}
	return set
}

// Walk dispatches to list-file, VCS, or filesystem discovery per cfg
// and returns every candidate path found.
func Walk(cfg Config) ([]string, error) {
	if cfg.ListFile != "" {
		return walkListFile(cfg.ListFile)
	}

	if cfg.VCS == VCSGit || cfg.VCS == VCSAuto {
		paths, err := walkGit(cfg)
		if err == nil {
			return paths, nil
		}
		if cfg.VCS == VCSGit {
			return nil, model.NewIOError("git ls-files", err)
		}
		cfg.log().Debug("git enumeration failed, falling back to filesystem walk", "error", err)
	}

	return walkFilesystem(cfg)
}

// walkListFile treats each non-blank line of path as a candidate.
func walkListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewIOError(path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, model.NewIOError(path, err)
	}
	return out, nil
}

// walkGit enumerates tracked and untracked-but-not-ignored files via
// `git ls-files --cached --others --exclude-standard`, run once per
// root. Any non-zero exit or exec failure is returned as an error so
// the caller can fall back.
func walkGit(cfg Config) ([]string, error) {
	var out []string
	for _, root := range cfg.Roots {
		args := []string{"ls-files", "--cached", "--others", "--exclude-standard"}
		if cfg.RecurseSubmodules {
			args = append(args, "--recurse-submodules")
		}
		cmd := exec.Command("git", args...)
		cmd.Dir = root
		stdout, err := cmd.Output()
		if err != nil {
			return nil, fmt.Errorf("git ls-files in %s: %w", root, err)
		}
		for _, line := range strings.Split(string(stdout), "\n") {
			if line == "" {
				continue
			}
			out = append(out, filepath.Join(root, line))
		}
	}
	if len(out) == 0 {
		return nil, errors.New("git ls-files returned no entries")
	}
	return out, nil
}

// walkFilesystem recursively descends each root, honoring the
// directory denylist, hidden-file policy, ignore-file stack, symlink
// policy, and max depth.
func walkFilesystem(cfg Config) ([]string, error) {
	excludeDirs := cfg.excludeDirSet()
	var out []string

	for _, root := range cfg.Roots {
		stack := newIgnoreStack()
		if cfg.RespectGitignore {
			if home, err := os.UserHomeDir(); err == nil {
				global := filepath.Join(home, ".config", "loclens", "ignore")
				if patterns, err := loadIgnoreFile(global); err == nil && len(patterns) > 0 {
					stack.sets = append(stack.sets, patternSet{dir: root, patterns: patterns})
				}
			}
			stack.pushDir(root)
			cfg.prog().GitIgnoreEnter(root)
		}

		err := walkDir(root, root, 0, cfg, excludeDirs, stack, &out)
		if err != nil {
			return nil, model.NewIOError(root, err)
		}
	}
	return out, nil
}

func walkDir(root, dir string, depth int, cfg Config, excludeDirs map[string]struct{}, stack *ignoreStack, out *[]string) error {
	if cfg.MaxDepth > 0 && depth > cfg.MaxDepth {
		return nil
	}

	cfg.prog().EnterDirectory(dir)
	defer cfg.prog().LeaveDirectory(dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		name := entry.Name()
		full := filepath.Join(dir, name)

		if !cfg.Hidden && strings.HasPrefix(name, ".") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&os.ModeSymlink != 0 {
			if !cfg.FollowSymlinks {
				continue
			}
			resolved, err := filepath.EvalSymlinks(full)
			if err != nil {
				continue
			}
			full = resolved
			info, err = os.Stat(full)
			if err != nil {
				continue
			}
		}

		if cfg.RespectGitignore && stack.matches(full, info.IsDir()) {
			cfg.prog().Skipped(full, "gitignore")
			continue
		}

		if info.IsDir() {
			if _, excluded := excludeDirs[name]; excluded {
				cfg.prog().Skipped(full, "excluded directory")
				continue
			}
			childStack := stack
			if cfg.RespectGitignore {
				childStack = stack.child()
				childStack.pushDir(full)
				cfg.prog().GitIgnoreEnter(full)
			}
			if err := walkDir(root, full, depth+1, cfg, excludeDirs, childStack, out); err != nil {
				return err
			}
			continue
		}

		*out = append(*out, full)
	}
	return nil
}
