package cmdline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/loclens/loclens/internal/archive"
	"github.com/loclens/loclens/internal/config"
	"github.com/loclens/loclens/internal/filter"
	"github.com/loclens/loclens/internal/git"
	"github.com/loclens/loclens/internal/lang"
	"github.com/loclens/loclens/internal/model"
	"github.com/loclens/loclens/internal/output"
	"github.com/loclens/loclens/internal/pipeline"
	"github.com/loclens/loclens/internal/progress"
	"github.com/loclens/loclens/internal/rules"
	"github.com/loclens/loclens/internal/walk"
)

var countFlags struct {
	format         string
	byFile         bool
	threads        int
	rulesFile      string
	vcs            string
	hidden         bool
	followSymlinks bool
	maxDepth       int
	maxSize        int64
	noDedup        bool
	includeExt     []string
	excludeExt     []string
	includeLang    []string
	excludeLang    []string
	matchFile      string
	notMatchFile   []string
	matchDir       string
	notMatchDir    string
	includeContent string
	excludeContent string
	fullPath       bool
	skipGenerated  bool
	listFile       string
	logLevel       string
	verbose        bool
	verboseTree    bool
	exclude        []string
}

var countCmd = &cobra.Command{
	Use:   "count [paths...]",
	Short: "Count lines of code by language",
	Args:  cobra.ArbitraryArgs,
	RunE:  runCount,
}

func init() {
	f := countCmd.Flags()
	f.StringVar(&countFlags.format, "format", "table", "output format: table, json, csv, yaml, markdown, sql, xml")
	f.BoolVar(&countFlags.byFile, "by-file", false, "render per-file instead of per-language")
	f.IntVar(&countFlags.threads, "threads", 0, "worker pool size, 0 = auto")
	f.StringVar(&countFlags.rulesFile, "rules", "", "path to a custom language-rules YAML file")
	f.StringVar(&countFlags.vcs, "vcs", "auto", "discovery mode: auto, git, none")
	f.BoolVar(&countFlags.hidden, "hidden", false, "include dotfiles and dotdirs")
	f.BoolVar(&countFlags.followSymlinks, "follow-symlinks", false, "follow symlinks during filesystem discovery")
	f.IntVar(&countFlags.maxDepth, "max-depth", 0, "maximum directory depth, 0 = unlimited")
	f.Int64Var(&countFlags.maxSize, "max-size", 0, "skip files larger than this many bytes, 0 = unlimited")
	f.BoolVar(&countFlags.noDedup, "no-dedup", false, "disable content-hash deduplication")
	f.StringSliceVar(&countFlags.includeExt, "include-ext", nil, "only include these extensions")
	f.StringSliceVar(&countFlags.excludeExt, "exclude-ext", nil, "exclude these extensions")
	f.StringSliceVar(&countFlags.includeLang, "include-lang", nil, "only include these languages")
	f.StringSliceVar(&countFlags.excludeLang, "exclude-lang", nil, "exclude these languages")
	f.StringVar(&countFlags.matchFile, "match-file", "", "file name must match this regex")
	f.StringSliceVar(&countFlags.notMatchFile, "not-match-file", nil, "file name must not match these regexes")
	f.StringVar(&countFlags.matchDir, "match-dir", "", "parent directory must match this regex")
	f.StringVar(&countFlags.notMatchDir, "not-match-dir", "", "parent directory must not match this regex")
	f.StringVar(&countFlags.includeContent, "include-content", "", "file content must match this regex")
	f.StringVar(&countFlags.excludeContent, "exclude-content", "", "file content must not match this regex")
	f.BoolVar(&countFlags.fullPath, "fullpath", false, "match --match-file/--not-match-file against the full path")
	f.BoolVar(&countFlags.skipGenerated, "skip-generated", false, "skip files go-enry identifies as generated")
	f.StringVar(&countFlags.listFile, "list-file", "", "read candidate paths from this file instead of walking")
	f.StringVar(&countFlags.logLevel, "log-level", "warn", "debug, info, warn, error")
	f.BoolVar(&countFlags.verbose, "verbose", false, "print a flat trace of directory traversal and skips to stderr")
	f.BoolVar(&countFlags.verboseTree, "verbose-tree", false, "like --verbose but rendered as an indented tree")
	f.StringSliceVar(&countFlags.exclude, "exclude", nil, "additional directory names to exclude from discovery")
}

func runCount(cmd *cobra.Command, args []string) error {
	level, err := parseLogLevel(countFlags.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	roots := args
	if len(roots) == 0 {
		roots = []string{"."}
	}

	var cleanups []func()
	defer func() {
		for _, c := range cleanups {
			c()
		}
	}()

	expandedRoots := make([]string, 0, len(roots))
	for _, r := range roots {
		if archive.IsArchive(r) {
			extracted, cleanup, err := archive.Extract(r)
			if err != nil {
				return err
			}
			cleanups = append(cleanups, cleanup)
			expandedRoots = append(expandedRoots, extracted)
			continue
		}
		expandedRoots = append(expandedRoots, r)
	}

	fileConfig, err := config.Load(".")
	if err != nil {
		return err
	}
	applyFileConfigDefaults(cmd, fileConfig)

	prog := buildProgress(cmd)
	if countFlags.verbose || countFlags.verboseTree {
		prog.EnableRuleTracing()
	}

	reg, err := lang.New()
	if err != nil {
		return err
	}
	if countFlags.rulesFile != "" {
		prog.RuleCheck(countFlags.rulesFile, nil)
		if err := rules.LoadFile(countFlags.rulesFile, reg); err != nil {
			return err
		}
		prog.RuleResult(countFlags.rulesFile, true, "merged into registry")
	}

	vcsMode, err := parseVCSMode(countFlags.vcs)
	if err != nil {
		return err
	}

	walkCfg := walk.Config{
		Roots:            expandedRoots,
		VCS:              vcsMode,
		ListFile:         countFlags.listFile,
		Hidden:           countFlags.hidden,
		FollowSymlinks:   countFlags.followSymlinks,
		MaxDepth:         countFlags.maxDepth,
		RespectGitignore: true,
		ExtraExcludeDirs: fileConfig.MergeExcludes(countFlags.exclude),
		Logger:           logger,
		Progress:         prog,
	}

	prog.ScanStart(expandedRoots, walkCfg.ExtraExcludeDirs)
	candidates, err := walk.Walk(walkCfg)
	if err != nil {
		return err
	}

	opts, err := buildFilterOptions()
	if err != nil {
		return err
	}
	resolved := filter.Apply(candidates, opts, reg)

	summary, err := pipeline.Run(context.Background(), resolved, pipeline.Options{
		Parallelism: countFlags.threads,
		NoDedup:     countFlags.noDedup,
		Logger:      logger,
	})
	if err != nil {
		return err
	}
	prog.ScanComplete(len(summary.Files), 0, time.Duration(summary.ElapsedMS)*time.Millisecond)

	if len(expandedRoots) > 0 {
		if info := git.Lookup(expandedRoots[0]); info != nil {
			summary.Repo = &model.RepoInfo{Branch: info.Branch, Commit: info.Commit, RemoteURL: info.RemoteURL}
		}
	}

	format := output.Format(strings.ToLower(countFlags.format))
	return output.Render(cmd.OutOrStdout(), summary, format, countFlags.byFile)
}

// applyFileConfigDefaults fills any countFlags field the caller left
// at its flag default from the matching .loclens.yml value. A flag
// the user set explicitly on the command line always wins, per
// SPEC_FULL.md §10's "CLI flags always override file config" rule;
// cmd.Flags().Changed is the only reliable way to tell "explicitly
// set to the zero value" apart from "left at the default".
func applyFileConfigDefaults(cmd *cobra.Command, fileConfig *config.RunConfig) {
	f := cmd.Flags()
	if !f.Changed("format") && fileConfig.Format != "" {
		countFlags.format = fileConfig.Format
	}
	if !f.Changed("threads") && fileConfig.Threads != 0 {
		countFlags.threads = fileConfig.Threads
	}
	if !f.Changed("rules") && fileConfig.RulesFile != "" {
		countFlags.rulesFile = fileConfig.RulesFile
	}
	if !f.Changed("skip-generated") && fileConfig.SkipGenerated {
		countFlags.skipGenerated = true
	}
	if !f.Changed("include-ext") && len(fileConfig.IncludeExt) > 0 {
		countFlags.includeExt = fileConfig.IncludeExt
	}
	if !f.Changed("exclude-ext") && len(fileConfig.ExcludeExt) > 0 {
		countFlags.excludeExt = fileConfig.ExcludeExt
	}
}

// buildProgress wires a verbose-mode reporter from --verbose/--verbose-tree.
// Neither flag set means events are discarded, so callers never need a
// nil check before reporting.
func buildProgress(cmd *cobra.Command) *progress.Progress {
	switch {
	case countFlags.verboseTree:
		return progress.New(true, progress.NewTreeHandler(cmd.ErrOrStderr()))
	case countFlags.verbose:
		return progress.New(true, progress.NewSimpleHandler(cmd.ErrOrStderr()))
	default:
		return progress.New(false, progress.NewNullHandler())
	}
}

func parseVCSMode(s string) (walk.VCSMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return walk.VCSAuto, nil
	case "git":
		return walk.VCSGit, nil
	case "none":
		return walk.VCSNone, nil
	default:
		return walk.VCSAuto, fmt.Errorf("invalid --vcs mode: %s", s)
	}
}

func buildFilterOptions() (filter.Options, error) {
	opts := filter.Options{
		MaxSizeBytes:  countFlags.maxSize,
		FullPath:      countFlags.fullPath,
		SkipGenerated: countFlags.skipGenerated,
		IncludeExt:    toLowerSet(countFlags.includeExt),
		ExcludeExt:    toLowerSet(countFlags.excludeExt),
		IncludeLang:   toLowerSet(countFlags.includeLang),
		ExcludeLang:   toLowerSet(countFlags.excludeLang),
	}

	var err error
	if opts.MatchFile, err = compileOptional(countFlags.matchFile); err != nil {
		return opts, err
	}
	for _, pat := range countFlags.notMatchFile {
		re, err := regexp.Compile(pat)
		if err != nil {
			return opts, model.NewInvalidConfig("invalid --not-match-file regex", err)
		}
		opts.NotMatchFile = append(opts.NotMatchFile, re)
	}
	if opts.MatchDir, err = compileOptional(countFlags.matchDir); err != nil {
		return opts, err
	}
	if opts.NotMatchDir, err = compileOptional(countFlags.notMatchDir); err != nil {
		return opts, err
	}
	if opts.IncludeContent, err = compileOptional(countFlags.includeContent); err != nil {
		return opts, err
	}
	if opts.ExcludeContent, err = compileOptional(countFlags.excludeContent); err != nil {
		return opts, err
	}
	return opts, nil
}

func compileOptional(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, model.NewInvalidConfig(fmt.Sprintf("invalid regex %q", pattern), err)
	}
	return re, nil
}

func toLowerSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(items))
	for _, item := range items {
		out[strings.ToLower(strings.TrimPrefix(item, "."))] = struct{}{}
	}
	return out
}
