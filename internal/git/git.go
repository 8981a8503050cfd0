// Package git looks up the VCS identity (branch, commit, sanitized
// remote) of a scanned tree, for inclusion in report headers.
package git

import (
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
)

// Info is the VCS identity of a repository.
type Info struct {
	Branch    string
	Commit    string
	RemoteURL string
}

// Lookup opens the git repository at or above path and returns its
// identity. It returns nil without error when path isn't inside a git
// repository — absence of git info is never fatal to a scan.
func Lookup(path string) *Info {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	info := &Info{}

	head, err := repo.Head()
	if err == nil {
		info.Commit = head.Hash().String()[:7]
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = "HEAD"
		}
	}

	if cfg, err := repo.Config(); err == nil {
		if origin := cfg.Remotes["origin"]; origin != nil && len(origin.URLs) > 0 {
			info.RemoteURL = sanitizeRemoteURL(origin.URLs[0])
		}
	}

	return info
}

// sanitizeRemoteURL strips credentials (userinfo) from a remote URL so
// tokens and passwords never leak into report output.
func sanitizeRemoteURL(rawURL string) string {
	if strings.HasPrefix(rawURL, "git@") {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.User = nil
	return parsed.String()
}
