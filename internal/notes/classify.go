package notes

import (
	"fmt"
	"strings"

	"github.com/inchworksinc/release-notes/internal/git"
)

// skipMarker excludes a commit from classification entirely.
const skipMarker = "[skip ci]"

// defectToken marks a commit subject as a defect fix.
const defectToken = "defect"

// Rule selects how a commit subject is tested for the defect token.
type Rule int

const (
	// MatchSubstring treats a subject containing the token anywhere as a defect.
	MatchSubstring Rule = iota
	// MatchPrefix treats only subjects starting with the token as defects.
	MatchPrefix
)

// ParseRule converts a configuration string into a Rule.
func ParseRule(s string) (Rule, error) {
	switch strings.ToLower(s) {
	case "substring":
		return MatchSubstring, nil
	case "prefix":
		return MatchPrefix, nil
	default:
		return 0, fmt.Errorf("unknown classification rule %q (want substring or prefix)", s)
	}
}

// ClassifiedCommit is one commit with its resolved source branch.
type ClassifiedCommit struct {
	Description string `json:"description"`
	Branch      string `json:"branch"`
	Author      string `json:"author"`
}

// Classifier partitions commits into stories and defects.
type Classifier struct {
	Rule     Rule
	Resolver *BranchResolver
}

// Classify buckets every commit into exactly one of stories or defects,
// preserving input order. Commits carrying the skip marker are dropped.
func (c *Classifier) Classify(commits []git.Commit) (stories, defects []ClassifiedCommit, err error) {
	stories = []ClassifiedCommit{}
	defects = []ClassifiedCommit{}

	for _, commit := range commits {
		if strings.Contains(strings.ToLower(commit.Subject), skipMarker) {
			continue
		}

		branch, err := c.Resolver.Resolve(commit.Hash)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to resolve branch for %s: %w", commit.ShortHash(), err)
		}

		classified := ClassifiedCommit{
			Description: commit.Subject,
			Branch:      branch,
			Author:      commit.Author,
		}

		if c.isDefect(commit.Subject) {
			defects = append(defects, classified)
		} else {
			stories = append(stories, classified)
		}
	}

	return stories, defects, nil
}

func (c *Classifier) isDefect(subject string) bool {
	subject = strings.ToLower(subject)
	if c.Rule == MatchPrefix {
		return strings.HasPrefix(subject, defectToken)
	}
	return strings.Contains(subject, defectToken)
}

// BranchResolver maps a commit to the branch it came from. PR association
// wins over branch containment, then the mainline, then the development
// branch, then the first remote branch containing the commit.
type BranchResolver struct {
	Git         GitClient
	Forge       ForgeClient
	Remote      string // remote prefix to strip from branch names
	Mainline    string // e.g. "main"
	Development string // e.g. "develop"
}

// Resolve returns the source branch for a commit, or "unknown" when no
// remote branch contains it.
func (r *BranchResolver) Resolve(hash string) (string, error) {
	branch, found, err := r.Forge.PRHeadBranch(hash)
	if err != nil {
		return "", err
	}
	if found {
		return branch, nil
	}

	branches, err := r.Git.RemoteBranchesContaining(hash)
	if err != nil {
		return "", err
	}

	for _, candidate := range []string{r.Mainline, r.Development} {
		if r.contains(branches, candidate) {
			return candidate, nil
		}
	}

	if len(branches) > 0 {
		return r.stripRemote(branches[0]), nil
	}
	return "unknown", nil
}

func (r *BranchResolver) contains(branches []string, name string) bool {
	for _, branch := range branches {
		if r.stripRemote(branch) == name {
			return true
		}
	}
	return false
}

func (r *BranchResolver) stripRemote(branch string) string {
	return strings.TrimPrefix(branch, r.Remote+"/")
}
