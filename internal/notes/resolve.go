package notes

import (
	"fmt"

	"github.com/inchworksinc/release-notes/internal/git"
)

// fallbackWindow is the number of commits used when no release tag exists
// to anchor a tag-to-tag range.
const fallbackWindow = 10

// Range bounds the commits one run processes. When Limit is non-zero the
// range is the most recent Limit commits ending at End and Start is empty.
type Range struct {
	Start string
	End   string
	Limit int
}

// Resolver computes commit ranges from workflow and release state.
type Resolver struct {
	Git      GitClient
	Forge    ForgeClient
	Workflow string // workflow name whose last successful run anchors daily ranges
	Mainline string // integration branch the workflow runs on
}

// DailyRange bounds a trunk build: from the head of the last successful
// workflow run on the mainline to the current head. With no prior run the
// range starts at the root commit.
func (r *Resolver) DailyRange() (Range, error) {
	head, err := r.Git.Head()
	if err != nil {
		return Range{}, err
	}

	start, found, err := r.Forge.LastSuccessfulRunHead(r.Workflow, r.Mainline)
	if err != nil {
		return Range{}, fmt.Errorf("failed to resolve last successful run: %w", err)
	}
	if !found {
		if start, err = r.Git.RootCommit(); err != nil {
			return Range{}, err
		}
	}

	return Range{Start: start, End: head}, nil
}

// ReleaseRange bounds a release build: from the latest non-draft release
// tag to the current head, or from the root commit when no release exists.
func (r *Resolver) ReleaseRange() (Range, error) {
	head, err := r.Git.Head()
	if err != nil {
		return Range{}, err
	}

	start, found, err := r.Forge.LatestReleaseTag(false)
	if err != nil {
		return Range{}, fmt.Errorf("failed to resolve latest release: %w", err)
	}
	if !found {
		if start, err = r.Git.RootCommit(); err != nil {
			return Range{}, err
		}
	}

	return Range{Start: start, End: head}, nil
}

// TagRange bounds the commits between the two most recent release tags.
// With a single tag the range runs from the root commit to that tag; with
// no tags it degrades to a fixed window of recent commits ending at head.
func (r *Resolver) TagRange() (Range, error) {
	tags, err := r.Forge.ReleaseTags(2, false)
	if err != nil {
		return Range{}, fmt.Errorf("failed to resolve release tags: %w", err)
	}

	switch len(tags) {
	case 0:
		head, err := r.Git.Head()
		if err != nil {
			return Range{}, err
		}
		return Range{End: head, Limit: fallbackWindow}, nil
	case 1:
		root, err := r.Git.RootCommit()
		if err != nil {
			return Range{}, err
		}
		return Range{Start: root, End: tags[0]}, nil
	default:
		// Tags are listed newest first.
		return Range{Start: tags[1], End: tags[0]}, nil
	}
}

// Commits lists the non-merge commits bounded by the range.
func (r *Resolver) Commits(rng Range) ([]git.Commit, error) {
	if rng.Limit > 0 {
		return r.Git.RecentCommits(rng.Limit, rng.End)
	}
	return r.Git.CommitsInRange(rng.Start, rng.End)
}
