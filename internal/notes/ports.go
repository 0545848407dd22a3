package notes

import (
	"github.com/inchworksinc/release-notes/internal/gh"
	"github.com/inchworksinc/release-notes/internal/git"
)

// GitClient defines the git queries the pipeline needs
type GitClient interface {
	Head() (string, error)
	RootCommit() (string, error)
	CommitsInRange(start, end string) ([]git.Commit, error)
	RecentCommits(n int, ref string) ([]git.Commit, error)
	RemoteBranchesContaining(hash string) ([]string, error)
	RemoteName() (string, error)
}

// ForgeClient defines the hosting-API operations the pipeline needs
type ForgeClient interface {
	LastSuccessfulRunHead(workflow, branch string) (string, bool, error)
	LatestReleaseTag(stableOnly bool) (string, bool, error)
	ReleaseTags(limit int, stableOnly bool) ([]string, error)
	PRHeadBranch(hash string) (string, bool, error)
	CreateRelease(spec gh.ReleaseSpec) error
	UpdateRelease(spec gh.ReleaseSpec) error
	UploadAsset(tag, path string) error
	DownloadAsset(tag, name, dir string) error
}
