package gh

// ReleaseSpec defines all parameters for creating or updating a release
type ReleaseSpec struct {
	Tag        string // release tag, also used as the release title
	Target     string // branch the release tag points at
	Notes      string // release description body
	Prerelease bool   // whether the release is marked as a prerelease
}

// runJSON is the shape of one entry from `gh run list --json`
type runJSON struct {
	HeadSha string `json:"headSha"`
}

// releaseJSON is the shape of one entry from `gh release list --json`
type releaseJSON struct {
	TagName      string `json:"tagName"`
	IsDraft      bool   `json:"isDraft"`
	IsPrerelease bool   `json:"isPrerelease"`
}
