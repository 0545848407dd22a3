package gh

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrReleaseExists signals that a release with the requested tag already
// exists. Callers are expected to update the existing release instead.
var ErrReleaseExists = errors.New("release already exists")

// Client provides forge operations via the gh CLI
type Client struct{}

// NewClient creates a new forge client
func NewClient() *Client {
	return &Client{}
}

// LastSuccessfulRunHead returns the head commit of the most recent
// successful run of the named workflow on the given branch. The bool is
// false when no such run exists.
func (c *Client) LastSuccessfulRunHead(workflow, branch string) (string, bool, error) {
	output, err := c.execGH(
		"run", "list",
		"--workflow", workflow,
		"--branch", branch,
		"--status", "success",
		"--limit", "1",
		"--json", "headSha",
	)
	if err != nil {
		return "", false, fmt.Errorf("failed to list workflow runs: %w", err)
	}

	var runs []runJSON
	if err := json.Unmarshal(output, &runs); err != nil {
		return "", false, fmt.Errorf("failed to parse run list: %w", err)
	}

	if len(runs) == 0 || runs[0].HeadSha == "" {
		return "", false, nil
	}
	return runs[0].HeadSha, true, nil
}

// ReleaseTags returns up to limit non-draft release tags, newest first.
// Prereleases are excluded when stableOnly is set.
func (c *Client) ReleaseTags(limit int, stableOnly bool) ([]string, error) {
	args := []string{
		"release", "list",
		"--exclude-drafts",
		"--limit", strconv.Itoa(limit),
		"--json", "tagName,isDraft,isPrerelease",
	}
	if stableOnly {
		args = append(args, "--exclude-pre-releases")
	}

	output, err := c.execGH(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	var releases []releaseJSON
	if err := json.Unmarshal(output, &releases); err != nil {
		return nil, fmt.Errorf("failed to parse release list: %w", err)
	}

	tags := make([]string, 0, len(releases))
	for _, rel := range releases {
		tags = append(tags, rel.TagName)
	}
	return tags, nil
}

// LatestReleaseTag returns the newest non-draft release tag. The bool is
// false when the repository has no matching release.
func (c *Client) LatestReleaseTag(stableOnly bool) (string, bool, error) {
	tags, err := c.ReleaseTags(1, stableOnly)
	if err != nil {
		return "", false, err
	}
	if len(tags) == 0 {
		return "", false, nil
	}
	return tags[0], true, nil
}

// PRHeadBranch returns the head branch of the pull request associated with
// a commit. The bool is false when the commit has no associated PR.
func (c *Client) PRHeadBranch(hash string) (string, bool, error) {
	output, err := c.execGH(
		"api",
		fmt.Sprintf("repos/{owner}/{repo}/commits/%s/pulls", hash),
		"--jq", ".[0].head.ref",
	)
	if err != nil {
		if isNotFoundError(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up PR for %s: %w", hash, err)
	}

	branch := strings.TrimSpace(string(output))
	if branch == "" || branch == "null" {
		return "", false, nil
	}
	return branch, true, nil
}

// CreateRelease creates a release for spec.Tag. Returns ErrReleaseExists
// when the tag already has a release.
func (c *Client) CreateRelease(spec ReleaseSpec) error {
	args := []string{
		"release", "create", spec.Tag,
		"--target", spec.Target,
		"--title", spec.Tag,
		"--notes", spec.Notes,
	}
	if spec.Prerelease {
		args = append(args, "--prerelease")
	}

	if _, err := c.execGH(args...); err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return ErrReleaseExists
		}
		return fmt.Errorf("failed to create release %s: %w", spec.Tag, err)
	}
	return nil
}

// UpdateRelease updates the release for spec.Tag in place.
func (c *Client) UpdateRelease(spec ReleaseSpec) error {
	args := []string{
		"release", "edit", spec.Tag,
		"--target", spec.Target,
		"--notes", spec.Notes,
		fmt.Sprintf("--prerelease=%t", spec.Prerelease),
	}

	if _, err := c.execGH(args...); err != nil {
		return fmt.Errorf("failed to update release %s: %w", spec.Tag, err)
	}
	return nil
}

// UploadAsset attaches a file to the release for tag, replacing any asset
// with the same name.
func (c *Client) UploadAsset(tag, path string) error {
	if _, err := c.execGH("release", "upload", tag, path, "--clobber"); err != nil {
		return fmt.Errorf("failed to upload %s to release %s: %w", path, tag, err)
	}
	return nil
}

// DownloadAsset downloads a named asset from the release for tag into dir.
func (c *Client) DownloadAsset(tag, name, dir string) error {
	_, err := c.execGH("release", "download", tag, "--pattern", name, "--dir", dir)
	if err != nil {
		return fmt.Errorf("failed to download %s from release %s: %w", name, tag, err)
	}
	return nil
}

// execGH executes a gh CLI command and returns the output
func (c *Client) execGH(args ...string) ([]byte, error) {
	cmd := exec.Command("gh", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("gh CLI error: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("failed to execute gh: %w", err)
	}
	return output, nil
}

// isNotFoundError checks whether the error is the API's "no such resource"
// answer rather than a real failure.
func isNotFoundError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "Not Found") || strings.Contains(msg, "HTTP 404")
}
