package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Client provides read-only git queries for a repository.
type Client struct {
	root string
}

// NewClient creates a git client for the repository containing the current directory.
func NewClient() (*Client, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return nil, fmt.Errorf("not in a git repository: %w", err)
	}
	return &Client{root: strings.TrimSpace(string(out))}, nil
}

// NewClientAt creates a git client rooted at the given directory.
func NewClientAt(dir string) *Client {
	return &Client{root: dir}
}

// Root returns the directory the client operates in.
func (c *Client) Root() string {
	return c.root
}

// Head returns the commit hash of HEAD.
func (c *Client) Head() (string, error) {
	out, err := c.run("rev-parse", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// RootCommit returns the hash of the repository's parentless commit.
// Histories with multiple roots return the first one git lists.
func (c *Client) RootCommit() (string, error) {
	out, err := c.run("rev-list", "--max-parents=0", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to resolve root commit: %w", err)
	}
	roots := strings.Split(strings.TrimSpace(out), "\n")
	if len(roots) == 0 || roots[0] == "" {
		return "", fmt.Errorf("repository has no commits")
	}
	return strings.TrimSpace(roots[0]), nil
}

// CommitsInRange lists non-merge commits reachable from end but not from
// start, newest first. An empty start means the full history of end.
func (c *Client) CommitsInRange(start, end string) ([]Commit, error) {
	rangeSpec := end
	if start != "" {
		rangeSpec = fmt.Sprintf("%s..%s", start, end)
	}

	out, err := c.run("log", "--no-merges", "--pretty=format:"+logFormat, rangeSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits %s: %w", rangeSpec, err)
	}
	return parseLog(out), nil
}

// RecentCommits lists the most recent n non-merge commits ending at ref.
func (c *Client) RecentCommits(n int, ref string) ([]Commit, error) {
	out, err := c.run("log", "--no-merges", "-n", strconv.Itoa(n), "--pretty=format:"+logFormat, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to list last %d commits of %s: %w", n, ref, err)
	}
	return parseLog(out), nil
}

// RemoteBranchesContaining lists remote branches the commit is reachable
// from, in git's listing order. Branch names keep their remote prefix.
func (c *Client) RemoteBranchesContaining(hash string) ([]string, error) {
	out, err := c.run("branch", "-r", "--contains", hash, "--format=%(refname:short)")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches containing %s: %w", hash, err)
	}

	var branches []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		name := strings.TrimSpace(line)
		// Skip symbolic entries like "origin/HEAD -> origin/main".
		if name == "" || strings.Contains(name, "->") {
			continue
		}
		branches = append(branches, name)
	}
	return branches, nil
}

// RemoteName returns the first configured remote, usually "origin".
func (c *Client) RemoteName() (string, error) {
	out, err := c.run("remote")
	if err != nil {
		return "", fmt.Errorf("failed to list remotes: %w", err)
	}

	remotes := strings.Split(strings.TrimSpace(out), "\n")
	if len(remotes) == 0 || remotes[0] == "" {
		return "", fmt.Errorf("no git remote configured")
	}
	return strings.TrimSpace(remotes[0]), nil
}

// run executes a git command in the repository root.
func (c *Client) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.root
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("failed to execute git: %w", err)
	}
	return string(output), nil
}
