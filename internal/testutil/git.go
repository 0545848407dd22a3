package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inchworksinc/release-notes/internal/git"
)

// NewTestRepo creates a git repository in a temporary directory with one
// initial commit and returns a client for it.
func NewTestRepo(t *testing.T) *git.Client {
	t.Helper()
	tempDir := t.TempDir()

	run(t, tempDir, "init", "--initial-branch=main")
	run(t, tempDir, "config", "user.email", "test@example.com")
	run(t, tempDir, "config", "user.name", "Test User")

	client := git.NewClientAt(tempDir)
	Commit(t, client, "Initial commit")

	return client
}

// Commit writes a file named after the subject and commits it with frozen
// dates for reproducible hashes. Returns the commit hash.
func Commit(t *testing.T, client *git.Client, subject string) string {
	t.Helper()

	name := strings.Map(func(r rune) rune {
		if r == '/' || r == ' ' {
			return '-'
		}
		return r
	}, subject)
	path := filepath.Join(client.Root(), fmt.Sprintf("file-%s.txt", name))
	require.NoError(t, os.WriteFile(path, []byte(subject+"\n"), 0644))

	run(t, client.Root(), "add", ".")
	runCommit(t, client.Root(), "commit", "-m", subject)

	return head(t, client.Root())
}

// CheckoutBranch creates and checks out a branch.
func CheckoutBranch(t *testing.T, client *git.Client, name string) {
	t.Helper()
	run(t, client.Root(), "checkout", "-b", name)
}

// Checkout switches to an existing ref.
func Checkout(t *testing.T, client *git.Client, ref string) {
	t.Helper()
	run(t, client.Root(), "checkout", ref)
}

// MergeNoFF merges a branch with a merge commit, so range queries have a
// merge to exclude.
func MergeNoFF(t *testing.T, client *git.Client, branch string) {
	t.Helper()
	runCommit(t, client.Root(), "merge", "--no-ff", "-m", "Merge branch "+branch, branch)
}

// AddRemote creates a bare repository, registers it as a remote, and
// pushes every local branch to it.
func AddRemote(t *testing.T, client *git.Client, name string) {
	t.Helper()

	bare := t.TempDir()
	run(t, bare, "init", "--bare")
	run(t, client.Root(), "remote", "add", name, bare)
	run(t, client.Root(), "push", name, "--all")
}

// run executes a git command in dir, failing the test on error.
func run(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
}

// runCommit executes a commit-creating git command with frozen dates.
func runCommit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_DATE=2024-01-01T00:00:00Z",
		"GIT_COMMITTER_DATE=2024-01-01T00:00:00Z",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %s failed: %s", strings.Join(args, " "), string(output))
}

// head returns the current HEAD hash.
func head(t *testing.T, dir string) string {
	t.Helper()
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git rev-parse failed: %s", string(output))
	return strings.TrimSpace(string(output))
}
