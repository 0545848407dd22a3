package git_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inchworksinc/release-notes/internal/testutil"
)

func TestClient(t *testing.T) {
	t.Run("HeadAndRootCommit", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		first, err := client.Head()
		require.NoError(t, err)

		second := testutil.Commit(t, client, "Second commit")

		head, err := client.Head()
		require.NoError(t, err)
		assert.Equal(t, second, head)

		root, err := client.RootCommit()
		require.NoError(t, err)
		assert.Equal(t, first, root)
	})

	t.Run("CommitsInRangeNewestFirst", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		start, err := client.Head()
		require.NoError(t, err)

		a := testutil.Commit(t, client, "Add widget")
		b := testutil.Commit(t, client, "Fix DEFECT-9 crash")

		commits, err := client.CommitsInRange(start, "HEAD")
		require.NoError(t, err)
		require.Len(t, commits, 2)

		assert.Equal(t, b, commits[0].Hash)
		assert.Equal(t, "Fix DEFECT-9 crash", commits[0].Subject)
		assert.Equal(t, "Test User", commits[0].Author)
		assert.Equal(t, a, commits[1].Hash)
		assert.Equal(t, "Add widget", commits[1].Subject)
	})

	t.Run("CommitsInRangeExcludesMerges", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		start, err := client.Head()
		require.NoError(t, err)

		testutil.CheckoutBranch(t, client, "feature/x")
		testutil.Commit(t, client, "Feature work")
		testutil.Checkout(t, client, "main")
		testutil.MergeNoFF(t, client, "feature/x")

		commits, err := client.CommitsInRange(start, "HEAD")
		require.NoError(t, err)

		require.Len(t, commits, 1)
		assert.Equal(t, "Feature work", commits[0].Subject)
	})

	t.Run("EmptyStartListsFullHistory", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		testutil.Commit(t, client, "Second commit")

		commits, err := client.CommitsInRange("", "HEAD")
		require.NoError(t, err)
		assert.Len(t, commits, 2)
	})

	t.Run("EmptyRangeYieldsNoCommits", func(t *testing.T) {
		client := testutil.NewTestRepo(t)

		commits, err := client.CommitsInRange("HEAD", "HEAD")
		require.NoError(t, err)
		assert.Empty(t, commits)
	})

	t.Run("RecentCommitsHonorsLimit", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		for i := 0; i < 4; i++ {
			testutil.Commit(t, client, "Commit "+string(rune('a'+i)))
		}

		commits, err := client.RecentCommits(3, "HEAD")
		require.NoError(t, err)
		assert.Len(t, commits, 3)
	})

	t.Run("RemoteBranchesContaining", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		testutil.CheckoutBranch(t, client, "feature/x")
		hash := testutil.Commit(t, client, "Feature work")
		testutil.AddRemote(t, client, "origin")

		branches, err := client.RemoteBranchesContaining(hash)
		require.NoError(t, err)
		assert.Equal(t, []string{"origin/feature/x"}, branches)

		mainOnly, err := client.RemoteBranchesContaining("main")
		require.NoError(t, err)
		assert.Contains(t, mainOnly, "origin/main")
	})

	t.Run("RemoteName", func(t *testing.T) {
		client := testutil.NewTestRepo(t)
		testutil.AddRemote(t, client, "origin")

		remote, err := client.RemoteName()
		require.NoError(t, err)
		assert.Equal(t, "origin", remote)
	})
}
