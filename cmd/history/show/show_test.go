package show

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inchworksinc/release-notes/internal/notes"
)

// histories in both orders: prepend keeps the newest build first,
// append keeps it last.
func builds(revisions ...string) []notes.Build {
	out := make([]notes.Build, 0, len(revisions))
	for _, rev := range revisions {
		out = append(out, notes.Build{Revision: rev})
	}
	return out
}

func revisions(builds []notes.Build) []string {
	out := make([]string, 0, len(builds))
	for _, build := range builds {
		out = append(out, build.Revision)
	}
	return out
}

func TestVisibleBuilds(t *testing.T) {
	t.Run("PrependKeepsHeadOfList", func(t *testing.T) {
		history := builds("rev-3", "rev-2", "rev-1")

		shown, omitted := visibleBuilds(history, 2, notes.Prepend)
		assert.Equal(t, []string{"rev-3", "rev-2"}, revisions(shown))
		assert.Equal(t, 1, omitted)
	})

	t.Run("AppendKeepsTailOfList", func(t *testing.T) {
		history := builds("rev-1", "rev-2", "rev-3")

		shown, omitted := visibleBuilds(history, 2, notes.Append)
		assert.Equal(t, []string{"rev-2", "rev-3"}, revisions(shown))
		assert.Equal(t, 1, omitted)
	})

	t.Run("ZeroLimitShowsEverything", func(t *testing.T) {
		history := builds("rev-1", "rev-2", "rev-3")

		shown, omitted := visibleBuilds(history, 0, notes.Append)
		assert.Len(t, shown, 3)
		assert.Equal(t, 0, omitted)
	})

	t.Run("LimitAboveLengthShowsEverything", func(t *testing.T) {
		history := builds("rev-1", "rev-2")

		shown, omitted := visibleBuilds(history, 5, notes.Prepend)
		assert.Len(t, shown, 2)
		assert.Equal(t, 0, omitted)
	})

	t.Run("BothPoliciesShowTheSameNewestBuilds", func(t *testing.T) {
		var prepended, appended notes.History
		for i := 0; i < 6; i++ {
			build := notes.Build{Revision: fmt.Sprintf("rev-%d", i)}
			prepended = prepended.Insert(build, notes.Prepend, notes.DefaultHistoryLimit)
			appended = appended.Insert(build, notes.Append, notes.DefaultHistoryLimit)
		}

		fromPrepend, _ := visibleBuilds(prepended.Builds, 3, notes.Prepend)
		fromAppend, _ := visibleBuilds(appended.Builds, 3, notes.Append)

		require.Len(t, fromPrepend, 3)
		require.Len(t, fromAppend, 3)
		assert.ElementsMatch(t, revisions(fromPrepend), revisions(fromAppend))
	})
}
