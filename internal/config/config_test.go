package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("MissingFileUsesDefaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("FileOverridesDefaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".release-notes.yml")
		content := `
history_path: ci/notes.json
history_limit: 25
insert_policy: append
classification: prefix
workflow: nightly
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "ci/notes.json", cfg.HistoryPath)
		assert.Equal(t, 25, cfg.HistoryLimit)
		assert.Equal(t, "append", cfg.InsertPolicy)
		assert.Equal(t, "prefix", cfg.Classification)
		assert.Equal(t, "nightly", cfg.Workflow)
		// Untouched fields keep their defaults.
		assert.Equal(t, "main", cfg.Mainline)
		assert.Equal(t, 125000, cfg.NotesSizeLimit)
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".release-notes.yml")
		require.NoError(t, os.WriteFile(path, []byte("workflow: nightly\n"), 0644))

		t.Setenv("RELEASE_NOTES_WORKFLOW", "release-build")
		t.Setenv("RELEASE_NOTES_FILE", "/var/ci/history.json")
		t.Setenv("RELEASE_NOTES_HISTORY_LIMIT", "10")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "release-build", cfg.Workflow)
		assert.Equal(t, "/var/ci/history.json", cfg.HistoryPath)
		assert.Equal(t, 10, cfg.HistoryLimit)
	})

	t.Run("MalformedYAMLIsAnError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".release-notes.yml")
		require.NoError(t, os.WriteFile(path, []byte("history_limit: [oops\n"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "parse")
	})

	t.Run("NonPositiveLimitIsAnError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".release-notes.yml")
		require.NoError(t, os.WriteFile(path, []byte("history_limit: -1\n"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "history_limit")
	})
}
