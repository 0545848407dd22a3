package show

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inchworksinc/release-notes/internal/config"
	"github.com/inchworksinc/release-notes/internal/gh"
	"github.com/inchworksinc/release-notes/internal/notes"
	"github.com/inchworksinc/release-notes/internal/ui"
)

// Command renders the rolling build history as a table.
type Command struct {
	// Flags
	File        string // history file path, overrides config
	FromRelease string // download the history file from this release instead
	Limit       int    // show at most this many builds, 0 for all
	ConfigPath  string

	Forge *gh.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the build history as a table",
		Long: `Show reads the rolling history file and renders one row per build with
its revision, timestamp, and story/defect counts.

With --from-release the history file is downloaded as an asset from the
named release instead of read locally.

Example:
  release-notes history show
  release-notes history show --limit 5
  release-notes history show --from-release v2.4.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.File, "file", "", "History file path (defaults to the configured history_path)")
	cmd.Flags().StringVar(&c.FromRelease, "from-release", "", "Download the history file from this release")
	cmd.Flags().IntVar(&c.Limit, "limit", 0, "Show at most this many builds (0 shows all)")
	cmd.Flags().StringVar(&c.ConfigPath, "config", config.DefaultPath, "Config file path")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}

	path := c.File
	if path == "" {
		path = cfg.HistoryPath
	}

	if c.FromRelease != "" {
		path, err = c.downloadHistory(path)
		if err != nil {
			return err
		}
	}

	store := notes.NewStore(path)
	history, err := store.Load()
	if err != nil {
		return err
	}

	if len(history.Builds) == 0 {
		ui.Info("History is empty.")
		return nil
	}

	policy, err := notes.ParsePolicy(cfg.InsertPolicy)
	if err != nil {
		return err
	}

	builds, omitted := visibleBuilds(history.Builds, c.Limit, policy)

	tbl := ui.NewHistoryTable().Headers("REVISION", "TIMESTAMP", "STORIES", "DEFECTS")
	for _, build := range builds {
		tbl.Row(
			build.Revision,
			build.Timestamp,
			ui.StoryStyle.Render(fmt.Sprintf("%d", len(build.Stories))),
			ui.DefectStyle.Render(fmt.Sprintf("%d", len(build.Defects))),
		)
	}
	ui.Print(tbl.Render())

	if omitted > 0 {
		ui.Print(ui.Dim(fmt.Sprintf("(%d older builds not shown)", omitted)))
	}
	return nil
}

// visibleBuilds limits the builds to render, dropping the oldest. The
// insert policy decides which end of the list the newest builds are on.
func visibleBuilds(builds []notes.Build, limit int, policy notes.Policy) ([]notes.Build, int) {
	if limit <= 0 || len(builds) <= limit {
		return builds, 0
	}
	if policy == notes.Append {
		return builds[len(builds)-limit:], len(builds) - limit
	}
	return builds[:limit], len(builds) - limit
}

// downloadHistory fetches the history file asset from the release and
// returns the local path it was written to.
func (c *Command) downloadHistory(path string) (string, error) {
	dir, err := os.MkdirTemp("", "release-notes")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch directory: %w", err)
	}

	name := filepath.Base(path)
	if err := c.Forge.DownloadAsset(c.FromRelease, name, dir); err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
