package collect

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/inchworksinc/release-notes/internal/config"
	"github.com/inchworksinc/release-notes/internal/gh"
	"github.com/inchworksinc/release-notes/internal/git"
	"github.com/inchworksinc/release-notes/internal/notes"
	"github.com/inchworksinc/release-notes/internal/ui"
)

// Command collects a commit range, classifies it, and appends the result
// to the rolling history file.
type Command struct {
	// Flags
	Mode       string // "daily" or "release"
	Version    string // release revision, required in release mode
	RangeKind  string // "latest" or "tags", release mode only
	Output     string // history file path, overrides config
	ConfigPath string

	Git   *git.Client
	Forge *gh.Client
}

// Register registers the command with cobra
func (c *Command) Register(parent *cobra.Command) {
	var err error
	c.Git, err = git.NewClient()
	if err != nil {
		panic(err)
	}
	c.Forge = gh.NewClient()

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Classify commits and append a build record to the history file",
		Long: `Collect determines the commit range this build covers, classifies each
commit as a story or a defect, and appends one build record to the
rolling history file.

Daily builds range from the head of the last successful workflow run to
the current head and use the head commit hash as the revision. Release
builds range from the latest release tag (or between the last two tags
with --range tags) and use --version as the revision.

Example:
  release-notes collect --mode daily
  release-notes collect --mode release --version 2.4.0
  release-notes collect --mode release --version 2.4.0 --range tags`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Mode, "mode", envOr("RELEASE_NOTES_MODE", "daily"), "Build mode: daily or release")
	cmd.Flags().StringVar(&c.Version, "version", os.Getenv("RELEASE_VERSION"), "Version string recorded as the revision of a release build")
	cmd.Flags().StringVar(&c.RangeKind, "range", "latest", "Release range variant: latest (since last release) or tags (between last two tags)")
	cmd.Flags().StringVar(&c.Output, "output", "", "History file path (defaults to the configured history_path)")
	cmd.Flags().StringVar(&c.ConfigPath, "config", config.DefaultPath, "Config file path")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}

	rule, err := notes.ParseRule(cfg.Classification)
	if err != nil {
		return err
	}
	policy, err := notes.ParsePolicy(cfg.InsertPolicy)
	if err != nil {
		return err
	}

	resolver := &notes.Resolver{
		Git:      c.Git,
		Forge:    c.Forge,
		Workflow: cfg.Workflow,
		Mainline: cfg.Mainline,
	}

	rng, revision, err := c.resolveRange(resolver)
	if err != nil {
		return err
	}

	commits, err := resolver.Commits(rng)
	if err != nil {
		return err
	}

	remote, err := c.Git.RemoteName()
	if err != nil {
		return err
	}

	classifier := &notes.Classifier{
		Rule: rule,
		Resolver: &notes.BranchResolver{
			Git:         c.Git,
			Forge:       c.Forge,
			Remote:      remote,
			Mainline:    cfg.Mainline,
			Development: cfg.Development,
		},
	}
	stories, defects, err := classifier.Classify(commits)
	if err != nil {
		return err
	}

	path := c.Output
	if path == "" {
		path = cfg.HistoryPath
	}

	store := notes.NewStore(path)
	build := notes.NewBuild(revision, stories, defects)
	history, err := store.Accumulate(build, policy, cfg.HistoryLimit)
	if err != nil {
		return err
	}

	ui.Successf("Recorded build %s: %d stories, %d defects (%d commits scanned)",
		revision, len(stories), len(defects), len(commits))
	ui.Print(ui.Dim(fmt.Sprintf("history: %d/%d builds in %s", len(history.Builds), cfg.HistoryLimit, path)))
	return nil
}

// resolveRange picks the commit range and revision for the configured mode.
func (c *Command) resolveRange(resolver *notes.Resolver) (notes.Range, string, error) {
	switch c.Mode {
	case "daily":
		rng, err := resolver.DailyRange()
		if err != nil {
			return notes.Range{}, "", err
		}
		return rng, rng.End, nil
	case "release":
		if c.Version == "" {
			return notes.Range{}, "", fmt.Errorf("release mode requires --version (or RELEASE_VERSION)")
		}
		var rng notes.Range
		var err error
		switch c.RangeKind {
		case "latest":
			rng, err = resolver.ReleaseRange()
		case "tags":
			rng, err = resolver.TagRange()
		default:
			return notes.Range{}, "", fmt.Errorf("unknown range variant %q (want latest or tags)", c.RangeKind)
		}
		if err != nil {
			return notes.Range{}, "", err
		}
		return rng, c.Version, nil
	default:
		return notes.Range{}, "", fmt.Errorf("unknown mode %q (want daily or release)", c.Mode)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
