package publish

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/inchworksinc/release-notes/internal/config"
	"github.com/inchworksinc/release-notes/internal/gh"
	"github.com/inchworksinc/release-notes/internal/git"
	"github.com/inchworksinc/release-notes/internal/notes"
	"github.com/inchworksinc/release-notes/internal/ui"
)

// Command creates or updates a tagged release with an artifact bundle and
// a release-notes log.
type Command struct {
	// Flags
	Release    string
	Target     string
	Artifact   string
	Prerelease string // parsed as a bool; kept as a string so absence fails
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
		Use:   "publish",
		Short: "Create or update a tagged release with an artifact and notes",
		Long: `Publish creates a release tagged with the release name targeting the
given branch, uploads the artifact bundle, and sets the release notes
from commit subjects since the previous stable release. A release that
already exists for the tag is updated instead.

All four arguments are required.

Example:
  release-notes publish --release v2.4.0 --target main --artifact dist/bundle.tar.gz --prerelease false`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&c.Release, "release", "", "Release name, used as the tag")
	cmd.Flags().StringVar(&c.Target, "target", "", "Branch the release targets")
	cmd.Flags().StringVar(&c.Artifact, "artifact", "", "Artifact bundle to upload")
	cmd.Flags().StringVar(&c.Prerelease, "prerelease", "", "Whether the release is a prerelease (true or false)")
	cmd.Flags().StringVar(&c.ConfigPath, "config", config.DefaultPath, "Config file path")
	cmd.MarkFlagRequired("release")
	cmd.MarkFlagRequired("target")
	cmd.MarkFlagRequired("artifact")
	cmd.MarkFlagRequired("prerelease")

	parent.AddCommand(cmd)
}

// Run executes the command
func (c *Command) Run(ctx context.Context) error {
	prerelease, err := strconv.ParseBool(c.Prerelease)
	if err != nil {
		return fmt.Errorf("invalid --prerelease value %q: %w", c.Prerelease, err)
	}

	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return err
	}

	result, err := c.publisher(cfg).Publish(notes.PublishRequest{
		ReleaseName:  c.Release,
		TargetBranch: c.Target,
		ArtifactPath: c.Artifact,
		Prerelease:   prerelease,
	})
	if err != nil {
		return err
	}

	action := "Created"
	if result.Updated {
		action = "Updated"
	}
	ui.Successf("%s release %s targeting %s", action, c.Release, c.Target)

	if result.NotesAttached {
		ui.Infof("Notes text is %d characters, attached as an asset", result.NotesSize)
	}
	return nil
}

// publisher builds the publisher with the configured notes size limit.
func (c *Command) publisher(cfg config.Config) *notes.Publisher {
	return &notes.Publisher{
		Git:            c.Git,
		Forge:          c.Forge,
		NotesSizeLimit: cfg.NotesSizeLimit,
	}
}
