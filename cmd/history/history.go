package history

import (
	"github.com/spf13/cobra"

	"github.com/inchworksinc/release-notes/cmd/history/show"
	"github.com/inchworksinc/release-notes/internal/gh"
)

// Command is the parent command for history subcommands
type Command struct {
	// Clients (shared by subcommands)
	Forge *gh.Client
}

// Register registers the history command and all subcommands
func (c *Command) Register(parent *cobra.Command) {
	c.Forge = gh.NewClient()

	cmd := &cobra.Command{
		Use:   "history",
		Short: "History file operations",
		Long:  `Commands for inspecting the rolling build history file.`,
	}

	// Register subcommands
	showCmd := &show.Command{Forge: c.Forge}
	showCmd.Register(cmd)

	parent.AddCommand(cmd)
}
