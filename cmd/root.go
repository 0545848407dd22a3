package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/inchworksinc/release-notes/cmd/collect"
	"github.com/inchworksinc/release-notes/cmd/history"
	"github.com/inchworksinc/release-notes/cmd/publish"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "release-notes",
	Short: "CI release-notes collection and publishing",
	Long: `release-notes collects the commits a CI build covers, classifies each
one as a story or a defect, and appends the result to a rolling JSON
history file. A companion publish command creates or updates a tagged
release with an artifact bundle and a release-notes log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Fatal(err)
	}
}

func init() {
	// Register all commands
	commands := []Command{
		&collect.Command{},
		&publish.Command{},
		&history.Command{},
	}

	for _, cmd := range commands {
		cmd.Register(rootCmd)
	}
}
