package cli

import (
	"github.com/spf13/cobra"
)

// Build metadata, set at build time via ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
	BuiltBy   = ""
	TreeState = ""
)

var rootCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess the number",
	Long: `Guess asks for a number until you enter the right one.

Answers are compared loosely by default, so "30", " 30 " and "30.0" all
match a target of 30. There is no attempt limit: wrong answers simply
lead to another prompt.

Running guess with no subcommand is the same as 'guess play'.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("guess version {{.Version}}\n")
	addPlayFlags(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
