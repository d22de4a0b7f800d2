package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/guess/internal/config"
)

var (
	initTarget     int
	initComparison string
	initForce      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .guess/config.yaml with default settings",
	Long: `Creates .guess/config.yaml in the current directory.

The file holds the target number, the comparison rule and the prompt
messages. Edit it to change the game without passing flags.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().IntVar(&initTarget, "target", config.DefaultTarget, "number to guess")
	initCmd.Flags().StringVar(&initComparison, "comparison", config.DefaultComparison, "comparison rule: loose or strict")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	path := config.Path(cwd)
	if fileExists(path) && !initForce {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}

	cfg := config.DefaultConfig()
	cfg.Target = initTarget
	cfg.Comparison = initComparison

	if err := config.WriteConfig(cwd, &cfg); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
