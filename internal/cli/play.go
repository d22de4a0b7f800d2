package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/guess/internal/config"
	"github.com/thruflo/guess/internal/logging"
	"github.com/thruflo/guess/internal/loop"
	"github.com/thruflo/guess/internal/prompt"
)

var (
	playTarget     int
	playComparison string
	playConfigPath string
	playVerbose    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one round of the guessing game",
	Long: `Prompt for guesses until one equals the target, then print the success message.

Settings come from .guess/config.yaml in the current directory (or the
file given by --config). Flags override the file.

Examples:
  guess play
  guess play --target 7
  guess play --comparison strict
  echo 30 | guess play`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

// addPlayFlags registers the play flags on cmd. Root and play share the
// same variables so 'guess' and 'guess play' behave identically.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&playTarget, "target", config.DefaultTarget,
		"number to guess (overrides config)")
	cmd.Flags().StringVar(&playComparison, "comparison", config.DefaultComparison,
		"comparison rule: loose or strict (overrides config)")
	cmd.Flags().StringVarP(&playConfigPath, "config", "c", "",
		"path to config file (default .guess/config.yaml)")
	cmd.Flags().BoolVarP(&playVerbose, "verbose", "v", false,
		"log every guess to stderr")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logging.SetOutput(cmd.ErrOrStderr())
	if playVerbose {
		logging.SetLevel(logging.LevelDebug)
	}

	cfg, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}

	matcher, err := cfg.Matcher()
	if err != nil {
		return err
	}

	logger := logging.With("component", "loop")
	logger.Debug("starting game", "comparison", cfg.Comparison)

	l := loop.NewLoopWithOptions(loop.LoopOptions{
		Target:   cfg.Target,
		Prompter: prompt.NewLine(cmd.InOrStdin(), cmd.OutOrStdout()),
		Output:   cmd.OutOrStdout(),
		Matcher:  matcher,
		Messages: cfg.LoopMessages(),
		Logger:   logger,
	})

	if _, err := l.Run(); err != nil {
		return err
	}
	return nil
}

// loadPlayConfig reads the config file and applies flag overrides.
func loadPlayConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if playConfigPath != "" {
		cfg, err = config.LoadConfigFile(playConfigPath)
	} else {
		var cwd string
		cwd, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg, err = config.LoadConfig(cwd)
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("target") {
		cfg.Target = playTarget
	}
	if cmd.Flags().Changed("comparison") {
		cfg.Comparison = playComparison
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
