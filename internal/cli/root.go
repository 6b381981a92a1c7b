package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/bootforge/bootforge/internal/branding"
	"github.com/bootforge/bootforge/internal/config"
	"github.com/bootforge/bootforge/internal/logging"
	"github.com/bootforge/bootforge/internal/terminal"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` merges generated code into Spring Boot projects and runs
declarative action files (generate, replace, vars, define, pom-update,
inject-maven-dependency) against them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Write debug diagnostics to stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		terminal.New(os.Stderr, logging.IsTerminal(os.Stderr)).Warnf("Error: %v", err)
	}
	return err
}

func newLogger() zerolog.Logger {
	return logging.New(os.Stderr, rootVerbose)
}

func newMessenger(w io.Writer) terminal.Messenger {
	return terminal.New(w, logging.IsTerminal(w))
}
