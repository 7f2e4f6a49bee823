package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/aidfinder/internal/app"
	"github.com/five82/aidfinder/internal/config"
	"github.com/five82/aidfinder/internal/prefs"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "aidfinder: %v\n", err)
		return 1
	}
	return 0
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	lang       string
	verbose    bool
}

func (o *rootOptions) appOptions() app.Options {
	return app.Options{
		ConfigPath: o.configPath,
		Language:   o.lang,
		Verbose:    o.verbose,
	}
}

// openEnv loads the shared application state for a subcommand.
func (o *rootOptions) openEnv(cmd *cobra.Command) (*app.Env, error) {
	return app.Open(cmd.Context(), o.appOptions(), prefs.HostFromEnv())
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "aidfinder",
		Short: "Find assistance programs you may qualify for",
		Long: `AidFinder is a directory of public assistance programs.

Browse food, health, housing, utilities, education and income programs,
filter them by category, state and free-text search in English, Spanish
or French, save the ones you care about and share application links.

Run without arguments to start the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), opts.appOptions())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", fmt.Sprintf("config file path (default %s)", config.DefaultPath()))
	flags.StringVar(&opts.lang, "lang", "", "display language for this session (en, es, fr)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newListCmd(opts),
		newShareCmd(opts),
		newFavoritesCmd(opts),
		newLogsCmd(opts),
	)
	return root
}
