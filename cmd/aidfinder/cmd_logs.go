package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/five82/aidfinder/internal/config"
	"github.com/five82/aidfinder/internal/logtail"
)

func newLogsCmd(root *rootOptions) *cobra.Command {
	var (
		lines int
		level string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the end of the AidFinder log file",
		Long: `Prints the last lines of the log file configured by log_file
(default <data_dir>/aidfinder.log), one readable line per JSON record.

Examples:
  aidfinder logs
  aidfinder logs -n 200 --level warn`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			minLevel, err := zapcore.ParseLevel(level)
			if err != nil {
				return fmt.Errorf("--level: %w", err)
			}

			tail, err := logtail.Read(cfg.LogFile, lines)
			if err != nil {
				return err
			}
			tail = logtail.Filter(tail, minLevel)
			if !raw {
				tail = logtail.FormatLines(tail)
			}
			if len(tail) == 0 {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(tail, "\n"))
			return err
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of lines to read from the end of the file")
	cmd.Flags().StringVar(&level, "level", "debug", "minimum level: debug, info, warn or error")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the JSON records unformatted")
	return cmd
}
