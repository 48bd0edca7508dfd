package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/config"
	"github.com/vango-dev/vango-ui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configDir string
	logLevel  string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		var ve *errors.VangoError
		if stderrors.As(err, &ve) {
			fmt.Fprint(os.Stderr, ve.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "vango-ui",
		Short: "Server-driven UI components for Go",
		Long: `vango-ui hosts Button, Tabs and Popover components rendered on the
server. Use it to run the browser playground, preview popovers in the
terminal, compute popover placement, or call the auth service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configDir, "config", "c", ".", "Directory containing "+config.ConfigFileName)
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		serveCmd(flags),
		previewCmd(flags),
		placeCmd(),
		orgCmd(flags),
		codesCmd(),
		versionCmd(),
	)
	return cmd
}

// parseLevel maps a --log-level value to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.New("E400").WithDetailf("--log-level %q", s).Wrap(err)
	}
	return level, nil
}

// loadConfig reads the config from the --config directory, falling back
// to defaults when the file does not exist.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	return config.LoadOrDefault(flags.configDir)
}
