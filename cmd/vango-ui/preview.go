package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/preview"
)

func previewCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Preview popovers in the terminal",
		Long: `Open an interactive terminal canvas with a click popover and a hover
popover. Popover defaults come from the config file.

Controls:
  mouse       hover and click triggers
  tab, enter  move focus and activate
  esc         dismiss
  q           quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			popoverOpts, err := cfg.PopoverOptions()
			if err != nil {
				return err
			}
			return preview.Run(preview.Options{
				Popover: popoverOpts,
				Logger:  slog.Default(),
			})
		},
	}
}
