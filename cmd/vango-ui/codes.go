package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/internal/errors"
)

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes",
		Short: "List error codes by category",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), errors.Catalog())
		},
	}
}
