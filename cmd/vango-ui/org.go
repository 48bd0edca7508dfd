package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vango-ui/pkg/apiclient"
)

func orgCmd(flags *globalFlags) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "org",
		Short: "Call the auth service",
		Long: `Create organisations and validate users against the auth service of
the configured environment (see "environment" and "api" in the config).`,
	}
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", apiclient.DefaultTimeout, "Request timeout")

	newClient := func() (*apiclient.AuthClient, error) {
		cfg, err := loadConfig(flags)
		if err != nil {
			return nil, err
		}
		return apiclient.NewAuthClient(cfg.API.AuthURL, cfg.API.Version,
			apiclient.WithTimeout(timeout),
			apiclient.WithLogger(slog.Default()),
		)
	}

	cmd.AddCommand(orgCreateCmd(newClient), orgValidateCmd(newClient))
	return cmd
}

func orgCreateCmd(newClient func() (*apiclient.AuthClient, error)) *cobra.Command {
	var req apiclient.CreateOrganisationRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an organisation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.CreateOrganisation(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "organisation: %s\napi key:      %s\n", resp.OrganisationID, resp.APIKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Organisation name")
	cmd.Flags().StringVar(&req.Email, "email", "", "Owner email")
	cmd.Flags().StringVar(&req.Password, "password", "", "Owner password")
	return cmd
}

func orgValidateCmd(newClient func() (*apiclient.AuthClient, error)) *cobra.Command {
	var req apiclient.ValidateUserRequest

	cmd := &cobra.Command{
		Use:   "validate-user",
		Short: "Validate user credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			resp, err := client.ValidateUser(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "api key: %s\n", resp.APIKey)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "User email")
	cmd.Flags().StringVar(&req.Password, "password", "", "User password")
	cmd.Flags().StringVar(&req.OrganisationID, "org", "", "Organisation ID")
	return cmd
}
