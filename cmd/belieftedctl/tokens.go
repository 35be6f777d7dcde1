package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/beliefted/beliefted-server/internal/app"
	"github.com/beliefted/beliefted-server/internal/command"
	"github.com/beliefted/beliefted-server/internal/datasources"
)

func newTokensCmd() *cobra.Command {
	tokensCmd := &cobra.Command{Use: "tokens", Short: "Manage API tokens"}

	var userID, name string
	var expiresInDays int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Issue an API token for a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dataset, err := app.SetupDatasetRepository(ctx)
			if err != nil {
				return err
			}

			req := command.CreateAPITokenRequest{
				UserID:    userID,
				ExpiresIn: time.Duration(expiresInDays) * 24 * time.Hour,
			}
			if name != "" {
				req.Name = &name
			}
			res, err := command.NewCreateAPIToken(dataset, dataset).Execute(ctx, req)
			if err != nil {
				return err
			}
			return printCreatedToken(cmd.OutOrStdout(), res)
		},
	}
	createCmd.Flags().StringVarP(&userID, "user", "u", "", "User ID (required)")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Token name")
	createCmd.Flags().IntVar(&expiresInDays, "expires-in-days", 0, "Days until expiry (0 never expires)")
	_ = createCmd.MarkFlagRequired("user")
	tokensCmd.AddCommand(createCmd)

	var listUserID string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's API tokens",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			dataset, err := app.SetupDatasetRepository(ctx)
			if err != nil {
				return err
			}
			return printTokens(cmd, dataset, listUserID)
		},
	}
	listCmd.Flags().StringVarP(&listUserID, "user", "u", "", "User ID (required)")
	_ = listCmd.MarkFlagRequired("user")
	tokensCmd.AddCommand(listCmd)

	return tokensCmd
}

func printCreatedToken(w io.Writer, res command.CreateAPITokenResponse) error {
	expires := "never"
	if res.ExpiresAt != nil {
		expires = res.ExpiresAt.Format(time.RFC3339)
	}
	_, err := fmt.Fprintf(w, "id:      %s\ntoken:   %s\nexpires: %s\n", res.TokenID, res.FullToken, expires)
	return err
}

func printTokens(cmd *cobra.Command, lister datasources.UserAPITokenLister, userID string) error {
	tokens, err := lister.ListUserAPITokens(cmd.Context(), userID)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tPREFIX\tNAME\tCREATED\tACTIVE")
	for _, t := range tokens {
		name := ""
		if t.Name != nil {
			name = *t.Name
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n",
			t.ID, t.Prefix, name, t.CreatedAt.Format(time.RFC3339), t.IsActive())
	}
	return tw.Flush()
}
