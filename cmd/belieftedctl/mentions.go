package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beliefted/beliefted-server/internal/domain"
)

func newMentionsCmd() *cobra.Command {
	var permissive bool

	cmd := &cobra.Command{
		Use:   "mentions TEXT...",
		Short: "Show which usernames a piece of text would notify",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := domain.DefaultMentionPolicy
			if permissive {
				policy = domain.PermissiveMentionPolicy
			}
			return printMentions(cmd.OutOrStdout(), policy, strings.Join(args, " "))
		},
	}
	cmd.Flags().BoolVar(&permissive, "permissive", false, "Also match '@' directly after a word character")
	return cmd
}

func printMentions(w io.Writer, policy domain.MentionPolicy, text string) error {
	for _, m := range policy.Extract(text) {
		if _, err := fmt.Fprintln(w, strings.ToLower(m)); err != nil {
			return err
		}
	}
	return nil
}
