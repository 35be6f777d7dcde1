package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/beliefted/beliefted-server/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

var rootCmd = &cobra.Command{
	Use:           "belieftedctl",
	Short:         "Operator tools for the Beliefted server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := domain.ContextWithLogger(context.Background(), logger)

	rootCmd.AddCommand(newVerseCmd(), newMentionsCmd(), newTokensCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
