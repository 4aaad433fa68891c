package main

import (
	"assistant/internal/assistant"
	"assistant/internal/config"

	"github.com/spf13/cobra"
)

// runSession loads the address book and talks to the user over the command's
// stdin and stdout until close/exit. The book is saved when the session ends.
func runSession(cmd *cobra.Command, cfg *config.Config) error {
	ctx := cmd.Context()
	book, st := loadBook(ctx, cfg)

	session := assistant.New(book, st, cmd.OutOrStdout(), assistant.Options{
		UpcomingDays: cfg.Birthdays.Days,
	})

	return session.Run(ctx, cmd.InOrStdin())
}
