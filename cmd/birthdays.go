package main

import (
	"assistant/internal/config"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// birthdaysCommand constructs the 'birthdays' subcommand that prints the
// upcoming congratulation dates without starting a session.
func birthdaysCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Lists upcoming birthdays",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			days, _ := cmd.Flags().GetInt("days")
			if days <= 0 {
				days = cfg.Birthdays.Days
			}

			book, _ := loadBook(cmd.Context(), cfg)
			upcoming := book.UpcomingBirthdays(time.Now(), days)
			if len(upcoming) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No birthdays upcoming.")

				return
			}
			for _, c := range upcoming {
				fmt.Fprintln(cmd.OutOrStdout(), c.String())
			}
		},
	}

	cmd.Flags().Int("days", 0, "Number of days to look ahead (defaults to the configured value)")

	return cmd
}
