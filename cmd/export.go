package main

import (
	"assistant/internal/config"
	"assistant/pkg/logger"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCommand constructs the 'export' subcommand that writes the address
// book as JSON to stdout or to the file given with --output.
func exportCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Exports the address book as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			return exportContacts(cmd.Context(), cfg, output, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (defaults to stdout)")

	return cmd
}

// exportContacts writes the stored address book as JSON to output, or to
// stdout when output is empty.
func exportContacts(ctx context.Context, cfg *config.Config, output string, stdout io.Writer) error {
	book, _, err := openBook(ctx, cfg)
	if err != nil {
		return err
	}

	if output == "" {
		if err := book.WriteJSON(stdout); err != nil {
			return fmt.Errorf("could not export address book: %w", err)
		}

		return nil
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", output, err)
	}
	if err := book.WriteJSON(f); err != nil {
		_ = f.Close()

		return fmt.Errorf("could not export address book: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", output, err)
	}
	logger.Info(ctx, "address book exported", zap.Int("contacts", book.Len()), zap.String("output", output))

	return nil
}
