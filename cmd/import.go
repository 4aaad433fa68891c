package main

import (
	"assistant/internal/config"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// importCommand constructs the 'import' subcommand that merges contacts from a
// JSON file produced by 'export' into the address book and saves it.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Imports contacts from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importContacts(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
		},
	}

	return cmd
}

// importContacts merges the contacts of the JSON file at path into the stored
// address book. The book is only saved when it could be read, so an unreadable
// address book is never overwritten.
func importContacts(ctx context.Context, cfg *config.Config, path string, stdout io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	book, st, err := openBook(ctx, cfg)
	if err != nil {
		return err
	}
	n, err := book.ReadJSON(f)
	if err != nil {
		return err
	}
	if err := book.Save(ctx, st); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Imported %d contacts.\n", n)

	return nil
}
