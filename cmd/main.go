// Package main provides the CLI entrypoint for the address book assistant.
// It loads configuration, initializes logging, runs the interactive session
// and wires the non-interactive subcommands (export, import, birthdays).
package main

import (
	"assistant/internal/addressbook"
	"assistant/internal/config"
	"assistant/pkg/logger"
	"assistant/pkg/storage/file"
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadBook creates the file storage configured in cfg and loads the address
// book from it. Load failures leave the book empty.
func loadBook(ctx context.Context, cfg *config.Config) (*addressbook.Book, *file.Storage) {
	st := file.New(file.Options{Path: cfg.Storage.Path})
	ctx = logger.WithFields(ctx, zap.String("path", st.Path()))

	book := addressbook.New()
	book.Load(ctx, st)
	logger.Info(ctx, "address book ready", zap.Int("contacts", book.Len()))

	return book, st
}

// openBook is the strict counterpart of loadBook used by commands that write
// the book back or hand it to the user: any load failure other than a missing
// file is returned instead of being replaced by an empty book.
func openBook(ctx context.Context, cfg *config.Config) (*addressbook.Book, *file.Storage, error) {
	st := file.New(file.Options{Path: cfg.Storage.Path})

	book := addressbook.New()
	if err := book.Restore(logger.WithFields(ctx, zap.String("path", st.Path())), st); err != nil {
		return nil, nil, err
	}

	return book, st, nil
}

// main sets up the root Cobra command, which runs the interactive session,
// loads configuration and logging before any command runs, and registers
// subcommands before executing the CLI.
func main() {
	var configPath string
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "assistant",
		Short:         "Address book assistant bot",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				// the logger is not set up yet
				log.Fatal("could not load config file: ", err)
			}
			*cfg = *loaded

			return logger.Setup(cfg.Environment, cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "Config File Path")

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		exportCommand(cfg),
		importCommand(cfg),
		birthdaysCommand(cfg),
	)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(ctx, "command failed", zap.Error(err))
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
