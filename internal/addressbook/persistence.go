package addressbook

import (
	"assistant/pkg/domain"
	"assistant/pkg/logger"
	"assistant/pkg/storage"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Load replaces the book's contents with the records held by st. A missing
// address book and any other load failure both leave the book empty; they are
// logged rather than returned.
func (b *Book) Load(ctx context.Context, st storage.BookStorage) {
	if err := b.Restore(ctx, st); err != nil {
		logger.Warn(ctx, "could not load address book, starting with an empty one", zap.Error(err))
	}
}

// Restore replaces the book's contents with the records held by st. A
// missing address book leaves the book empty; any other failure is returned
// and also leaves the book empty.
func (b *Book) Restore(ctx context.Context, st storage.BookStorage) error {
	b.reset()

	records, err := st.Load(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			logger.Info(ctx, "no saved address book found, starting with an empty one", zap.Error(err))

			return nil
		}

		return fmt.Errorf("could not load address book: %w", err)
	}

	for i := range records {
		rec := records[i]
		b.AddRecord(&rec)
	}
	logger.Debug(ctx, "address book loaded", zap.Int("contacts", b.Len()))

	return nil
}

// Save writes every record to st.
func (b *Book) Save(ctx context.Context, st storage.BookStorage) error {
	records := make([]domain.Record, 0, b.Len())
	for _, rec := range b.Records() {
		records = append(records, *rec)
	}

	if err := st.Save(ctx, records); err != nil {
		return fmt.Errorf("could not save address book: %w", err)
	}
	logger.Debug(ctx, "address book saved", zap.Int("contacts", len(records)))

	return nil
}
