// Package file implements storage.BookStorage on top of a single local file
// encoded with MessagePack.
package file

import (
	"assistant/pkg/domain"
	"assistant/pkg/serrors"
	"assistant/pkg/storage"
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// DefaultPath is the file used when no path is configured.
const DefaultPath = "address_book.msgpack"

// Options defines the configuration parameters for file storage.
type Options struct {
	// Path is the location of the address book file. Defaults to DefaultPath.
	Path string
}

// Storage implements storage.BookStorage for a local MessagePack file.
type Storage struct {
	path string
}

// Ensure Storage implements storage.BookStorage.
var _ storage.BookStorage = (*Storage)(nil)

// New creates a file storage for the given options. The file itself is not
// touched until Load or Save is called.
func New(opts Options) *Storage {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}

	return &Storage{path: path}
}

// Path returns the file the storage reads from and writes to.
func (s *Storage) Path() string { return s.path }

// Load reads and decodes the address book file.
func (s *Storage) Load(_ context.Context) ([]domain.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not open %s: %w", s.path, storage.ErrNotExist)
		}

		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not open address book")
	}
	defer f.Close()

	var book fileBook
	if err := msgpack.NewDecoder(bufio.NewReader(f)).Decode(&book); err != nil {
		return nil, serrors.Wrap(serrors.ErrStorage, err, "could not decode address book %s", s.path)
	}
	if book.Version != formatVersion {
		return nil, serrors.With(serrors.ErrStorage, "unsupported address book version %d", book.Version)
	}

	records := make([]domain.Record, 0, len(book.Contacts))
	for i := range book.Contacts {
		rec, err := book.Contacts[i].ToDomain()
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrStorage, err, "corrupt address book %s", s.path)
		}
		records = append(records, rec)
	}

	return records, nil
}

// Save encodes records into a temporary file next to the target and renames it
// into place, so an interrupted write never leaves a truncated address book.
func (s *Storage) Save(_ context.Context, records []domain.Record) error {
	book := fileBook{
		Version:  formatVersion,
		Contacts: make([]fileContact, len(records)),
	}
	for i, rec := range records {
		book.Contacts[i].FromDomain(rec)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not create temporary file")
	}
	defer func() {
		// no-op once the rename succeeded
		_ = os.Remove(tmp.Name())
	}()

	w := bufio.NewWriter(tmp)
	if err := msgpack.NewEncoder(w).Encode(&book); err != nil {
		_ = tmp.Close()

		return serrors.Wrap(serrors.ErrStorage, err, "could not encode address book")
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()

		return serrors.Wrap(serrors.ErrStorage, err, "could not write address book")
	}
	if err := tmp.Close(); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not close temporary file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return serrors.Wrap(serrors.ErrStorage, err, "could not replace %s", s.path)
	}

	return nil
}
