// Package addressbook holds the in-memory collection of contact records keyed
// by name, the birthday queries over it, and its persistence through a
// storage.BookStorage.
package addressbook

import (
	"assistant/pkg/domain"
	"assistant/pkg/serrors"
	"slices"
)

// Book maps contact names to records. Iteration follows the order in which
// names were first added.
type Book struct {
	records map[string]*domain.Record
	order   []string
}

// New returns an empty address book.
func New() *Book {
	return &Book{records: make(map[string]*domain.Record)}
}

// AddRecord inserts rec under its name. An existing record with the same name
// is replaced as a whole (phones are not merged) and keeps its position.
func (b *Book) AddRecord(rec *domain.Record) {
	if _, ok := b.records[rec.Name]; !ok {
		b.order = append(b.order, rec.Name)
	}
	b.records[rec.Name] = rec
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*domain.Record, bool) {
	rec, ok := b.records[name]

	return rec, ok
}

// Delete removes the record stored under name.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return serrors.With(serrors.ErrNotFound, "contact %s not found", name)
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })

	return nil
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.order) }

// Records returns the contacts in iteration order.
func (b *Book) Records() []*domain.Record {
	out := make([]*domain.Record, len(b.order))
	for i, name := range b.order {
		out[i] = b.records[name]
	}

	return out
}

// ShowBirthday describes the birthday of the named contact.
func (b *Book) ShowBirthday(name string) (string, error) {
	rec, ok := b.Find(name)
	if !ok {
		return "", serrors.With(serrors.ErrNotFound, "contact %s not found", name)
	}
	if rec.Birthday == nil {
		return "Contact " + name + " does not have a birthday set", nil
	}

	return "Birthday of contact " + name + " is on " + rec.Birthday.String(), nil
}

func (b *Book) reset() {
	b.records = make(map[string]*domain.Record)
	b.order = nil
}
