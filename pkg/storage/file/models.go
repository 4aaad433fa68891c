package file

import (
	"assistant/pkg/domain"
	"fmt"
	"time"
)

// formatVersion is written into every file so that future layout changes can
// be detected on load.
const formatVersion = 1

type fileBook struct {
	Version  int           `msgpack:"version"`
	Contacts []fileContact `msgpack:"contacts"`
}

type fileContact struct {
	Name     string     `msgpack:"name"`
	Phones   []string   `msgpack:"phones"`
	Birthday *time.Time `msgpack:"birthday,omitempty"`
}

func (c *fileContact) ToDomain() (domain.Record, error) {
	rec := domain.Record{Name: c.Name}
	for _, p := range c.Phones {
		phone, err := domain.NewPhone(p)
		if err != nil {
			return domain.Record{}, fmt.Errorf("contact %s: %w", c.Name, err)
		}
		rec.Phones = append(rec.Phones, phone)
	}
	if c.Birthday != nil {
		b := domain.BirthdayFromTime(c.Birthday.UTC())
		rec.Birthday = &b
	}

	return rec, nil
}

func (c *fileContact) FromDomain(rec domain.Record) {
	*c = fileContact{
		Name:   rec.Name,
		Phones: make([]string, len(rec.Phones)),
	}
	for i, p := range rec.Phones {
		c.Phones[i] = string(p)
	}
	if rec.Birthday != nil {
		t := rec.Birthday.Time()
		c.Birthday = &t
	}
}
