package addressbook

import (
	"assistant/pkg/domain"
	"assistant/pkg/serrors"
	"io"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// WriteJSON writes the book to w as an indented JSON array of
// {"name", "phones", "birthday"} objects, in iteration order. A missing
// birthday is encoded as null.
func (b *Book) WriteJSON(w io.Writer) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)
	e.SetIdent(2)

	e.ArrStart()
	for _, rec := range b.Records() {
		encodeRecord(e, rec)
	}
	e.ArrEnd()

	if _, err := w.Write(append(e.Bytes(), '\n')); err != nil {
		return errors.Wrap(err, "write json")
	}

	return nil
}

func encodeRecord(e *jx.Encoder, rec *domain.Record) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(rec.Name)
	e.FieldStart("phones")
	e.ArrStart()
	for _, p := range rec.Phones {
		e.Str(string(p))
	}
	e.ArrEnd()
	e.FieldStart("birthday")
	if rec.Birthday != nil {
		e.Str(rec.Birthday.String())
	} else {
		e.Null()
	}
	e.ObjEnd()
}

// ReadJSON reads records in the WriteJSON format from r and adds them to the
// book; names that already exist are overwritten. Every value is validated
// and nothing is added unless the whole document is valid. It returns the
// number of records read.
func (b *Book) ReadJSON(r io.Reader) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, errors.Wrap(err, "read json")
	}

	var records []*domain.Record
	d := jx.DecodeBytes(data)
	if err := d.Arr(func(d *jx.Decoder) error {
		rec, err := decodeRecord(d)
		if err != nil {
			return errors.Wrapf(err, "contact #%d", len(records)+1)
		}
		records = append(records, rec)

		return nil
	}); err != nil {
		return 0, serrors.Wrap(serrors.ErrInvalidFormat, err, "could not import contacts")
	}
	if d.Next() != jx.Invalid {
		return 0, serrors.With(serrors.ErrInvalidFormat, "could not import contacts: unexpected data after the contact list")
	}

	for _, rec := range records {
		b.AddRecord(rec)
	}

	return len(records), nil
}

func decodeRecord(d *jx.Decoder) (*domain.Record, error) {
	rec := &domain.Record{}
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "name":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "name")
			}
			rec.Name = v
		case "phones":
			return d.Arr(func(d *jx.Decoder) error {
				v, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "phone")
				}

				return rec.AddPhone(v)
			})
		case "birthday":
			if d.Next() == jx.Null {
				return d.Null()
			}
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "birthday")
			}

			return rec.AddBirthday(v)
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return nil, err
	}
	if rec.Name == "" {
		return nil, errors.New("name is required")
	}

	return rec, nil
}
