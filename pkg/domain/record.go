package domain

import (
	"assistant/pkg/serrors"
	"slices"
	"strings"
)

// Record is a single contact: a name, its phone numbers and an optional birthday.
type Record struct {
	// Name identifies the contact and never changes after creation.
	Name string
	// Phones holds the contact's numbers in insertion order; duplicates are allowed.
	Phones []Phone
	// Birthday is nil when no birthday has been set.
	Birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) *Record {
	return &Record{Name: name}
}

// AddPhone validates number and appends it.
func (r *Record) AddPhone(number string) error {
	phone, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, phone)

	return nil
}

// EditPhone replaces the first phone equal to oldNumber with newNumber.
// The phone list is left unchanged when oldNumber is absent or newNumber is invalid.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	i := r.phoneIndex(oldNumber)
	if i < 0 {
		return serrors.With(serrors.ErrNotFound, "phone number %s not found for contact %s", oldNumber, r.Name)
	}

	phone, err := NewPhone(newNumber)
	if err != nil {
		return err
	}
	r.Phones[i] = phone

	return nil
}

// RemovePhone removes the first phone equal to number.
func (r *Record) RemovePhone(number string) error {
	i := r.phoneIndex(number)
	if i < 0 {
		return serrors.With(serrors.ErrNotFound, "phone number %s not found for contact %s", number, r.Name)
	}
	r.Phones = slices.Delete(r.Phones, i, i+1)

	return nil
}

// FindPhone returns the phone equal to number, if the record has it.
func (r *Record) FindPhone(number string) (Phone, bool) {
	i := r.phoneIndex(number)
	if i < 0 {
		return "", false
	}

	return r.Phones[i], true
}

// AddBirthday validates date and sets it as the birthday, replacing any previous one.
func (r *Record) AddBirthday(date string) error {
	b, err := ParseBirthday(date)
	if err != nil {
		return err
	}
	r.Birthday = &b

	return nil
}

// PhoneList joins the phones with ", ".
func (r *Record) PhoneList() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = string(p)
	}

	return strings.Join(phones, ", ")
}

func (r *Record) String() string {
	s := "Contact name: " + r.Name + ", phones: " + r.PhoneList()
	if r.Birthday != nil {
		s += ", birthday: " + r.Birthday.String()
	}

	return s
}

func (r *Record) phoneIndex(number string) int {
	for i, p := range r.Phones {
		if string(p) == number {
			return i
		}
	}

	return -1
}
