// Package addressbook holds contact records keyed by name.
package addressbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/assistant/internal/field"
)

// ErrPhoneNotFound indicates that a record has no matching phone number.
var ErrPhoneNotFound = errors.New("addressbook: phone number not found")

// Record is one contact: a name, an ordered list of phones and an optional birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday *field.Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []field.Phone {
	out := make([]field.Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (field.Birthday, bool) {
	if r.birthday == nil {
		return field.Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates number and appends it. Duplicates are kept.
func (r *Record) AddPhone(number string) error {
	p, err := field.NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// EditPhone replaces the first occurrence of old with replacement.
func (r *Record) EditPhone(old, replacement string) error {
	p, err := field.NewPhone(replacement)
	if err != nil {
		return err
	}
	i := r.indexOf(old)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, old)
	}
	r.phones[i] = p
	return nil
}

// ReplaceFirstPhone replaces the record's first phone with replacement.
func (r *Record) ReplaceFirstPhone(replacement string) error {
	if len(r.phones) == 0 {
		return fmt.Errorf("%w: %s has no phones", ErrPhoneNotFound, r.name)
	}
	return r.EditPhone(r.phones[0].String(), replacement)
}

// RemovePhone removes every occurrence of number.
func (r *Record) RemovePhone(number string) error {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.String() != number {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(r.phones) {
		return fmt.Errorf("%w: %s", ErrPhoneNotFound, number)
	}
	clear(r.phones[len(kept):])
	r.phones = kept
	return nil
}

// FindPhone returns the stored phone equal to number.
func (r *Record) FindPhone(number string) (field.Phone, error) {
	i := r.indexOf(number)
	if i < 0 {
		return "", fmt.Errorf("%w: %s", ErrPhoneNotFound, number)
	}
	return r.phones[i], nil
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.String() == number {
			return i
		}
	}
	return -1
}

// SetBirthday parses value as DD.MM.YYYY and stores it, replacing any previous birthday.
// On error the stored birthday is left unchanged.
func (r *Record) SetBirthday(value string) error {
	b, err := field.NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// ShowBirthday returns the "birthday: ..." line used in replies and listings.
func (r *Record) ShowBirthday() string {
	if b, ok := r.Birthday(); ok {
		return "birthday: " + b.String()
	}
	return "birthday: Not available."
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, %s", r.name, strings.Join(phones, "; "), r.ShowBirthday())
}
