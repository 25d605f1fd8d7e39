// Package field implements the validated scalar values stored on a contact:
// names, phone numbers and birthdays.
package field

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the DD.MM.YYYY layout used to parse and display birthdays.
const DateLayout = "02.01.2006"

// PhoneDigits is the exact number of digits a phone number must have.
const PhoneDigits = 10

// Sentinel errors for caller-checkable validation failures.
var (
	ErrEmptyName             = errors.New("field: name cannot be empty")
	ErrInvalidPhoneFormat    = errors.New("field: invalid phone number format, must be 10 digits")
	ErrInvalidBirthdayFormat = errors.New("field: invalid birthday format (DD.MM.YYYY)")
)

// Kind identifies which variant a Field holds.
type Kind int

const (
	KindName Kind = iota + 1
	KindPhone
	KindBirthday
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	case KindBirthday:
		return "birthday"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is a validated value with a canonical string form.
// It is implemented only by Name, Phone and Birthday.
type Field interface {
	Kind() Kind
	String() string
	isField()
}

// Verify at compile time that the variants implement Field.
var (
	_ Field = Name("")
	_ Field = Phone("")
	_ Field = Birthday{}
)

// Name is a contact name.
type Name string

// NewName returns s as a Name, rejecting the empty string.
func NewName(s string) (Name, error) {
	if s == "" {
		return "", ErrEmptyName
	}
	return Name(s), nil
}

func (Name) Kind() Kind       { return KindName }
func (n Name) String() string { return string(n) }
func (Name) isField()         {}

// Phone is a phone number of exactly PhoneDigits decimal digits.
type Phone string

// NewPhone validates s and returns it as a Phone.
func NewPhone(s string) (Phone, error) {
	if !isPhoneNumber(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhoneFormat, s)
	}
	return Phone(s), nil
}

func isPhoneNumber(s string) bool {
	if len(s) != PhoneDigits {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (Phone) Kind() Kind       { return KindPhone }
func (p Phone) String() string { return string(p) }
func (Phone) isField()         {}

// Birthday is a calendar date without a time of day.
type Birthday struct {
	date time.Time
}

// NewBirthday parses s in DD.MM.YYYY form. Out-of-range days such as 31.02
// are rejected.
func NewBirthday(s string) (Birthday, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidBirthdayFormat, s)
	}
	return Birthday{date: t}, nil
}

// BirthdayOf returns the Birthday falling on t's calendar date.
func BirthdayOf(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Date returns the birthday as midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// IsZero reports whether b is the zero Birthday returned alongside an error.
// A parsed 01.01.0001 is also zero; record holders track presence separately.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

func (Birthday) Kind() Kind { return KindBirthday }

func (b Birthday) String() string { return b.date.Format(DateLayout) }

func (Birthday) isField() {}
