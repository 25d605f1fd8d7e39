package field

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewName(t *testing.T) {
	n, err := NewName("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", n.String())
	assert.Equal(t, KindName, n.Kind())

	_, err = NewName("")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"ten digits", "1234567890", false},
		{"leading zeros", "0000000000", false},
		{"too short", "123456789", true},
		{"too long", "12345678901", true},
		{"letters", "12345abcde", true},
		{"formatted", "(123)45678", true},
		{"plus prefix", "+123456789", true},
		{"empty", "", true},
		{"unicode digits", "١٢٣٤٥٦٧٨٩٠", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, p.String())
			assert.Equal(t, KindPhone, p.Kind())
		})
	}
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"valid", "15.03.2030", time.Date(2030, time.March, 15, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "29.02.2024", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), false},
		{"not a leap year", "29.02.2023", time.Time{}, true},
		{"day out of range", "31.04.2020", time.Time{}, true},
		{"iso layout", "2020-03-15", time.Time{}, true},
		{"month first", "03/15/2020", time.Time{}, true},
		{"single digit day", "1.03.2020", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBirthdayFormat)
				assert.True(t, b.IsZero())
				return
			}
			require.NoError(t, err)
			assert.True(t, b.Date().Equal(tt.want), "Date() = %v, want %v", b.Date(), tt.want)
			assert.Equal(t, tt.input, b.String())
			assert.Equal(t, KindBirthday, b.Kind())
		})
	}
}

func TestBirthdayOf_DropsTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	b := BirthdayOf(time.Date(1990, time.July, 4, 23, 30, 0, 0, loc))

	assert.Equal(t, "04.07.1990", b.String())
	assert.Equal(t, time.UTC, b.Date().Location())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "name", KindName.String())
	assert.Equal(t, "phone", KindPhone.String())
	assert.Equal(t, "birthday", KindBirthday.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestProperty_PhoneRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[0-9]{10}`).Draw(t, "phone")

		p, err := NewPhone(s)
		if err != nil {
			t.Fatalf("NewPhone(%q) error = %v", s, err)
		}
		if p.String() != s {
			t.Fatalf("NewPhone(%q).String() = %q", s, p.String())
		}
	})
}

func TestProperty_PhoneRejectsInvalid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Filter(func(s string) bool {
			return !isPhoneNumber(s)
		}).Draw(t, "input")

		if _, err := NewPhone(s); !errors.Is(err, ErrInvalidPhoneFormat) {
			t.Fatalf("NewPhone(%q) error = %v, want ErrInvalidPhoneFormat", s, err)
		}
	})
}

func TestProperty_BirthdayRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		year := rapid.IntRange(1000, 9999).Draw(t, "year")
		month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))
		// Day 0 of the next month is the last day of this one.
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		day := rapid.IntRange(1, last).Draw(t, "day")

		s := fmt.Sprintf("%02d.%02d.%04d", day, int(month), year)
		b, err := NewBirthday(s)
		if err != nil {
			t.Fatalf("NewBirthday(%q) error = %v", s, err)
		}
		want := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if !b.Date().Equal(want) {
			t.Fatalf("NewBirthday(%q).Date() = %v, want %v", s, b.Date(), want)
		}
		if b.String() != s {
			t.Fatalf("NewBirthday(%q).String() = %q", s, b.String())
		}
	})
}
