package addressbook

import (
	"slices"
	"time"

	"github.com/smileynet/assistant/internal/reminder"
)

// Book maps contact names to records. Iteration follows insertion order.
// It is not safe for concurrent use.
type Book struct {
	records map[string]*Record
	order   []string
}

// New creates an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*Record)}
}

// Add stores r under its name, replacing any record with the same name.
// A replaced record keeps its original position.
func (b *Book) Add(r *Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Missing names are ignored.
func (b *Book) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
}

// Len returns the number of records.
func (b *Book) Len() int { return len(b.records) }

// Records returns the records in insertion order.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// BirthdaysThisWeek groups the records whose birthdays fall within the
// window starting today.
func (b *Book) BirthdaysThisWeek(today time.Time, opts reminder.Options) []reminder.Group {
	var people []reminder.Person
	for _, r := range b.Records() {
		bd, ok := r.Birthday()
		if !ok {
			continue
		}
		people = append(people, reminder.Person{Name: r.Name(), Birthday: bd.Date()})
	}
	return reminder.Upcoming(people, today, opts)
}
