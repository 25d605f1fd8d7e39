package bot

import (
	"fmt"
	"strings"

	"github.com/smileynet/assistant/internal/addressbook"
	"github.com/smileynet/assistant/internal/reminder"
)

// Handler runs a command with its arguments and returns the reply text.
type Handler func(args []string) (string, error)

type command struct {
	run  Handler
	kind ReplyKind
}

// Command replies.
const (
	MsgEmptyBook     = "Address Book is empty."
	MsgNoBirthdays   = "No upcoming birthdays."
	MsgContactAdded  = "New contact added."
	MsgBirthdayAdded = "Birthday added."
)

func (b *Bot) commandTable() map[string]command {
	return map[string]command{
		"hello":         {run: b.hello},
		"add":           {run: b.addContact},
		"change":        {run: b.changePhone},
		"phone":         {run: b.showPhones},
		"add-birthday":  {run: b.addBirthday},
		"show-birthday": {run: b.showBirthday},
		"all":           {run: b.showAll},
		"birthdays":     {run: b.birthdays, kind: KindReport},
	}
}

// hello ignores any arguments.
func (b *Bot) hello([]string) (string, error) {
	return b.help, nil
}

func (b *Bot) addContact(args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if r, ok := b.book.Find(name); ok {
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Phone added for existing contact %s.", name), nil
	}

	// Validate before inserting so a bad phone creates nothing.
	r, err := addressbook.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	b.book.Add(r)
	return MsgContactAdded, nil
}

func (b *Bot) changePhone(args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	r, err := b.find(name)
	if err != nil {
		return "", err
	}
	if err := r.ReplaceFirstPhone(phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number for %s updated to %s.", name, phone), nil
}

func (b *Bot) showPhones(args []string) (string, error) {
	if err := expectArgs(args, 1); err != nil {
		return "", err
	}
	r, err := b.find(args[0])
	if err != nil {
		return "", err
	}

	phones := r.Phones()
	out := make([]string, len(phones))
	for i, p := range phones {
		out[i] = p.String()
	}
	return fmt.Sprintf("Phone numbers for %s: %s", r.Name(), strings.Join(out, ", ")), nil
}

func (b *Bot) addBirthday(args []string) (string, error) {
	if err := expectArgs(args, 2); err != nil {
		return "", err
	}
	r, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return MsgBirthdayAdded, nil
}

func (b *Bot) showBirthday(args []string) (string, error) {
	if err := expectArgs(args, 1); err != nil {
		return "", err
	}
	r, err := b.find(args[0])
	if err != nil {
		return "", err
	}
	return r.ShowBirthday(), nil
}

func (b *Bot) showAll(args []string) (string, error) {
	if err := expectArgs(args, 0); err != nil {
		return "", err
	}
	if b.book.Len() == 0 {
		return MsgEmptyBook, nil
	}

	records := b.book.Records()
	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = r.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (b *Bot) birthdays(args []string) (string, error) {
	if err := expectArgs(args, 0); err != nil {
		return "", err
	}
	groups := b.book.BirthdaysThisWeek(b.clock.Now(), b.reminder)
	if len(groups) == 0 {
		return MsgNoBirthdays, nil
	}
	return reminder.Format(groups), nil
}

func (b *Bot) find(name string) (*addressbook.Record, error) {
	r, ok := b.book.Find(name)
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return r, nil
}
