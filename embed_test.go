package assistant

import (
	"strings"
	"testing"

	"github.com/smileynet/assistant/internal/reminder"
)

func TestHelpText(t *testing.T) {
	help := HelpText()

	if !strings.HasPrefix(help, "How can I help you?") {
		t.Errorf("help text starts with %q", strings.SplitN(help, "\n", 2)[0])
	}
	if strings.HasSuffix(help, "\n") {
		t.Error("help text should not end with a newline")
	}
	for _, cmd := range []string{"add ", "change ", "phone ", "all ", "add-birthday ", "show-birthday ", "birthdays ", "close ", "exit "} {
		if !strings.Contains(help, " "+cmd) {
			t.Errorf("help text does not mention %q", cmd)
		}
	}
}

func TestDemoUsers(t *testing.T) {
	// Given the embedded demo list
	// When it is parsed
	people, err := reminder.ParsePeople(DemoUsers)
	if err != nil {
		t.Fatalf("ParsePeople(DemoUsers) error = %v", err)
	}

	// Then every entry has a name and a birthday
	if len(people) != 5 {
		t.Fatalf("got %d demo users, want 5", len(people))
	}
	for _, p := range people {
		if p.Name == "" || p.Birthday.IsZero() {
			t.Errorf("incomplete demo user %+v", p)
		}
	}
}
