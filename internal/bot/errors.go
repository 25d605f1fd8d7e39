package bot

import (
	"errors"
	"fmt"

	"github.com/smileynet/assistant/internal/addressbook"
	"github.com/smileynet/assistant/internal/field"
)

// Sentinel errors returned by command handlers.
var (
	ErrInvalidArgumentCount = errors.New("bot: invalid argument count")
	ErrContactNotFound      = errors.New("bot: contact not found")
)

// NotFoundError reports a command addressed to a contact that does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("bot: contact %q not found", e.Name)
}

func (e *NotFoundError) Unwrap() error { return ErrContactNotFound }

// expectArgs checks that exactly n arguments were given.
func expectArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidArgumentCount, len(args), n)
	}
	return nil
}

// errorReply converts a handler error into the text shown to the user.
// Everything except an unknown contact gets the same generic reply.
func errorReply(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("Contact %s not found.", nf.Name)
	}
	return MsgProperParameters
}

// isExpected reports whether err was caused by user input rather than a bug.
func isExpected(err error) bool {
	return errors.Is(err, ErrInvalidArgumentCount) ||
		errors.Is(err, ErrContactNotFound) ||
		errors.Is(err, field.ErrInvalidPhoneFormat) ||
		errors.Is(err, field.ErrInvalidBirthdayFormat) ||
		errors.Is(err, field.ErrEmptyName) ||
		errors.Is(err, addressbook.ErrPhoneNotFound)
}
