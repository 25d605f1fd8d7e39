// Package bot implements the assistant's command dispatcher and read-eval loop.
package bot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/smileynet/assistant/internal/addressbook"
	"github.com/smileynet/assistant/internal/reminder"
	"github.com/smileynet/assistant/internal/ui"
)

// Fixed replies.
const (
	MsgWelcome          = "Welcome to the assistant bot!"
	MsgStart            = "Enter 'hello' to get started."
	MsgGoodbye          = "Good bye!"
	MsgInvalidCommand   = "Invalid command."
	MsgProperParameters = "Give me proper parameters, please."
	MsgDefaultHelp      = "How can I help you?"
)

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "Enter a command: "

// MaxLineBytes bounds a single input line. Longer lines are rejected and
// discarded without ending the session.
const MaxLineBytes = 64 * 1024

// State is the dispatcher's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// ReplyKind selects how a reply is styled.
type ReplyKind int

const (
	KindText ReplyKind = iota
	KindError
	KindReport
)

// Reply is the outcome of executing one input line.
type Reply struct {
	Text string
	Kind ReplyKind
	Done bool
}

// Bot dispatches text commands against an address book.
// It is not safe for concurrent use.
type Bot struct {
	book     *addressbook.Book
	clock    clock.Clock
	log      *zap.Logger
	styles   ui.Styles
	prompt   string
	help     string
	reminder reminder.Options
	commands map[string]command
	state    State
}

// Option configures a Bot.
type Option func(*Bot)

// WithClock sets the clock used to determine today's date.
func WithClock(c clock.Clock) Option {
	return func(b *Bot) { b.clock = c }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) { b.log = l }
}

// WithStyles sets the output styles used by Run.
func WithStyles(s ui.Styles) Option {
	return func(b *Bot) { b.styles = s }
}

// WithPrompt sets the text printed before each line is read.
func WithPrompt(p string) Option {
	return func(b *Bot) { b.prompt = p }
}

// WithHelp sets the reply to the hello command.
func WithHelp(text string) Option {
	return func(b *Bot) { b.help = text }
}

// WithReminderOptions sets the window and weekend policy of the birthdays command.
func WithReminderOptions(o reminder.Options) Option {
	return func(b *Bot) { b.reminder = o }
}

// New creates a Bot operating on book.
func New(book *addressbook.Book, opts ...Option) *Bot {
	b := &Bot{
		book:     book,
		clock:    clock.New(),
		log:      zap.NewNop(),
		prompt:   DefaultPrompt,
		help:     MsgDefaultHelp,
		reminder: reminder.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.commands = b.commandTable()
	return b
}

// State returns the current lifecycle state.
func (b *Bot) State() State { return b.state }

// ParseInput splits line on whitespace into a lowercased command and its arguments.
// A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(strings.TrimSpace(fields[0])), fields[1:]
}

// Execute runs a single input line and returns the reply. Handler errors are
// converted to replies here; Execute itself never fails.
func (b *Bot) Execute(line string) Reply {
	if b.state == StateTerminated {
		return Reply{Done: true}
	}

	name, args := ParseInput(line)
	if name == "" {
		return Reply{}
	}
	b.log.Debug("dispatch", zap.String("command", name), zap.Int("args", len(args)))

	if name == "close" || name == "exit" {
		b.state = StateTerminated
		return Reply{Text: MsgGoodbye, Done: true}
	}

	cmd, ok := b.commands[name]
	if !ok {
		return Reply{Text: MsgInvalidCommand, Kind: KindError}
	}

	text, err := cmd.run(args)
	if err != nil {
		if isExpected(err) {
			b.log.Debug("command rejected", zap.String("command", name), zap.Error(err))
		} else {
			b.log.Warn("command failed", zap.String("command", name), zap.Error(err))
		}
		return Reply{Text: errorReply(err), Kind: KindError}
	}
	return Reply{Text: text, Kind: cmd.kind}
}

// Run greets the user, then reads commands from r and writes replies to w
// until close/exit or end of input.
func (b *Bot) Run(r io.Reader, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "%s\n\n%s\n\n", b.styles.Info(MsgWelcome), b.styles.Info(MsgStart))

	br := bufio.NewReader(r)
	for {
		_, _ = fmt.Fprint(w, b.styles.Prompt(b.prompt))
		line, tooLong, err := readLine(br)
		if err != nil {
			_, _ = fmt.Fprintln(w)
			if errors.Is(err, io.EOF) {
				b.log.Debug("end of input")
				return nil
			}
			return fmt.Errorf("bot: reading input: %w", err)
		}

		var reply Reply
		if tooLong {
			b.log.Debug("input line too long", zap.Int("limit", MaxLineBytes))
			reply = Reply{Text: MsgProperParameters, Kind: KindError}
		} else {
			reply = b.Execute(line)
		}
		if reply.Text != "" {
			_, _ = fmt.Fprintln(w, b.render(reply))
		}
		if reply.Done {
			return nil
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineBytes is consumed in full and reported as tooLong with no text.
func readLine(br *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineBytes {
				tooLong = true
				buf = nil
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

func (b *Bot) render(r Reply) string {
	switch r.Kind {
	case KindError:
		return b.styles.Error(r.Text)
	case KindReport:
		lines := strings.Split(r.Text, "\n")
		for i, l := range lines {
			lines[i] = b.styles.ReportLine(l)
		}
		return strings.Join(lines, "\n")
	default:
		return r.Text
	}
}
