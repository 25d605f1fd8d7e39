package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/smileynet/assistant"
	"github.com/smileynet/assistant/internal/addressbook"
	"github.com/smileynet/assistant/internal/bot"
	"github.com/smileynet/assistant/internal/config"
	"github.com/smileynet/assistant/internal/field"
	"github.com/smileynet/assistant/internal/logging"
	"github.com/smileynet/assistant/internal/reminder"
	"github.com/smileynet/assistant/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Globals holds flags shared by every command.
type Globals struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Config  string           `help:"Extra config file, applied after the user and project files." type:"path" placeholder:"FILE"`
	Debug   bool             `help:"Log debug output to stderr." default:"false"`
	NoColor bool             `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// CLI is the top-level command structure for assistant.
type CLI struct {
	Globals

	Bot       BotCmd       `cmd:"" default:"1" help:"Start the interactive assistant bot (default)."`
	Birthdays BirthdaysCmd `cmd:"" help:"Print the upcoming week's birthdays for the built-in user list."`
}

// SetupError marks failures that happen before a command starts doing work,
// such as unreadable config.
type SetupError struct {
	Err error
}

func (e *SetupError) Error() string { return e.Err.Error() }

func (e *SetupError) Unwrap() error { return e.Err }

// loadConfig loads layered config from user and project paths with env
// overrides, then applies command-line flags.
func loadConfig(g *Globals) (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/assistant/config.yaml"),
		".assistant/config.yaml",
		g.Config,
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Apply CLI flag overrides.
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.NoColor {
		cfg.Bot.Color = string(ui.ColorNever)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// environment is what every command needs after setup.
type environment struct {
	cfg    *config.Config
	log    *zap.Logger
	styles ui.Styles
}

// setup loads config and builds the logger and output styles for stdout.
func setup(g *Globals, stdout, stderr io.Writer) (*environment, error) {
	cfg, err := loadConfig(g)
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	log, err := logging.New(cfg.Log.Level, stderr)
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	mode, err := ui.ParseColorMode(cfg.Bot.Color)
	if err != nil {
		return nil, &SetupError{Err: err}
	}
	return &environment{
		cfg:    cfg,
		log:    log,
		styles: ui.NewStyles(stdout, mode),
	}, nil
}

// BotCmd runs the interactive address-book bot on stdin and stdout.
type BotCmd struct{}

// Run executes the bot command.
func (c *BotCmd) Run(g *Globals) error {
	env, err := setup(g, os.Stdout, os.Stderr)
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}
	defer func() { _ = env.log.Sync() }()

	return c.run(os.Stdin, os.Stdout, env, clock.New())
}

// run wires a bot from env and drives it over in and out, enabling testable wiring.
func (c *BotCmd) run(in io.Reader, out io.Writer, env *environment, clk clock.Clock) error {
	b := bot.New(addressbook.New(),
		bot.WithClock(clk),
		bot.WithLogger(env.log),
		bot.WithStyles(env.styles),
		bot.WithPrompt(env.cfg.Bot.Prompt),
		bot.WithHelp(assistant.HelpText()),
		bot.WithReminderOptions(env.cfg.ReminderOptions()),
	)
	env.log.Debug("bot starting", zap.String("version", version))
	return b.Run(in, out)
}

// BirthdaysCmd prints the weekly birthday report for the embedded demo users.
type BirthdaysCmd struct {
	Today string `help:"Reference date instead of the current day." placeholder:"DD.MM.YYYY"`
}

// Run executes the birthdays command.
func (c *BirthdaysCmd) Run(g *Globals) error {
	env, err := setup(g, os.Stdout, os.Stderr)
	if err != nil {
		return fmt.Errorf("birthdays: %w", err)
	}
	defer func() { _ = env.log.Sync() }()

	return c.run(os.Stdout, env, clock.New())
}

// run prints the report for the demo users relative to clk or --today.
func (c *BirthdaysCmd) run(w io.Writer, env *environment, clk clock.Clock) error {
	today := clk.Now()
	if c.Today != "" {
		b, err := field.NewBirthday(c.Today)
		if err != nil {
			return &SetupError{Err: fmt.Errorf("birthdays: --today: %w", err)}
		}
		today = b.Date()
	}

	people, err := reminder.ParsePeople(assistant.DemoUsers)
	if err != nil {
		return fmt.Errorf("birthdays: %w", err)
	}
	env.log.Debug("birthday report",
		zap.Int("people", len(people)),
		zap.String("today", field.BirthdayOf(today).String()))

	groups := reminder.Upcoming(people, today, env.cfg.ReminderOptions())
	if len(groups) == 0 {
		_, _ = fmt.Fprintln(w, bot.MsgNoBirthdays)
		return nil
	}
	for _, grp := range groups {
		_, _ = fmt.Fprintln(w, env.styles.ReportLine(reminder.Line(grp)))
	}
	return nil
}

// Exit codes.
const (
	exitSuccess = 0
	exitRuntime = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *SetupError
	if errors.As(err, &se) {
		return exitSetup
	}
	return exitRuntime
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("assistant"),
		kong.Description("Address-book assistant bot and birthday reminder."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run(&cli.Globals)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
