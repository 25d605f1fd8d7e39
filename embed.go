// Package assistant provides embedded runtime resources: the bot help text
// and the demo user list for the standalone birthday report.
package assistant

import (
	_ "embed"
	"strings"
)

//go:embed data/help.txt
var rawHelp string

// DemoUsers is the YAML list of {name, birthday} entries printed by the
// standalone birthday report.
//
//go:embed data/users.yaml
var DemoUsers []byte

// HelpText returns the reply to the "hello" command.
func HelpText() string {
	return strings.TrimRight(rawHelp, "\n")
}
