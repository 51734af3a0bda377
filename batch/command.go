// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Command describes the program run for every level.
type Command struct {
	Path string
	Args []string
	Env  []string // appended to the current environment
	Dir  string
}

// ParseCommand splits s with shell quoting rules, e.g.
// `sh -c 'cat | tr a-z A-Z'` → {Path: "sh", Args: ["-c", "cat | tr a-z A-Z"]}.
func ParseCommand(s string) (Command, error) {
	parts, err := shlex.Split(s)
	if err != nil {
		return Command{}, batchErrorf("ParseCommand", err)
	}
	if len(parts) == 0 {
		return Command{}, batchErrorf("ParseCommand", ErrEmptyCommand)
	}

	return Command{Path: parts[0], Args: parts[1:]}, nil
}

// String renders the command line, quoting arguments that contain spaces.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, p := range append([]string{c.Path}, c.Args...) {
		if p == "" || strings.ContainsAny(p, " \t\n'\"") {
			p = fmt.Sprintf("%q", p)
		}
		parts = append(parts, p)
	}

	return strings.Join(parts, " ")
}
