package framework

import (
	"errors"
	"strings"
)

// reformatError cleans up multi-line assertion failure messages (testify
// indents them with leading tabs for the Go test runner's output format) so
// they read properly in our own console output.
func reformatError(err error) error {
	lines := strings.Split(err.Error(), "\n")
	if len(lines) == 1 {
		return err
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(strings.ReplaceAll(line, "\t", "    "), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return errors.New(strings.Join(lines, "\n"))
}
