package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/conduitqa/conduit-contract-tests/framework"
)

type commandParams struct {
	envName         string
	configFile      string
	schemaRoot      string
	generateSchemas bool
	filters         framework.RegexFilters
	debug           bool
	debugAll        bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.envName, "env", "", "environment to test against (dev, qa, prod); defaults to $TEST_ENV or dev")
	fs.StringVar(&c.configFile, "config", "", "optional yaml file with configuration overrides")
	fs.StringVar(&c.schemaRoot, "schemas", "", "root directory for response schema files")
	fs.BoolVar(&c.generateSchemas, "generate-schemas", false, "regenerate schema files from the actual responses")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}

// rerunCommand builds a copy-pasteable command line that reruns exactly the
// tests that failed.
func (c commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	var b commandBuilder
	b.add(program)
	if c.envName != "" {
		b.add("-env", c.envName)
	}
	if c.configFile != "" {
		b.add("-config", c.configFile)
	}
	b.add("-debug")
	for _, f := range failures {
		b.add("-run", "^"+f.TestID.String()+"$")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
