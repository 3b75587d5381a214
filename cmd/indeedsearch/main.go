// Command indeedsearch searches Indeed job listings and prints the results that match a
// filter expression.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davidbarts/indeedsearch/internal/cli"
	"github.com/davidbarts/indeedsearch/pkg/version"
)

const progName = "indeedsearch"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(version.Detailed())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		printError(stderr, err)
	}
	return extractExitCode(err)
}

// extractExitCode maps an error from the root command to a process exit code.
// A *cli.ExitError anywhere in the chain supplies its own code; any other error is 1.
func extractExitCode(err error) int {
	if err == nil {
		return cli.ExitOK
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return cli.ExitFailure
}

// printError writes each line of err prefixed with the program name.
func printError(w io.Writer, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		if line == "" {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s: %s\n", progName, line)
	}
}
