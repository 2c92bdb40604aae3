package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	payments "github.com/Janislav/project-diamond-hands"
	"github.com/google/subcommands"
)

// processCmd holds the flags for the 'process' subcommand.
type processCmd struct {
	output string
}

func (*processCmd) Name() string { return "process" }
func (*processCmd) Synopsis() string {
	return "apply a transaction log and write the final account snapshot"
}
func (*processCmd) Usage() string {
	return `pdh process [-o <file>] <transactions.csv>

  Reads the transaction log, applies every transaction in order, and writes
  the final state of all accounts as CSV. A malformed record aborts the run
  with no output; transactions rejected by a business rule are skipped
  (run with -v to log them).

Usage Examples:
# Write the snapshot to stdout.
$ pdh process transactions.csv

# Write the snapshot to a file.
$ pdh process -o accounts.csv transactions.csv
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", envOr(EnvOutput, ""), "Write the snapshot to this file instead of stdout.")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one transaction log, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}

	ledger, err := processLog(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}

	if err := payments.EncodeAccounts(w, ledger.Accounts()); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
