package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Janislav/project-diamond-hands/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	currency string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "display a human-readable statement of the final account state"
}
func (*reportCmd) Usage() string {
	return `pdh report [-c <currency>] <transactions.csv>

  Processes the transaction log like 'process', then renders an account
  statement as markdown instead of CSV. The optional display currency only
  affects formatting; the engine itself is currency agnostic.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "c", envOr(EnvCurrency, ""), "Format amounts in this ISO 4217 currency (display only).")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one transaction log, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}

	ledger, err := processLog(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	statement := renderer.NewStatement(ledger.Accounts(), c.currency)
	printMarkdown(renderer.RenderStatement(statement))
	return subcommands.ExitSuccess
}
