package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	payments "github.com/Janislav/project-diamond-hands"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "apply a transaction log and report how many transactions were applied or skipped"
}
func (*checkCmd) Usage() string {
	return `pdh check <transactions.csv>

  Parses and applies the transaction log exactly like 'process', but instead
  of the account snapshot it prints a per-kind tally of applied and skipped
  transactions, and the first fatal input error if the log is malformed.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one transaction log, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}

	txs, closeLog, err := payments.ReadTransactionsFile(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeLog()

	ledger := payments.NewLedger()
	t := newTally()
	var fatal error
	for tx, err := range txs {
		if err != nil {
			fatal = err
			break
		}
		if err := ledger.Apply(tx); err != nil {
			log.Printf("skip %v", err)
			t.count(tx.What(), false)
		} else {
			t.count(tx.What(), true)
		}
	}

	printMarkdown(t.markdown(ledger.Size()))
	if fatal != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", fatal)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// kinds is the display order of the tally rows.
var kinds = []payments.Kind{
	payments.KindDeposit,
	payments.KindWithdrawal,
	payments.KindDispute,
	payments.KindResolve,
	payments.KindChargeback,
}

// tally counts applied and skipped transactions per kind.
type tally struct {
	applied map[payments.Kind]int
	skipped map[payments.Kind]int
}

func newTally() *tally {
	return &tally{
		applied: make(map[payments.Kind]int),
		skipped: make(map[payments.Kind]int),
	}
}

func (t *tally) count(kind payments.Kind, applied bool) {
	if applied {
		t.applied[kind]++
	} else {
		t.skipped[kind]++
	}
}

// markdown renders the tally as a markdown table.
func (t *tally) markdown(accounts int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transaction Log Check\n\n")
	fmt.Fprintf(&b, "| Kind | Applied | Skipped |\n")
	fmt.Fprintf(&b, "|:-----|--------:|--------:|\n")
	var applied, skipped int
	for _, kind := range kinds {
		fmt.Fprintf(&b, "| %s | %d | %d |\n", kind, t.applied[kind], t.skipped[kind])
		applied += t.applied[kind]
		skipped += t.skipped[kind]
	}
	fmt.Fprintf(&b, "| **total** | **%d** | **%d** |\n", applied, skipped)
	fmt.Fprintf(&b, "\n%d account(s) touched.\n", accounts)
	return b.String()
}
