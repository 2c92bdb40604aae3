// Package cmd implements the CLI application to process transaction logs.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	payments "github.com/Janislav/project-diamond-hands"
	"github.com/google/subcommands"
)

// Environment variables honored as defaults for the corresponding flags.
const (
	EnvVerbose  = "PDH_VERBOSE"
	EnvOutput   = "PDH_OUTPUT"
	EnvCurrency = "PDH_CURRENCY"
)

// Register the subcommands.
// A main package will call Register() to declare the subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "engine")
	c.Register(&checkCmd{}, "engine")

	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Verbose enables logging of skipped transactions to stderr.
var Verbose = flag.Bool("v", false, "log every skipped transaction and the rule that rejected it")

// Setup applies the global flags once they are parsed. The engine logs
// every transaction it skips; without -v those logs are discarded.
func Setup() {
	if *Verbose || envBool(EnvVerbose) {
		log.SetFlags(0)
		return
	}
	log.SetOutput(io.Discard)
}

func envBool(name string) bool {
	b, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && b
}

// envOr returns the value of the environment variable, or fallback when it
// is unset or empty.
func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// processLog feeds one transaction log file through the engine: the shared
// front half of every subcommand.
func processLog(path string) (*payments.Ledger, error) {
	txs, closeLog, err := payments.ReadTransactionsFile(path)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	ledger := payments.NewLedger()
	if err := ledger.Process(txs); err != nil {
		return nil, fmt.Errorf("processing %q: %w", path, err)
	}
	return ledger, nil
}
