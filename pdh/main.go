package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Janislav/project-diamond-hands/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// .env holds ambient CLI configuration (PDH_* variables); the engine
	// itself reads no environment.
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.Setup()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion declares shell completion for pdh. It takes over and exits the
// process when invoked by the shell completion machinery.
func completion() {
	logs := predict.Files("*.csv")
	pdh := &complete.Command{
		Flags: map[string]complete.Predictor{
			"v": predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"process": {
				Args:  logs,
				Flags: map[string]complete.Predictor{"o": predict.Files("*")},
			},
			"report": {
				Args:  logs,
				Flags: map[string]complete.Predictor{"c": predict.Set{"EUR", "USD", "GBP"}},
			},
			"check": {Args: logs},
			"topic": {Args: predict.Set{"readme", "format", "disputes", "*"}},
		},
	}
	pdh.Complete("pdh")
}
