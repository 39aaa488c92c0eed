package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/evrell/spare/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Flags are
// gathered per command from its own flag set.
func completion() *complete.Command {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		flags := map[string]complete.Predictor{}
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			if f.Name == "f" {
				flags[f.Name] = predict.Files("*.jsonl")
				return
			}
			flags[f.Name] = predict.Nothing
		})
		sub[c.Name()] = &complete.Command{Flags: flags}
	}
	return &complete.Command{Sub: sub}
}

func main() {
	// Complete exits when invoked by the shell's completion machinery.
	completion().Complete("scs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
