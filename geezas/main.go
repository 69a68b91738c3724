package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/cryptogeezas/club/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion; it exits the process when invoked by the
// shell's completion hook and is a no-op otherwise.
func completion() {
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"contribute": {Flags: map[string]complete.Predictor{
				"m": predict.Something,
				"a": predict.Nothing,
				"d": predict.Nothing,
			}},
			"buy": {Flags: map[string]complete.Predictor{
				"s":    predict.Set{"BTC", "ETH"},
				"q":    predict.Nothing,
				"p":    predict.Nothing,
				"fee":  predict.Nothing,
				"d":    predict.Nothing,
				"memo": predict.Nothing,
			}},
			"tx": {Flags: map[string]complete.Predictor{
				"by":   predict.Set{"occurred", "recorded"},
				"desc": predict.Nothing,
				"head": predict.Nothing,
				"tail": predict.Nothing,
			}},
			"summary": {Flags: dateFlags},
			"weekly":  {Flags: dateFlags},
			"roi":     {Flags: dateFlags},
		},
		Flags: map[string]complete.Predictor{
			"data":     predict.Dirs("*"),
			"members":  predict.Something,
			"currency": predict.Set{"AUD", "USD", "EUR"},
		},
	}
	c.Complete("geezas")
}
