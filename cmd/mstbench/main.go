// Command mstbench generates benchmark graphs and times every MST algorithm
// of mstlab on them.
//
//	mstbench gen 1000 2000 --dir graphs --seed 7
//	mstbench run --graphpath graphs --numreps 5
//
// gen writes one edge-list file per (edge count, density) pair. run reads every
// *.edgelist file under --graphpath, checks that all algorithms agree on the
// tree size and weight, and writes the timings to test-result.txt there.
package main

import (
	"os"

	"github.com/alecthomas/kong"
)

// configFile is the optional JSON file holding flag defaults.
const configFile = "~/.mstbench.json"

type cli struct {
	LogLevel string `help:"Log level (${enum})." enum:"critical,error,warning,notice,info,debug" default:"info" env:"MSTBENCH_LOG_LEVEL"`

	Gen genCmd `cmd:"" help:"Generate random connected edge-list graphs."`
	Run runCmd `cmd:"" help:"Time the MST algorithms on every edge-list file in a directory."`
}

func main() {
	var params cli
	ctx := kong.Parse(&params,
		kong.Name("mstbench"),
		kong.Description("Minimum spanning tree benchmark driver."),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, configFile),
	)

	log, err := newLogger(os.Stderr, params.LogLevel)
	ctx.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run(log))
}
