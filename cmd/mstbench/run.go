package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/katalvlaran/mstlab/compare"
	"github.com/katalvlaran/mstlab/edgelist"
)

// resultFile is the report name written under --graphpath.
const resultFile = "test-result.txt"

type runCmd struct {
	Graphpath  string   `help:"Directory holding *.edgelist files." default:"." type:"path" env:"MSTBENCH_GRAPHPATH"`
	Numreps    int      `help:"Repetitions per file." default:"1" env:"MSTBENCH_NUMREPS"`
	Algorithms []string `help:"Algorithms to run; all when empty." env:"MSTBENCH_ALGORITHMS"`
	Tolerance  float64  `help:"Allowed difference between tree weights." default:"1e-9"`
}

// Run times the selected algorithms on every file and writes the TSV report.
// It stops at the first file whose algorithms fail or disagree.
func (c *runCmd) Run(log *logging.Logger) error {
	if c.Numreps < 1 {
		return fmt.Errorf("run: numreps must be at least 1, got %d", c.Numreps)
	}
	algs, err := compare.Select(c.Algorithms...)
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(c.Graphpath, "*.edgelist"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("run: no *.edgelist files found in %s", c.Graphpath)
	}

	out, err := os.Create(filepath.Join(c.Graphpath, resultFile))
	if err != nil {
		return err
	}
	defer out.Close()
	w := bufio.NewWriter(out)
	if err := compare.WriteHeader(w); err != nil {
		return err
	}

	for _, file := range files {
		log.Infof("testing %s ...", file)
		for rep := 0; rep < c.Numreps; rep++ {
			g, err := edgelist.ReadFile(file)
			if err != nil {
				return err
			}
			report := compare.Run(g, algs)
			if err := report.Agree(c.Tolerance); err != nil {
				log.Errorf("%s: %v", file, err)
				return err
			}
			if err := report.WriteTSV(w, rep, filepath.Base(file)); err != nil {
				return err
			}
			log.Debugf("%s rep %d: %d algorithms agree", file, rep, len(report.Results))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return out.Close()
}
