// Command gatsp evolves a route over a small distance matrix with the
// genetic solver from package tsp and prints the best route found.
//
// Usage:
//
//	gatsp [-config run.yaml] [-instance reference|random] [-vertices n]
//	      [-population 70] [-tournament 5] [-generations 10]
//	      [-crossover 0.8] [-mutation 0.1] [-seed s] [-lang en|ru] [-verbose]
//
// Flags override values from the YAML file; the file overrides defaults.
// A zero seed picks one from the clock; the seed in use is logged.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gatsp/tsp"
)

func main() {
	log.SetPrefix("gatsp: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	dist, err := buildInstance(cfg)
	if err != nil {
		return fmt.Errorf("instance %q: %w", cfg.Instance, err)
	}

	printer, err := newPrinter(cfg.Lang)
	if err != nil {
		return err
	}
	rep := &reporter{p: printer, w: stdout, dist: dist}

	opts := cfg.options()
	if cfg.Verbose {
		opts.Observer = rep.generation
	}

	var (
		logger = log.New(stderr, "gatsp: ", log.LstdFlags)
		runID  = uuid.NewString()
		start  = time.Now()
	)
	logger.Printf("run %s: instance=%s vertices=%d population=%d generations=%d seed=%d",
		runID, cfg.Instance, dist.Rows(), cfg.PopulationSize, cfg.Generations, cfg.Seed)

	res, err := tsp.Evolve(dist, opts)
	if err != nil {
		return fmt.Errorf("run %s: %w", runID, err)
	}

	if cfg.Verbose {
		rep.history(res.History)
	}
	rep.result(res)
	logger.Printf("run %s: done in %s, best weight %g", runID, time.Since(start).Round(time.Microsecond), res.Weight)

	return nil
}
