package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatsp/builder"
	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

const (
	instanceReference = "reference"
	instanceRandom    = "random"

	defaultVertices  = 10
	defaultMaxWeight = 99
	defaultLang      = "en"
)

type config struct {
	PopulationSize       int     `yaml:"population_size"`
	TournamentSize       int     `yaml:"tournament_size"`
	Generations          int     `yaml:"generations"`
	CrossoverProbability float64 `yaml:"crossover_probability"`
	MutationProbability  float64 `yaml:"mutation_probability"`
	Seed                 int64   `yaml:"seed"`
	StartVertex          int     `yaml:"start_vertex"`
	Instance             string  `yaml:"instance"`
	Vertices             int     `yaml:"vertices"`
	MaxWeight            int     `yaml:"max_weight"`
	Lang                 string  `yaml:"lang"`
	Verbose              bool    `yaml:"verbose"`
}

func defaultConfig() config {
	o := tsp.DefaultOptions()

	return config{
		PopulationSize:       o.PopulationSize,
		TournamentSize:       o.TournamentSize,
		Generations:          o.Generations,
		CrossoverProbability: o.CrossoverProbability,
		MutationProbability:  o.MutationProbability,
		Instance:             instanceReference,
		Vertices:             defaultVertices,
		MaxWeight:            defaultMaxWeight,
		Lang:                 defaultLang,
	}
}

// parseConfig resolves defaults, then the optional YAML file, then every
// flag that was set explicitly on the command line.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	var (
		fs   = flag.NewFlagSet("gatsp", flag.ContinueOnError)
		path string
		fl   = defaultConfig()
	)
	fs.SetOutput(stderr)
	fs.StringVar(&path, "config", "", "YAML file with run settings")
	fs.IntVar(&fl.PopulationSize, "population", fl.PopulationSize, "population size (even)")
	fs.IntVar(&fl.TournamentSize, "tournament", fl.TournamentSize, "tournament size")
	fs.IntVar(&fl.Generations, "generations", fl.Generations, "number of generations")
	fs.Float64Var(&fl.CrossoverProbability, "crossover", fl.CrossoverProbability, "per-pair crossover probability")
	fs.Float64Var(&fl.MutationProbability, "mutation", fl.MutationProbability, "per-individual mutation probability")
	fs.Int64Var(&fl.Seed, "seed", fl.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&fl.StartVertex, "start", fl.StartVertex, "start vertex")
	fs.StringVar(&fl.Instance, "instance", fl.Instance, "instance: reference or random")
	fs.IntVar(&fl.Vertices, "vertices", fl.Vertices, "vertex count for the random instance")
	fs.IntVar(&fl.MaxWeight, "max-weight", fl.MaxWeight, "maximum edge weight for the random instance")
	fs.StringVar(&fl.Lang, "lang", fl.Lang, "report language (en, ru)")
	fs.BoolVar(&fl.Verbose, "verbose", fl.Verbose, "print every generation")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := defaultConfig()
	if path != "" {
		var err error
		if cfg, err = loadConfigFile(path, cfg); err != nil {
			return config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) { applyFlag(&cfg, fl, f.Name) })

	return cfg, cfg.validate()
}

// loadConfigFile decodes path over base; keys absent from the file keep
// their base value and unknown keys are rejected.
func loadConfigFile(path string, base config) (config, error) {
	f, err := os.Open(path)
	if err != nil {
		return config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&base); err != nil && !errors.Is(err, io.EOF) {
		return config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return base, nil
}

func applyFlag(cfg *config, fl config, name string) {
	switch name {
	case "population":
		cfg.PopulationSize = fl.PopulationSize
	case "tournament":
		cfg.TournamentSize = fl.TournamentSize
	case "generations":
		cfg.Generations = fl.Generations
	case "crossover":
		cfg.CrossoverProbability = fl.CrossoverProbability
	case "mutation":
		cfg.MutationProbability = fl.MutationProbability
	case "seed":
		cfg.Seed = fl.Seed
	case "start":
		cfg.StartVertex = fl.StartVertex
	case "instance":
		cfg.Instance = fl.Instance
	case "vertices":
		cfg.Vertices = fl.Vertices
	case "max-weight":
		cfg.MaxWeight = fl.MaxWeight
	case "lang":
		cfg.Lang = fl.Lang
	case "verbose":
		cfg.Verbose = fl.Verbose
	}
}

// validate covers CLI-only settings; solver settings are checked by tsp.NewEngine.
func (c config) validate() error {
	switch c.Instance {
	case instanceReference:
	case instanceRandom:
		if c.Vertices < 2 {
			return fmt.Errorf("config: vertices %d < 2", c.Vertices)
		}
		if c.MaxWeight < 1 || c.MaxWeight >= matrix.DefaultUnreachable {
			return fmt.Errorf("config: max weight %d outside [1,%d)", c.MaxWeight, matrix.DefaultUnreachable)
		}
	default:
		return fmt.Errorf("config: unknown instance %q (want %s or %s)", c.Instance, instanceReference, instanceRandom)
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("config: lang %q: %w", c.Lang, err)
	}

	return nil
}

func (c config) options() tsp.Options {
	o := tsp.DefaultOptions()
	o.PopulationSize = c.PopulationSize
	o.TournamentSize = c.TournamentSize
	o.Generations = c.Generations
	o.CrossoverProbability = c.CrossoverProbability
	o.MutationProbability = c.MutationProbability
	o.StartVertex = c.StartVertex
	o.Seed = c.Seed

	return o
}

func buildInstance(c config) (*matrix.Dense, error) {
	if c.Instance == instanceRandom {
		return builder.RandomComplete(c.Vertices, builder.WithSeed(c.Seed), builder.WithMaxWeight(c.MaxWeight))
	}

	return builder.Reference()
}
