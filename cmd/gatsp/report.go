package main

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/gatsp/matrix"
	"github.com/katalvlaran/gatsp/tsp"
)

// Format keys double as the English text.
const (
	msgGeneration = "Generation %d:\n"
	msgPopulation = "Current population:\n"
	msgIndividual = "%s - Weight: %v\n"
	msgStats      = "Population %d: best %v, mean %.2f, std %.2f, distinct %d\n"
	msgBest       = "Best route: %s - Weight: %v\n"
	msgInfeasible = "The best route uses a missing edge.\n"
)

var russian = map[string]string{
	msgGeneration: "Эпоха %d:\n",
	msgPopulation: "Текущая популяция:\n",
	msgIndividual: "%s - Вес: %v\n",
	msgStats:      "Популяция %d: лучший %v, среднее %.2f, откл. %.2f, различных %d\n",
	msgBest:       "Лучший маршрут: %s - Вес: %v\n",
	msgInfeasible: "Лучший маршрут проходит по отсутствующему ребру.\n",
}

func init() {
	for key, msg := range russian {
		if err := message.SetString(language.Russian, key, msg); err != nil {
			panic(fmt.Sprintf("catalog %q: %v", key, err))
		}
	}
}

func newPrinter(lang string) (*message.Printer, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("lang %q: %w", lang, err)
	}

	return message.NewPrinter(tag), nil
}

type reporter struct {
	p    *message.Printer
	w    io.Writer
	dist matrix.Matrix
}

// generation is a tsp.Observer printing every individual with its weight.
// Generations are numbered from 1 in the report.
func (r *reporter) generation(g int, pop tsp.Population) {
	r.p.Fprintf(r.w, msgGeneration, g+1)
	r.p.Fprintf(r.w, msgPopulation)
	for _, t := range pop {
		w, err := tsp.Weight(r.dist, t)
		if err != nil {
			fmt.Fprintf(r.w, "%s - %v\n", t, err)
			continue
		}
		r.p.Fprintf(r.w, msgIndividual, t, w)
	}
}

// history prints one summary line per generation boundary; population 0 is
// the initial one.
func (r *reporter) history(h []tsp.GenerationStats) {
	for _, s := range h {
		r.p.Fprintf(r.w, msgStats, s.Generation, s.Best, s.Mean, s.StdDev, s.Distinct)
	}
}

func (r *reporter) result(res tsp.Result) {
	r.p.Fprintf(r.w, msgBest, res.Tour, res.Weight)
	if !res.Feasible {
		r.p.Fprintf(r.w, msgInfeasible)
	}
}
