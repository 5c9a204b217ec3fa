package engine

import (
	"math/rand"
	"sort"
	"time"

	"github.com/mkoppen/ceilgrid/internal/model"
)

// geneticMaxGridDim bounds rows and cols explored by the genetic search.
const geneticMaxGridDim = 20

// individual is one candidate grid in the population.
type individual struct {
	rows, cols  int
	panelLength float64
	panelWidth  float64
	fitness     float64
}

// geneticSearch explores the same solution space as the exhaustive search
// stochastically. It shares the scoring function, so its fitness ordering
// matches the exhaustive ranking, but it carries no optimality guarantee
// and repeat runs differ unless the seed is fixed.
type geneticSearch struct {
	settings    model.SearchSettings
	ceiling     model.CeilingDimensions
	spacing     model.PanelSpacing
	availLength float64
	availWidth  float64
	cfg         model.GeneticConfig
	rng         *rand.Rand
}

func newGeneticSearch(settings model.SearchSettings, ceiling model.CeilingDimensions, spacing model.PanelSpacing, availLength, availWidth float64) *geneticSearch {
	cfg := settings.Genetic
	if cfg.PopulationSize <= 0 {
		cfg = model.DefaultGeneticConfig()
		cfg.Seed = settings.Genetic.Seed
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &geneticSearch{
		settings:    settings,
		ceiling:     ceiling,
		spacing:     spacing,
		availLength: availLength,
		availWidth:  availWidth,
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// panelDims computes the panel dimensions for a rows x cols grid and
// reports whether they satisfy positivity and the maximum panel size.
func (g *geneticSearch) panelDims(rows, cols int) (panelLength, panelWidth float64, ok bool) {
	gap := g.spacing.PanelGapMM
	panelLength = (g.availLength - float64(rows-1)*gap) / float64(rows)
	panelWidth = (g.availWidth - float64(cols-1)*gap) / float64(cols)
	ok = panelLength > 0 && panelLength <= MaxPanelDimensionMM &&
		panelWidth > 0 && panelWidth <= MaxPanelDimensionMM
	return panelLength, panelWidth, ok
}

func (g *geneticSearch) newIndividual(rows, cols int) (individual, bool) {
	panelLength, panelWidth, ok := g.panelDims(rows, cols)
	if !ok {
		return individual{}, false
	}
	return individual{
		rows:        rows,
		cols:        cols,
		panelLength: panelLength,
		panelWidth:  panelWidth,
		fitness: score(panelWidth, panelLength, rows*cols,
			g.settings.TargetAspectRatio, g.settings.Strategy, g.availLength, g.availWidth),
	}, true
}

// initPopulation seeds random grids in [1, geneticMaxGridDim] per axis.
// Invalid grids are skipped, so the population may come up short of the
// configured size when the ceiling admits few valid grids.
func (g *geneticSearch) initPopulation() []individual {
	population := make([]individual, 0, g.cfg.PopulationSize)
	attempts := g.cfg.PopulationSize * 10
	for i := 0; i < attempts && len(population) < g.cfg.PopulationSize; i++ {
		rows := 1 + g.rng.Intn(geneticMaxGridDim)
		cols := 1 + g.rng.Intn(geneticMaxGridDim)
		if ind, ok := g.newIndividual(rows, cols); ok {
			population = append(population, ind)
		}
	}
	return population
}

// tournamentSelect picks the fittest of TournamentSize individuals sampled
// uniformly at random with replacement.
func (g *geneticSearch) tournamentSelect(population []individual) individual {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.cfg.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return best
}

func clampGridDim(v int) int {
	if v < 1 {
		return 1
	}
	if v > geneticMaxGridDim {
		return geneticMaxGridDim
	}
	return v
}

// run executes the full generation count with no early stop and returns
// the final population sorted by fitness descending. An empty result means
// no valid grid was ever found.
func (g *geneticSearch) run() []individual {
	population := g.initPopulation()
	if len(population) == 0 {
		return nil
	}

	for gen := 0; gen < g.cfg.Generations; gen++ {
		selectCount := len(population) / 2
		if selectCount < 1 {
			selectCount = 1
		}
		selected := make([]individual, 0, selectCount)
		for len(selected) < selectCount {
			selected = append(selected, g.tournamentSelect(population))
		}

		newPop := make([]individual, 0, g.cfg.PopulationSize)
		for len(newPop) < g.cfg.PopulationSize {
			parent1 := selected[g.rng.Intn(len(selected))]
			parent2 := selected[g.rng.Intn(len(selected))]

			rows := (parent1.rows + parent2.rows) / 2
			cols := (parent1.cols + parent2.cols) / 2

			if g.rng.Float64() < g.cfg.MutationRate {
				rows += g.rng.Intn(5) - 2
				cols += g.rng.Intn(5) - 2
			}

			rows = clampGridDim(rows)
			cols = clampGridDim(cols)

			child, ok := g.newIndividual(rows, cols)
			if !ok {
				// Invalid offspring: the first parent survives unchanged.
				child = parent1
			}
			newPop = append(newPop, child)
		}
		population = newPop
	}

	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})
	return population
}

// computeGenetic runs the genetic search and converts its final population
// into the engine's candidate list, deduplicated by grid shape so
// Alternates does not report the same layout repeatedly.
func (e *Engine) computeGenetic(ceiling model.CeilingDimensions, spacing model.PanelSpacing, availLength, availWidth float64) (model.PanelLayout, error) {
	ga := newGeneticSearch(e.Settings, ceiling, spacing, availLength, availWidth)
	population := ga.run()
	if len(population) == 0 {
		return model.PanelLayout{}, &NoValidLayoutError{MaxPanelMM: MaxPanelDimensionMM}
	}

	e.candidates = nil
	type gridKey struct{ rows, cols int }
	seen := make(map[gridKey]bool)
	for _, ind := range population {
		key := gridKey{ind.rows, ind.cols}
		if seen[key] {
			continue
		}
		seen[key] = true
		layout := model.NewPanelLayout(ceiling, ind.panelLength, ind.panelWidth, ind.rows, ind.cols)
		e.candidates = append(e.candidates, ScoredLayout{Layout: layout, Score: ind.fitness})
	}

	return e.candidates[0].Layout, nil
}

// OptimizeGenetic is a convenience wrapper that runs one genetic search
// with the given settings regardless of settings.Algorithm.
func OptimizeGenetic(settings model.SearchSettings, ceiling model.CeilingDimensions, spacing model.PanelSpacing) (model.PanelLayout, error) {
	settings.Algorithm = model.AlgorithmGenetic
	return New(settings).Compute(ceiling, spacing)
}
