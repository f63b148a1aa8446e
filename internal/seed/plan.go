package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
)

// Plan describes the workouts and benchmark populations to load, grouped
// by season, competition and division.
type Plan struct {
	Seasons []SeasonPlan `yaml:"seasons"`
}

// SeasonPlan holds one season's competitions.
type SeasonPlan struct {
	Season       int               `yaml:"season"`
	Competitions []CompetitionPlan `yaml:"competitions"`
}

// CompetitionPlan holds one competition's divisions.
type CompetitionPlan struct {
	Competition string         `yaml:"competition"`
	Divisions   []DivisionPlan `yaml:"divisions"`
}

// DivisionPlan holds one division's workouts.
type DivisionPlan struct {
	Division string        `yaml:"division"`
	Workouts []WorkoutPlan `yaml:"workouts"`
}

// WorkoutPlan describes one workout and the envelope of its generated
// benchmark population: Best is the rank 1 score, Worst the score at rank
// Population, and the ranks between are evenly spaced. For TIME_REPS
// workouts Best and Worst are rep counts and BestTime and WorstTime give
// the elapsed times generated alongside them.
type WorkoutPlan struct {
	Slug        string  `yaml:"slug"`
	Name        string  `yaml:"name"`
	Discipline  string  `yaml:"discipline"`
	Description string  `yaml:"description"`
	Population  int     `yaml:"population"`
	Best        float64 `yaml:"best"`
	Worst       float64 `yaml:"worst"`
	BestTime    int     `yaml:"best_time"`
	WorstTime   int     `yaml:"worst_time"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &plan, nil
}

// Validate applies defaults, normalizes competition and division names and
// checks every workout's envelope. It mutates the plan in place.
func (p *Plan) Validate() error {
	if len(p.Seasons) == 0 {
		return fmt.Errorf("plan holds no seasons")
	}
	for si := range p.Seasons {
		season := &p.Seasons[si]
		if season.Season == 0 {
			return fmt.Errorf("seasons[%d]: season year required", si)
		}
		for ci := range season.Competitions {
			comp := &season.Competitions[ci]
			canonical, ok := models.NormalizeCompetition(comp.Competition)
			if !ok {
				return fmt.Errorf("season %d: unknown competition %q", season.Season, comp.Competition)
			}
			comp.Competition = canonical

			for di := range comp.Divisions {
				div := &comp.Divisions[di]
				canonical, ok := models.NormalizeDivision(div.Division)
				if !ok {
					return fmt.Errorf("season %d %s: unknown division %q", season.Season, comp.Competition, div.Division)
				}
				div.Division = canonical

				for wi := range div.Workouts {
					w := &div.Workouts[wi]
					if err := w.validate(); err != nil {
						return fmt.Errorf("season %d %s %s: %w", season.Season, comp.Competition, div.Division, err)
					}
				}
			}
		}
	}
	return nil
}

func (w *WorkoutPlan) validate() error {
	if w.Slug == "" {
		return fmt.Errorf("workout slug required")
	}
	if w.Name == "" {
		return fmt.Errorf("workout %s: name required", w.Slug)
	}

	d, ok := scoring.ParseDiscipline(w.Discipline)
	if !ok {
		return fmt.Errorf("workout %s: unknown discipline %q", w.Slug, w.Discipline)
	}
	w.Discipline = string(d)

	if w.Population == 0 {
		w.Population = scoring.TopPopulation
	}
	if w.Population < 1 {
		return fmt.Errorf("workout %s: population must be positive", w.Slug)
	}

	// Best must actually be the better score under the workout's ordering.
	switch d {
	case scoring.DisciplineTime:
		if w.Best <= 0 || w.Worst < w.Best {
			return fmt.Errorf("workout %s: TIME envelope needs 0 < best <= worst", w.Slug)
		}
	case scoring.DisciplineReps:
		if w.Worst < 0 || w.Best < w.Worst {
			return fmt.Errorf("workout %s: REPS envelope needs best >= worst >= 0", w.Slug)
		}
	case scoring.DisciplineLoad:
		if w.Worst <= 0 || w.Best < w.Worst {
			return fmt.Errorf("workout %s: LOAD envelope needs best >= worst > 0", w.Slug)
		}
	case scoring.DisciplineTimeReps:
		if w.Worst < 0 || w.Best < w.Worst {
			return fmt.Errorf("workout %s: TIME_REPS envelope needs best >= worst >= 0", w.Slug)
		}
		if w.BestTime <= 0 || w.WorstTime < w.BestTime {
			return fmt.Errorf("workout %s: TIME_REPS needs 0 < best_time <= worst_time", w.Slug)
		}
	}
	return nil
}
