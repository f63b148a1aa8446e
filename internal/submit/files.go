package submit

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/CatoAkay/cf-benchmark/internal/models"
	"github.com/CatoAkay/cf-benchmark/internal/scoring"
)

// ResultFile is one YAML file of an athlete's scores for one
// (season, competition, division) scope. Workouts are referenced by slug;
// the slug-to-ID resolution happens against the server's workout catalog.
type ResultFile struct {
	Athlete     string       `yaml:"athlete"`
	DisplayName string       `yaml:"display_name"`
	Season      int          `yaml:"season"`
	Competition string       `yaml:"competition"`
	Division    string       `yaml:"division"`
	Results     []FileResult `yaml:"results"`
}

// FileResult is one score line of a result file. Fields are pointers so an
// absent value stays absent instead of becoming zero.
type FileResult struct {
	Workout         string   `yaml:"workout"`
	TimeSeconds     *int     `yaml:"time_seconds"`
	Reps            *int     `yaml:"reps"`
	LoadKg          *float64 `yaml:"load_kg"`
	TiebreakSeconds *int     `yaml:"tiebreak_seconds"`
}

// Score assembles the scoring value carried by this line.
func (r FileResult) Score() scoring.Score {
	return scoring.Score{
		TimeSeconds:     r.TimeSeconds,
		Reps:            r.Reps,
		LoadKg:          r.LoadKg,
		TiebreakSeconds: r.TiebreakSeconds,
	}
}

// ParseResultFile parses and validates one result file. Competition and
// division names are normalized to their canonical spellings.
func ParseResultFile(data []byte) (*ResultFile, error) {
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}

	if rf.Season == 0 {
		return nil, fmt.Errorf("season required")
	}
	comp, ok := models.NormalizeCompetition(rf.Competition)
	if !ok {
		return nil, fmt.Errorf("unknown competition %q", rf.Competition)
	}
	rf.Competition = comp
	div, ok := models.NormalizeDivision(rf.Division)
	if !ok {
		return nil, fmt.Errorf("unknown division %q", rf.Division)
	}
	rf.Division = div

	if len(rf.Results) == 0 {
		return nil, fmt.Errorf("file holds no results")
	}
	for i, r := range rf.Results {
		if r.Workout == "" {
			return nil, fmt.Errorf("results[%d]: workout slug required", i)
		}
		if err := scoring.CheckRanges(r.Score()); err != nil {
			return nil, fmt.Errorf("results[%d] (%s): %w", i, r.Workout, err)
		}
	}
	return &rf, nil
}
