package submit

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/CatoAkay/cf-benchmark/internal/models"
)

// Stats tracks submission progress.
type Stats struct {
	FilesTotal     int
	FilesSubmitted int
	FilesSkipped   int
	FilesErrored   int

	ResultsSent     int
	ResultsInserted int
	ResultsRejected int
	RejectedDetails []string
}

// Submitter walks a directory of YAML result files and sends each new one
// to the benchmark server as a batch.
type Submitter struct {
	client  *Client
	state   *StateDB
	root    string
	athlete string
	dryRun  bool
	log     *slog.Logger
	stats   Stats

	// catalogs caches slug-to-ID maps per (season, competition, division)
	// scope so a directory of files for one scope fetches the catalog once.
	catalogs map[string]map[string]string
}

// New creates a new Submitter. The athlete login is the fallback for files
// that do not carry their own athlete field.
func New(client *Client, state *StateDB, root, athlete string, dryRun bool, log *slog.Logger) *Submitter {
	return &Submitter{
		client:   client,
		state:    state,
		root:     root,
		athlete:  athlete,
		dryRun:   dryRun,
		log:      log,
		catalogs: make(map[string]map[string]string),
	}
}

// Run processes every .yaml and .yml file under the root directory in a
// stable order.
func (sb *Submitter) Run() (*Stats, error) {
	var files []string
	err := filepath.WalkDir(sb.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return &sb.stats, fmt.Errorf("walking %s: %w", sb.root, err)
	}
	sort.Strings(files)

	for _, f := range files {
		if err := sb.processFile(f); err != nil {
			return &sb.stats, err
		}
	}
	return &sb.stats, nil
}

// processFile submits one result file. File-local problems are logged and
// counted; only a failed send aborts the run.
func (sb *Submitter) processFile(path string) error {
	sb.stats.FilesTotal++

	relPath, err := filepath.Rel(sb.root, path)
	if err != nil {
		relPath = path
	}
	info, err := os.Stat(path)
	if err != nil {
		sb.log.Warn("stat failed", "file", path, "error", err)
		sb.stats.FilesErrored++
		return nil
	}
	hash, err := HashFile(path)
	if err != nil {
		sb.log.Warn("hash failed", "file", path, "error", err)
		sb.stats.FilesErrored++
		return nil
	}

	submitted, err := sb.state.IsSubmitted(relPath, info.Size(), hash)
	if err != nil {
		sb.log.Warn("state check failed", "file", path, "error", err)
		sb.stats.FilesErrored++
		return nil
	}
	if submitted {
		sb.stats.FilesSkipped++
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		sb.log.Warn("read failed", "file", path, "error", err)
		sb.stats.FilesErrored++
		return nil
	}
	file, err := ParseResultFile(data)
	if err != nil {
		sb.log.Warn("parse failed", "file", path, "error", err)
		sb.stats.FilesErrored++
		return nil
	}

	athlete := file.Athlete
	if athlete == "" {
		athlete = sb.athlete
	}
	if athlete == "" {
		sb.log.Warn("no athlete for file, set the athlete field or pass -athlete", "file", relPath)
		sb.stats.FilesErrored++
		return nil
	}

	if sb.dryRun {
		sb.log.Info("dry-run: would submit",
			"file", relPath, "athlete", athlete, "results", len(file.Results))
		return nil
	}

	catalog, err := sb.catalog(file.Season, file.Competition, file.Division)
	if err != nil {
		return fmt.Errorf("loading workout catalog for %s: %w", relPath, err)
	}

	batch := models.ResultBatch{Athlete: athlete, DisplayName: file.DisplayName}
	for _, r := range file.Results {
		id, ok := catalog[r.Workout]
		if !ok {
			sb.log.Warn("unknown workout slug", "file", relPath, "slug", r.Workout,
				"season", file.Season, "competition", file.Competition, "division", file.Division)
			sb.stats.FilesErrored++
			return nil
		}
		batch.Results = append(batch.Results, models.ResultSubmission{WorkoutID: id, Score: r.Score()})
	}

	resp, err := sb.client.SendBatch(batch)
	if err != nil {
		return fmt.Errorf("submitting %s: %w", relPath, err)
	}
	sb.stats.ResultsSent += resp.ResultsReceived
	sb.stats.ResultsInserted += resp.ResultsInserted
	sb.stats.ResultsRejected += resp.ResultsRejected
	sb.stats.RejectedDetails = append(sb.stats.RejectedDetails, resp.RejectedDetails...)

	if err := sb.state.MarkSubmitted(relPath, info.Size(), hash); err != nil {
		sb.log.Warn("failed to mark submitted", "file", relPath, "error", err)
	}
	sb.stats.FilesSubmitted++

	sb.log.Info("submitted",
		"file", relPath, "athlete", athlete,
		"inserted", resp.ResultsInserted, "rejected", resp.ResultsRejected)
	return nil
}

// catalog returns the slug-to-ID map for one scope, fetching it on first
// use.
func (sb *Submitter) catalog(season int, competition, division string) (map[string]string, error) {
	key := fmt.Sprintf("%d/%s/%s", season, competition, division)
	if c, ok := sb.catalogs[key]; ok {
		return c, nil
	}

	workouts, err := sb.client.FetchWorkouts(season, competition, division)
	if err != nil {
		return nil, err
	}
	c := make(map[string]string, len(workouts))
	for _, w := range workouts {
		c[w.Slug] = w.ID.String()
	}
	sb.catalogs[key] = c
	return c, nil
}
