// Package storage persists completed runs so they can be listed, plotted,
// and exported later. Only finished output is stored; in-flight simulation
// state never touches disk.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/regatta/internal/race"
	"github.com/san-kum/regatta/internal/report"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID               string                    `json:"id"`
	Mode             string                    `json:"mode"`
	Timestamp        time.Time                 `json:"timestamp"`
	Seed             int64                     `json:"seed"`
	Boats            int                       `json:"boats"`
	Finish           int                       `json:"finish"`
	WindGain         int                       `json:"wind_gain"`
	WindGainSolarRig int                       `json:"wind_gain_solar_rig"`
	SolarGain        int                       `json:"solar_gain"`
	Days             int                       `json:"days"`
	Summaries        map[string]report.Summary `json:"summaries"`
}

// Save writes one completed run under a fresh run ID: metadata.json plus one
// distances CSV per fleet (rows are days, columns are boats, held flat after
// each boat's arrival).
func (s *Store) Save(mode string, seed int64, cfg race.Config, out *race.Outcome) (string, error) {
	runID := fmt.Sprintf("%s_%d", mode, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:               runID,
		Mode:             mode,
		Timestamp:        time.Now(),
		Seed:             seed,
		Boats:            out.WindOnly.Size(),
		Finish:           cfg.Finish,
		WindGain:         cfg.WindGain,
		WindGainSolarRig: cfg.WindGainSolarRig,
		SolarGain:        cfg.SolarGain,
		Days:             out.Days,
		Summaries: map[string]report.Summary{
			race.WindOnly.String():  report.Summarize(out.WindOnly),
			race.WindSolar.String(): report.Summarize(out.WindSolar),
		},
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := s.saveFleet(runDir, out.WindOnly, out.Days); err != nil {
		return "", err
	}
	if err := s.saveFleet(runDir, out.WindSolar, out.Days); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) saveFleet(runDir string, f *race.Fleet, days int) error {
	path := filepath.Join(runDir, f.Rig().String()+".csv")
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"day"}
	for i := 0; i < f.Size(); i++ {
		header = append(header, fmt.Sprintf("b%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for day := 0; day <= days; day++ {
		row := []string{strconv.Itoa(day)}
		for _, b := range f.Boats() {
			row = append(row, strconv.Itoa(report.DistanceAt(b, day)))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadHistories reads one fleet's distances CSV back as [day][boat].
func (s *Store) LoadHistories(runID string, rig race.Rig) ([][]int, error) {
	path := filepath.Join(s.baseDir, runID, rig.String()+".csv")
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return [][]int{}, nil
	}

	days := make([][]int, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]int, 0, len(record)-1)
		for _, field := range record[1:] {
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("bad distance %q in %s: %w", field, path, err)
			}
			row = append(row, v)
		}
		days = append(days, row)
	}

	return days, nil
}
