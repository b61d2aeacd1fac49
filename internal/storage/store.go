package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"qubitsim/internal/engine"
)

// Store persists simulation runs under a base directory, one subdirectory
// per run holding metadata.json and series.csv.
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
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	DurationDays  int                `json:"duration_days"`
	ActivationDay int                `json:"activation_day"`
	Seed          int64              `json:"seed"`
	Ticks         int                `json:"ticks"`
	Metrics       map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg engine.Config, res *engine.Result, metrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("sim_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		DurationDays:  cfg.DurationDays,
		ActivationDay: cfg.ActivationDay,
		Seed:          cfg.Seed,
		Ticks:         res.Ticks(),
		Metrics:       metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "series.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"day", "fidelity_sc", "fidelity_ti", "temperature"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range res.Days {
		row := []string{
			strconv.FormatFloat(res.Days[i], 'f', 6, 64),
			strconv.FormatFloat(res.FidelitySC[i], 'f', 6, 64),
			strconv.FormatFloat(res.FidelityTI[i], 'f', 6, 64),
			strconv.FormatFloat(res.Temperature[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
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

// LoadSeries reads a saved run's four series back into a result value.
func (s *Store) LoadSeries(runID string) (*engine.Result, error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &engine.Result{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			return nil, fmt.Errorf("storage: malformed row %d in %s", i, csvPath)
		}

		vals := make([]float64, 4)
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: row %d col %d: %w", i, j, err)
			}
			vals[j] = v
		}

		res.Days = append(res.Days, vals[0])
		res.FidelitySC = append(res.FidelitySC, vals[1])
		res.FidelityTI = append(res.FidelityTI, vals[2])
		res.Temperature = append(res.Temperature, vals[3])
	}

	return res, nil
}
