package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/bifurc/internal/sweep"
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
	ID        string    `json:"id"`
	Map       string    `json:"map"`
	Timestamp time.Time `json:"timestamp"`
	X0        float64   `json:"x0"`
	RMin      float64   `json:"r_min"`
	RMax      float64   `json:"r_max"`
	RPoints   int       `json:"r_points"`
	Skip      int       `json:"skip"`
	Samples   int       `json:"samples"`
	Workers   int       `json:"workers"`
	Elapsed   float64   `json:"elapsed_seconds"`
}

// Save writes one sweep run as a directory holding metadata.json and
// samples.csv (one r,x row per retained sample, in result order). Values are
// formatted with full round-trip precision so a reloaded result is
// bit-identical; non-finite samples serialize as NaN/+Inf/-Inf.
func (s *Store) Save(meta RunMetadata, result *sweep.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Map, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()

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

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"r", "x"}); err != nil {
		return "", err
	}

	for _, col := range result.Columns {
		r := strconv.FormatFloat(col.R, 'g', -1, 64)
		for _, v := range col.States {
			row := []string{r, strconv.FormatFloat(v, 'g', -1, 64)}
			if err := w.Write(row); err != nil {
				return "", err
			}
		}
	}
	w.Flush()

	return runID, w.Error()
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

// LoadResult reconstructs the sweep result for a run. Rows are regrouped
// into columns of meta.Samples states each, preserving save order.
func (s *Store) LoadResult(runID string) (*sweep.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if meta.Samples < 1 {
		return nil, fmt.Errorf("storage: run %s has invalid sample count %d", runID, meta.Samples)
	}

	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return &sweep.Result{}, nil
	}

	result := &sweep.Result{Columns: make([]sweep.Column, 0, meta.RPoints)}
	var cur *sweep.Column

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}
		r, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: run %s row %d: %w", runID, i, err)
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: run %s row %d: %w", runID, i, err)
		}

		if cur == nil || len(cur.States) == meta.Samples {
			result.Columns = append(result.Columns, sweep.Column{R: r, States: make([]float64, 0, meta.Samples)})
			cur = &result.Columns[len(result.Columns)-1]
		}
		cur.States = append(cur.States, x)
	}

	return result, nil
}
