// Package storage persists analysis runs under a data directory: one
// subdirectory per run, json metadata plus csv grids.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/potflow/internal/potential"
	"github.com/san-kum/potflow/internal/scan"
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

// RunMetadata records the parameters and outcome of one analysis run.
type RunMetadata struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // "eval" or "scan"
	Flow      string    `json:"flow"`
	Timestamp time.Time `json:"timestamp"`
	Norm      string    `json:"norm"`
	Scheme    string    `json:"scheme"`
	X0        []float64 `json:"x0,omitempty"`
	X         []float64 `json:"x,omitempty"`
	DV        float64   `json:"dv,omitempty"`
	Err       float64   `json:"err,omitempty"`
}

// SaveEval persists a single estimate.
func (s *Store) SaveEval(flow, norm, scheme string, x0, x []float64, res potential.Result) (string, error) {
	runID := fmt.Sprintf("%s_eval_%d", flow, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "eval",
		Flow:      flow,
		Timestamp: time.Now(),
		Norm:      norm,
		Scheme:    scheme,
		X0:        x0,
		X:         x,
		DV:        res.DV,
		Err:       res.Err,
	}
	return runID, writeMetadata(runDir, meta)
}

// SaveScan persists a sweep: metadata plus err and dv grids as csv.
func (s *Store) SaveScan(flow, norm, scheme string, g *scan.Grid) (string, error) {
	runID := fmt.Sprintf("%s_scan_%d", flow, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Kind:      "scan",
		Flow:      flow,
		Timestamp: time.Now(),
		Norm:      norm,
		Scheme:    scheme,
		X0:        g.Center,
	}
	if err := writeMetadata(runDir, meta); err != nil {
		return "", err
	}

	if err := writeGrid(filepath.Join(runDir, "err.csv"), g.Xs, g.Ys, g.Err); err != nil {
		return "", err
	}
	if err := writeGrid(filepath.Join(runDir, "dv.csv"), g.Xs, g.Ys, g.DV); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns metadata for all saved runs, newest directories included.
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

func writeMetadata(runDir string, meta RunMetadata) error {
	file, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// writeGrid emits one csv row per Y sample: y, then a value per X sample.
// The header row carries the X coordinates.
func writeGrid(path string, xs, ys []float64, values [][]float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"y\\x"}
	for _, x := range xs {
		header = append(header, strconv.FormatFloat(x, 'f', 6, 64))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for r, y := range ys {
		row := []string{strconv.FormatFloat(y, 'f', 6, 64)}
		for _, v := range values[r] {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
