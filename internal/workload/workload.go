// Package workload reads process batches for offline simulation runs.
package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// Workload is a batch of processes plus an optional round robin quantum.
type Workload struct {
	Name      string
	Quantum   *int // nil when the source does not set one
	Processes []core.Process
}

type yamlProcess struct {
	Pid         string `yaml:"pid"`
	ArrivalTime *int   `yaml:"arrivalTime"`
	BurstTime   *int   `yaml:"burstTime"`
	Priority    int    `yaml:"priority"`
}

type yamlWorkload struct {
	Quantum   *int          `yaml:"quantum"`
	Processes []yamlProcess `yaml:"processes"`
}

// Load reads a workload file. The format follows the extension: .yaml/.yml,
// .json or .csv.
func Load(path string) (Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Workload{}, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	w, err := Parse(f, ext)
	if err != nil {
		return Workload{}, fmt.Errorf("%s: %w", path, err)
	}
	w.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	logrus.WithFields(logrus.Fields{"file": path, "processes": len(w.Processes)}).Debug("loaded workload")
	return w, nil
}

// Parse decodes a workload in the format named by ext (with leading dot).
func Parse(r io.Reader, ext string) (Workload, error) {
	switch ext {
	case ".yaml", ".yml":
		return parseYAML(r)
	case ".json":
		return parseJSON(r)
	case ".csv":
		return parseCSV(r)
	}
	return Workload{}, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
}

func parseYAML(r io.Reader) (Workload, error) {
	var doc yamlWorkload
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Workload{}, nil
		}
		return Workload{}, fmt.Errorf("decode yaml: %w", err)
	}

	w := Workload{Quantum: doc.Quantum, Processes: make([]core.Process, 0, len(doc.Processes))}
	for i, p := range doc.Processes {
		if p.ArrivalTime == nil || p.BurstTime == nil {
			return Workload{}, fmt.Errorf("%w: process %d needs arrivalTime and burstTime", requests.ErrMissingField, i+1)
		}
		w.Processes = append(w.Processes, core.Process{
			ID:          p.Pid,
			ArrivalTime: *p.ArrivalTime,
			BurstTime:   *p.BurstTime,
			Priority:    p.Priority,
		})
	}
	requests.NameUnnamed(w.Processes)
	return w, nil
}

// parseJSON accepts the same documents as the HTTP API.
func parseJSON(r io.Reader) (Workload, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return Workload{}, err
	}
	request, err := requests.ParseScheduleRequest(body)
	if err != nil {
		return Workload{}, err
	}
	processes, err := request.Processes()
	if err != nil {
		return Workload{}, err
	}

	return Workload{Quantum: request.Quantum, Processes: processes}, nil
}

// parseCSV reads pid,arrival,burst[,priority] rows. A first row whose
// arrival column is not a number is treated as a header.
func parseCSV(r io.Reader) (Workload, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Workload{}, fmt.Errorf("read csv: %w", err)
	}

	w := Workload{Processes: make([]core.Process, 0, len(rows))}
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return Workload{}, fmt.Errorf("csv row %d: expected 3 or 4 columns, got %d", i+1, len(row))
		}
		arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			if i == 0 {
				continue
			}
			return Workload{}, fmt.Errorf("csv row %d: arrival: %w", i+1, err)
		}
		burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return Workload{}, fmt.Errorf("csv row %d: burst: %w", i+1, err)
		}
		var priority int
		if len(row) == 4 && strings.TrimSpace(row[3]) != "" {
			priority, err = strconv.Atoi(strings.TrimSpace(row[3]))
			if err != nil {
				return Workload{}, fmt.Errorf("csv row %d: priority: %w", i+1, err)
			}
		}
		w.Processes = append(w.Processes, core.Process{
			ID:          strings.TrimSpace(row[0]),
			ArrivalTime: arrival,
			BurstTime:   burst,
			Priority:    priority,
		})
	}
	requests.NameUnnamed(w.Processes)
	return w, nil
}
