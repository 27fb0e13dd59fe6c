package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cpu-simulator/internal/report"
	"cpu-simulator/internal/schedulers"
	"cpu-simulator/internal/workload"
)

type simulateOptions struct {
	algorithm      string
	quantum        int
	quantumSet     bool // --quantum given, even as 0
	file           string
	demo           string
	output         string
	defaultQuantum int
}

var simulateFlags simulateOptions

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a simulation offline over a workload file or a demo workload",
	Example: `  cpu-simulator simulate --demo complex -a all
  cpu-simulator simulate -f workload.yaml -a rr -q 3 -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := simulateFlags
		opts.quantumSet = cmd.Flags().Changed("quantum")
		opts.defaultQuantum = cfg.RoundRobinTimeQuantum
		return runSimulate(cmd.OutOrStdout(), opts)
	},
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateFlags.algorithm, "algorithm", "a", "all", "Algorithm: fcfs, sjf, priority, rr or all")
	simulateCmd.Flags().IntVarP(&simulateFlags.quantum, "quantum", "q", 0, "Round robin time quantum (default: workload, then config)")
	simulateCmd.Flags().StringVarP(&simulateFlags.file, "file", "f", "", "Workload file (.yaml, .yml, .json, .csv)")
	simulateCmd.Flags().StringVar(&simulateFlags.demo, "demo", "", "Built-in demo workload (see the demo command)")
	simulateCmd.Flags().StringVarP(&simulateFlags.output, "output", "o", "table", "Output format: table or json")
}

func loadWorkload(opts simulateOptions) (workload.Workload, error) {
	switch {
	case opts.file != "" && opts.demo != "":
		return workload.Workload{}, fmt.Errorf("--file and --demo are mutually exclusive")
	case opts.file != "":
		return workload.Load(opts.file)
	case opts.demo != "":
		return workload.Preset(opts.demo)
	}
	return workload.Preset("basic")
}

// resolveQuantum prefers the flag, then the workload, then the config. An
// explicit zero is passed through so the engine rejects it.
func resolveQuantum(opts simulateOptions, w workload.Workload) int {
	if opts.quantumSet {
		return opts.quantum
	}
	if w.Quantum != nil {
		return *w.Quantum
	}
	return opts.defaultQuantum
}

func runSimulate(out io.Writer, opts simulateOptions) error {
	format := strings.ToLower(opts.output)
	if format != "table" && format != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	w, err := loadWorkload(opts)
	if err != nil {
		return err
	}
	quantum := resolveQuantum(opts, w)

	logrus.WithFields(logrus.Fields{
		"workload":  w.Name,
		"processes": len(w.Processes),
		"algorithm": opts.algorithm,
		"quantum":   quantum,
	}).Info("running simulation")

	var result interface{}
	if strings.EqualFold(opts.algorithm, "all") {
		comparison, err := schedulers.CompareAll(w.Processes, quantum)
		if err != nil {
			return err
		}
		if format == "table" {
			report.WriteComparison(out, comparison)
			return nil
		}
		result = comparison
	} else {
		alg, err := schedulers.ParseAlgorithm(opts.algorithm)
		if err != nil {
			return err
		}
		schedule, err := schedulers.Simulate(alg, w.Processes, quantum)
		if err != nil {
			return err
		}
		response := schedulers.GenerateResponse(alg, quantum, schedule)
		if format == "table" {
			report.WriteSchedule(out, response)
			return nil
		}
		result = response
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
