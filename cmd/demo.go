package cmd

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"cpu-simulator/internal/workload"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "List the built-in demo workloads",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Processes", "Description"})
		for _, name := range workload.PresetNames() {
			w, err := workload.Preset(name)
			if err != nil {
				return err
			}
			table.Append([]string{name, fmt.Sprint(len(w.Processes)), workload.PresetDescription(name)})
		}
		table.Render()
		return nil
	},
}
