// Package report renders simulation results for terminals.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-simulator/internal/core"
	"cpu-simulator/internal/responses"
)

const idleLabel = "idle"

// WriteSchedule prints a title, the Gantt chart and the process table.
func WriteSchedule(w io.Writer, response responses.ScheduleResponse) {
	title := response.Algorithm
	if response.TimeQuantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, response.TimeQuantum)
	}
	writeTitle(w, title)
	WriteGantt(w, response.Timeline)
	writeTable(w, response)
}

// WriteComparison prints every schedule followed by a summary table.
func WriteComparison(w io.Writer, response responses.CompareResponse) {
	for _, r := range response.Results {
		WriteSchedule(w, r)
	}

	writeTitle(w, "Summary")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Response", "Avg Turnaround", "Utilization", "Throughput"})
	for _, r := range response.Results {
		table.Append([]string{
			r.Algorithm,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", r.CpuThroughput),
		})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "Lowest average waiting time: %s\n", response.Best)
}

// WriteGantt prints the timeline as labelled cells over their start times.
func WriteGantt(w io.Writer, timeline []core.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var labels, ticks strings.Builder
	labels.WriteString("|")
	for _, s := range timeline {
		label := s.PID
		if s.Idle {
			label = idleLabel
		}
		width := len(label) + 2
		if width < 8 {
			width = 8
		}
		left := (width - len(label)) / 2
		labels.WriteString(strings.Repeat(" ", left) + label + strings.Repeat(" ", width-len(label)-left) + "|")

		start := fmt.Sprint(s.Start)
		pad := width + 1 - len(start)
		if pad < 1 {
			pad = 1
		}
		ticks.WriteString(start + strings.Repeat(" ", pad))
	}
	ticks.WriteString(fmt.Sprint(timeline[len(timeline)-1].End))

	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintln(w, strings.TrimRight(ticks.String(), " "))
	_, _ = fmt.Fprintln(w)
}

func writeTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func writeTable(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, p := range response.Details {
		rows = append(rows, []string{
			p.ProcessId,
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Response", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}
