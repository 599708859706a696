package main

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/desh2608/spyder/score"
)

// printTable renders results with columns Recording, Duration (s), Miss.,
// F.Alarm., Conf., DER, each ratio as a two-decimal percentage. No
// third-party table-rendering library in the retrieved example pack is
// imported directly for this purpose (see DESIGN.md), so text/tabwriter
// renders the aligned columns.
func printTable(w io.Writer, results map[string]score.Metrics, perFile bool) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Recording\tDuration (s)\tMiss.\tF.Alarm.\tConf.\tDER")

	if perFile {
		ids := make([]string, 0, len(results))
		for id := range results {
			if id != "Overall" {
				ids = append(ids, id)
			}
		}
		sort.Strings(ids)
		for _, id := range ids {
			printRow(tw, id, results[id])
		}
	}
	printRow(tw, "Overall", results["Overall"])
	tw.Flush()
}

func printRow(w io.Writer, id string, m score.Metrics) {
	fmt.Fprintf(w, "%s\t%.2f\t%.2f%%\t%.2f%%\t%.2f%%\t%.2f%%\n",
		id, m.Duration, m.Miss*100, m.Falarm*100, m.Conf*100, m.DER*100)
}
