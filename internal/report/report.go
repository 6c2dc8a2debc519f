// Package report renders pipeline output: CSV records for downstream
// consumers and terminal tables for interactive runs.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/tanakhlab/mesologia/core/scan"
	"github.com/tanakhlab/mesologia/core/stats"
)

// WriteInstancesCSV writes detected instances as CSV rows.
func WriteInstancesCSV(w io.Writer, instances []scan.Instance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"reference", "right_reference", "suffix", "prefix", "matched", "genre", "context"}); err != nil {
		return err
	}

	for _, inst := range instances {
		row := []string{
			inst.Ref.String(),
			inst.RightRef.String(),
			inst.Suffix,
			inst.Prefix,
			inst.Pointed,
			string(inst.Genre),
			inst.Context,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteResultsCSV writes a batch's significance results as CSV rows,
// tagged with the run ID and corpus hash so records are traceable to the
// exact snapshot.
func WriteResultsCSV(w io.Writer, batch stats.BatchResult) error {
	cw := csv.NewWriter(w)
	header := []string{
		"run_id", "corpus_hash", "spec", "suffix", "prefix",
		"n", "suffix_count", "prefix_count",
		"lambda", "observed", "ratio", "p_value", "significant", "error",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range batch.Results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		row := []string{
			batch.RunID,
			batch.CorpusHash,
			r.Spec.ID(),
			r.Spec.Suffix,
			r.Spec.Prefix,
			strconv.Itoa(r.Frequency.N),
			strconv.Itoa(r.Frequency.SuffixCount),
			strconv.Itoa(r.Frequency.PrefixCount),
			formatFloat(r.Frequency.Lambda),
			strconv.Itoa(r.Observed),
			formatRatio(r),
			formatPValue(r),
			strconv.FormatBool(r.Significant),
			errText,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// RenderResults renders a batch as a terminal table.
func RenderResults(batch stats.BatchResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("run %s", batch.RunID)

	tw.AppendHeader(table.Row{"spec", "pattern", "N", "λ", "observed", "ratio", "p-value", "significant"})

	for _, r := range batch.Results {
		tw.AppendRow(table.Row{
			r.Spec.ID(),
			r.Spec.String(),
			r.Frequency.N,
			formatFloat(r.Frequency.Lambda),
			r.Observed,
			formatRatio(r),
			formatPValue(r),
			r.Significant,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
		{Number: 7, Align: text.AlignRight},
	})

	return tw.Render()
}

// RenderInstances renders detected instances as a terminal table.
func RenderInstances(instances []scan.Instance) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "reference", "matched", "context"})

	for i, inst := range instances {
		ref := inst.Ref.String()
		if inst.RightRef != inst.Ref {
			ref = fmt.Sprintf("%s → %s", ref, inst.RightRef.String())
		}
		tw.AppendRow(table.Row{i + 1, ref, inst.Pointed, inst.Context})
	}

	return tw.Render()
}

// RenderBookSummary renders per-book instance counts, alphabetically.
func RenderBookSummary(summary map[string]int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"book", "instances"})

	for _, book := range scan.BooksInOrder(summary) {
		tw.AppendRow(table.Row{book, summary[book]})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	return tw.Render()
}

// formatRatio prints "n/a" for undefined ratios (λ = 0).
func formatRatio(r stats.Result) string {
	if r.Undefined || math.IsInf(r.Ratio, 0) {
		return "n/a"
	}
	return formatFloat(r.Ratio)
}

// formatPValue prints "n/a" for undefined p-values.
func formatPValue(r stats.Result) string {
	if r.Undefined || math.IsNaN(r.PValue) {
		return "n/a"
	}
	return strconv.FormatFloat(r.PValue, 'f', 6, 64)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
