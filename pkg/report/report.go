// Package report prints datasets and proportion tables to a terminal and
// exports proportion tables to YAML or JSON.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"irisprop/pkg/data"
	"irisprop/pkg/stats"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginTop(1)
)

// newTable returns a bordered table; columns listed in numeric are right-aligned.
func newTable(numeric map[int]bool, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		})
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Preview prints the first n samples of ds.
func Preview(w io.Writer, ds *data.Dataset, n int) error {
	headers := append([]string{""}, ds.Schema.FeatureNames...)
	headers = append(headers, ds.Schema.LabelName)

	numeric := map[int]bool{0: true}
	for i := range ds.Schema.FeatureNames {
		numeric[i+1] = true
	}
	t := newTable(numeric, headers...)
	for i, s := range ds.Head(n) {
		row := make([]string, 0, len(headers))
		row = append(row, strconv.Itoa(i))
		for _, v := range s.X {
			row = append(row, formatFloat(v, 1))
		}
		row = append(row, s.Label)
		t.Row(row...)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n",
		titleStyle.Render(fmt.Sprintf("First %d rows", len(ds.Head(n)))), t.Render())
	return err
}

// Proportions prints the share of every label and the sum of all fractions.
func Proportions(w io.Writer, pt *stats.ProportionTable) error {
	t := newTable(map[int]bool{1: true, 2: true, 3: true}, "label", "count", "fraction", "percent")
	for _, e := range pt.Entries() {
		t.Row(e.Label,
			strconv.Itoa(e.Count),
			formatFloat(e.Fraction, 4),
			formatFloat(e.Fraction*100, 1)+"%")
	}

	_, err := fmt.Fprintf(w, "%s\n%s\nSum of all fractions: %.2f (n=%d)\n",
		titleStyle.Render("Label proportions"), t.Render(), pt.Sum(), pt.Total())
	return err
}

// Describe prints summary statistics with one column per feature.
func Describe(w io.Writer, summaries []stats.Summary) error {
	headers := make([]string, 0, len(summaries)+1)
	headers = append(headers, "")
	numeric := map[int]bool{}
	for i, s := range summaries {
		headers = append(headers, s.Name)
		numeric[i+1] = true
	}
	t := newTable(numeric, headers...)

	rows := []struct {
		name string
		get  func(stats.Summary) string
	}{
		{"count", func(s stats.Summary) string { return strconv.Itoa(s.Count) }},
		{"mean", func(s stats.Summary) string { return formatFloat(s.Mean, 4) }},
		{"std", func(s stats.Summary) string { return formatFloat(s.Std, 4) }},
		{"min", func(s stats.Summary) string { return formatFloat(s.Min, 4) }},
		{"25%", func(s stats.Summary) string { return formatFloat(s.Q1, 4) }},
		{"50%", func(s stats.Summary) string { return formatFloat(s.Q2, 4) }},
		{"75%", func(s stats.Summary) string { return formatFloat(s.Q3, 4) }},
		{"max", func(s stats.Summary) string { return formatFloat(s.Max, 4) }},
	}
	for _, r := range rows {
		row := []string{r.name}
		for _, s := range summaries {
			row = append(row, r.get(s))
		}
		t.Row(row...)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render("Feature summary"), t.Render())
	return err
}

// Summaries describes every feature column of ds.
func Summaries(ds *data.Dataset) ([]stats.Summary, error) {
	out := make([]stats.Summary, 0, ds.Schema.NumFeatures())
	for i, name := range ds.Schema.FeatureNames {
		col, err := ds.Column(i)
		if err != nil {
			return nil, err
		}
		out = append(out, stats.Describe(name, col))
	}
	return out, nil
}
