// Package present renders analysis results: per-document rank tables,
// the cross-document comparison table and the rank/frequency chart.
package present

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lexstat/zipfian/pkg/zipfian/compare"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Presenter writes result tables to an output stream.
type Presenter struct {
	w io.Writer
}

// New creates a presenter writing to w.
func New(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Document prints one document's fitted constant, SSE and rank table.
// A document with no ranked words gets a short message instead of a
// table; a failed document reports its error.
func (p *Presenter) Document(s compare.DocumentSummary) {
	fmt.Fprintf(p.w, "\nFile: %s\n", s.Name)

	if s.Err != nil {
		fmt.Fprintf(p.w, "Analysis failed: %v\n", s.Err)
		return
	}

	fmt.Fprintf(p.w, "Optimal constant C (least squares): %.4f\n", s.Fit.C)
	fmt.Fprintf(p.w, "Sum of squared errors (SSE): %.4f\n", s.Fit.SSE)

	if len(s.Items) == 0 {
		fmt.Fprintln(p.w, "No words found after filtering.")
		return
	}

	t := newTable("R", "Word", "F_emp", "F_theor", "F_emp-F_theor")
	for i, it := range s.Items {
		theor := s.Fit.Theoretical[i]
		diff := float64(it.Count) - theor
		t.Row(
			strconv.Itoa(it.Rank),
			it.Token,
			strconv.Itoa(it.Count),
			fmt.Sprintf("%.1f", theor),
			fmt.Sprintf("%+.1f", diff),
		)
	}
	fmt.Fprintln(p.w, t.String())
}

// Comparison prints the final cross-document table.
func (p *Presenter) Comparison(summaries []compare.DocumentSummary) {
	if len(summaries) == 0 {
		return
	}

	fmt.Fprintln(p.w, "\nComparison by fitted Zipf constant (stopwords filtered)")

	t := newTable("File", "Words", "Unique", "top_n", "C", "SSE")
	for _, s := range summaries {
		if s.Err != nil {
			t.Row(s.Name, "-", "-", "-", "-", "-")
			continue
		}
		t.Row(
			s.Name,
			strconv.Itoa(s.TotalTokens),
			strconv.Itoa(s.UniqueTokens),
			topNLabel(s.TopN),
			fmt.Sprintf("%.2f", s.Fit.C),
			fmt.Sprintf("%.2f", s.Fit.SSE),
		)
	}
	fmt.Fprintln(p.w, t.String())
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
}

func topNLabel(topN int) string {
	if topN <= 0 {
		return "all"
	}
	return strconv.Itoa(topN)
}
