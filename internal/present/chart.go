package present

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lexstat/zipfian/pkg/zipfian/compare"
)

// RenderChart draws one empirical scatter series and one theoretical
// line series per document and writes the result to path (format
// chosen by extension, typically .png). Documents with no ranked
// words are skipped. Rendering nothing at all is not an error.
func RenderChart(summaries []compare.DocumentSummary, path string) error {
	p := plot.New()
	p.Title.Text = "Rank-frequency comparison against the Zipf model"
	p.X.Label.Text = "rank"
	p.Y.Label.Text = "frequency"
	p.Add(plotter.NewGrid())

	series := 0
	for _, s := range summaries {
		if s.Err != nil || len(s.Items) == 0 {
			continue
		}

		empirical := make(plotter.XYs, len(s.Items))
		theoretical := make(plotter.XYs, len(s.Items))
		for i, it := range s.Items {
			empirical[i].X = float64(it.Rank)
			empirical[i].Y = float64(it.Count)
			theoretical[i].X = float64(it.Rank)
			theoretical[i].Y = s.Fit.Theoretical[i]
		}

		scatter, err := plotter.NewScatter(empirical)
		if err != nil {
			return fmt.Errorf("scatter for %s: %w", s.Name, err)
		}
		scatter.GlyphStyle.Color = plotutil.Color(series)
		scatter.GlyphStyle.Radius = vg.Points(2)

		line, err := plotter.NewLine(theoretical)
		if err != nil {
			return fmt.Errorf("line for %s: %w", s.Name, err)
		}
		line.Color = plotutil.Color(series)

		p.Add(scatter, line)
		p.Legend.Add(s.Name+" (exp)", scatter)
		p.Legend.Add(s.Name+" (zipf)", line)
		series++
	}

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
