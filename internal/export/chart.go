package export

import (
	"fmt"
	"image/color"

	"github.com/san-kum/mazegen/internal/maze"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one named line of a chart.
type Series struct {
	Name string
	X, Y []float64
}

var seriesColors = []color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
}

// LineChart saves series as a line plot. The image format follows the
// extension of path.
func LineChart(path, title, xLabel, yLabel string, series ...Series) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	added := 0
	for i, s := range series {
		n := len(s.X)
		if len(s.Y) < n {
			n = len(s.Y)
		}
		if n == 0 {
			continue
		}
		pts := make(plotter.XYs, n)
		for j := 0; j < n; j++ {
			pts[j] = plotter.XY{X: s.X[j], Y: s.Y[j]}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = seriesColors[i%len(seriesColors)]
		line.Width = vg.Points(1)
		p.Add(line)
		if s.Name != "" {
			p.Legend.Add(s.Name, line)
		}
		added++
	}
	if added == 0 {
		return ErrNoData
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}

// FrontierChart plots the frontier size after every accepted connection.
func FrontierChart(path string, st maze.Stats) error {
	xs := make([]float64, len(st.FrontierSizes))
	ys := make([]float64, len(st.FrontierSizes))
	for i, n := range st.FrontierSizes {
		xs[i] = float64(i + 1)
		ys[i] = float64(n)
	}
	return LineChart(path, "Frontier size", "Connection", "Pending candidates",
		Series{Name: "frontier", X: xs, Y: ys})
}

// Histogram saves a histogram of values with the given number of bins.
func Histogram(path, title, xLabel string, values []float64, bins int) error {
	if len(values) == 0 {
		return ErrNoData
	}
	if bins < 1 {
		bins = 1
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Cells"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}
	h.FillColor = seriesColors[0]
	p.Add(h)

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
