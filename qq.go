package gwasplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/gwasplot/frame"
	"github.com/vdobler/gwasplot/geom"
	"github.com/vdobler/gwasplot/stat"
)

// QQOptions controls a QQ plot. Zero values select the defaults.
type QQOptions struct {
	Title string // default "QQ"

	// SaveTo exports the figure instead of displaying it.
	SaveTo string

	// XMax and YMax fix the axis ranges to [0,XMax] and [0,YMax].
	// Zero derives the bound from the largest transformed value.
	XMax, YMax float64
}

// QQ plots -log10 of column xAxis against -log10 of column yAxis
// together with the diagonal from (0,0) to (XMax,YMax).
//
// If a bound is +Inf, because a column contains a probability of 0 and
// no finite bound was given, QQ logs a warning naming the axis and
// returns a nil Figure and a nil error. Rows with a missing value (NaN)
// are not drawn.
func (p *Plotter) QQ(df frame.Frame, xAxis, yAxis string, opts QQOptions) (*Figure, error) {
	if err := p.Style.Validate(); err != nil {
		return nil, fmt.Errorf("qq: %w", err)
	}
	xs, err := df.Column(xAxis)
	if err != nil {
		return nil, err
	}
	ys, err := df.Column(yAxis)
	if err != nil {
		return nil, err
	}
	xs, ys = stat.NegLog10(xs), stat.NegLog10(ys)

	xMax, yMax := opts.XMax, opts.YMax
	if xMax == 0 {
		if xMax, err = stat.Max(xs); err != nil {
			return nil, fmt.Errorf("qq: column %q: %w", xAxis, err)
		}
	}
	if yMax == 0 {
		if yMax, err = stat.Max(ys); err != nil {
			return nil, fmt.Errorf("qq: column %q: %w", yAxis, err)
		}
	}
	if math.IsInf(yMax, 1) {
		p.warnf("y", "Please pass YMax. Input %q contains inf.", yAxis)
		return nil, nil
	}
	if math.IsInf(xMax, 1) {
		p.warnf("x", "Please pass XMax. Input %q contains inf.", xAxis)
		return nil, nil
	}

	xys, missing := geom.DropNaN(geom.XYs(xs, ys))
	if missing > 0 {
		p.Log.Debugf("qq: %d points with missing values", missing)
	}

	// Probabilities of 0 can only remain here if the bounds were
	// given; such points lie outside the finite axis ranges.
	kept := xys[:0]
	for _, xy := range xys {
		if math.IsInf(xy.X, 1) || math.IsInf(xy.Y, 1) {
			continue
		}
		kept = append(kept, xy)
	}
	if dropped := len(xys) - len(kept); dropped > 0 {
		p.Log.Debugf("qq: %d points with probability 0 outside the axis ranges", dropped)
	}

	style := p.Style
	points, err := geom.Point{
		Size:  style.QQPointSize,
		Color: style.color(style.QQPointColor),
	}.Scatter(kept)
	if err != nil {
		return nil, fmt.Errorf("qq: %w", err)
	}
	diagonal, err := geom.Line{
		Width: style.RefLineWidth,
		Color: style.color(style.RefLineColor),
	}.Segment(0, 0, xMax, yMax)
	if err != nil {
		return nil, fmt.Errorf("qq: %w", err)
	}

	fig := &Figure{
		Plot:   plot.New(),
		Width:  vg.Points(style.Width),
		Height: vg.Points(style.Height),
	}
	fig.Title.Text = opts.Title
	if fig.Title.Text == "" {
		fig.Title.Text = "QQ"
	}
	fig.add(points, diagonal)

	// Add widens the axes to the data, so fix the ranges afterwards.
	fig.X.Min, fig.X.Max = 0, xMax
	fig.Y.Min, fig.Y.Max = 0, yMax

	return p.finish("qq", fig, opts.SaveTo)
}
