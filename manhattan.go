package gwasplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/gwasplot/frame"
	"github.com/vdobler/gwasplot/geom"
	"github.com/vdobler/gwasplot/stat"
)

// ManhattanOptions controls a Manhattan plot.
type ManhattanOptions struct {
	Title string // default "Manhattan Plot"

	// SaveTo exports the figure instead of displaying it.
	SaveTo string

	// SortGroups orders the bands with frame.SortLevels. Otherwise the
	// bands follow the order in which the frame reports the groups.
	SortGroups bool
}

// Band is one group of a Manhattan plot.
type Band struct {
	Group  interface{}
	Offset float64
	Color  color.Color
	XYs    plotter.XYs // as drawn: shifted position, -log10(p)
}

// Manhattan plots -log10 of column yAxis against column xAxis, one band of
// unit width per distinct value of column groupBy. Band i is shifted by
// i+0.5 and is drawn in Style.BandColors[i%len(BandColors)]. The x axis
// tick labelled with group i sits at i+1, the center of band i for
// positions in [0,1]. Rows with a missing value (NaN) are not drawn.
//
// Infinite -log10 values are not guarded against: the scatter for that
// band fails with plotter.ErrInfinity.
func (p *Plotter) Manhattan(df frame.Frame, groupBy, xAxis, yAxis string, opts ManhattanOptions) (*Figure, error) {
	if err := p.Style.Validate(); err != nil {
		return nil, fmt.Errorf("manhattan: %w", err)
	}
	groups, err := df.Unique(groupBy)
	if err != nil {
		return nil, err
	}
	if opts.SortGroups {
		frame.SortLevels(groups)
	}

	style := p.Style
	plt := plot.New()
	plt.Title.Text = opts.Title
	if plt.Title.Text == "" {
		plt.Title.Text = "Manhattan Plot"
	}
	plt.X.Label.Text = "Chromosomes"
	plt.Y.Label.Text = "-log10(p)"

	positions := make([]float64, len(groups))
	labels := make([]string, len(groups))
	for i, g := range groups {
		positions[i] = float64(i + 1)
		labels[i] = fmt.Sprint(g)
	}
	ticks, err := geom.Ticks(positions, labels)
	if err != nil {
		return nil, err
	}
	plt.X.Tick.Marker = ticks

	fig := &Figure{
		Plot:   plt,
		Width:  vg.Points(style.GroupWidth * float64(len(groups))),
		Height: vg.Points(style.Height),
		Bands:  make([]Band, 0, len(groups)),
	}
	if len(groups) == 0 {
		fig.Width = vg.Points(style.Width)
	}

	offset := 0.5
	for i, g := range groups {
		xys, err := bandXYs(df, groupBy, g, xAxis, yAxis, offset)
		if err != nil {
			return nil, err
		}
		xys, missing := geom.DropNaN(xys)
		if missing > 0 {
			p.Log.Debugf("manhattan: %s == %v: %d points with missing values", groupBy, g, missing)
		}
		band := Band{
			Group:  g,
			Offset: offset,
			Color:  style.bandColor(i),
			XYs:    xys,
		}
		points, err := geom.Point{Size: style.PointSize, Color: band.Color}.Scatter(xys)
		if err != nil {
			return nil, fmt.Errorf("manhattan: %s == %v: %w", groupBy, g, err)
		}
		fig.add(points)
		fig.Bands = append(fig.Bands, band)
		p.Log.Debugf("manhattan: %s == %v: %d points at offset %.1f", groupBy, g, len(xys), offset)
		offset++
	}

	return p.finish("manhattan", fig, opts.SaveTo)
}

// bandXYs extracts the rows of one group, shifted by offset.
func bandXYs(df frame.Frame, groupBy string, group interface{}, xAxis, yAxis string, offset float64) (plotter.XYs, error) {
	sub, err := df.Filter(groupBy, group)
	if err != nil {
		return nil, fmt.Errorf("manhattan: %s == %v: %w", groupBy, group, err)
	}
	defer sub.Release()

	xs, err := sub.Column(xAxis)
	if err != nil {
		return nil, err
	}
	ys, err := sub.Column(yAxis)
	if err != nil {
		return nil, err
	}
	return geom.XYs(stat.Shift(xs, offset), stat.NegLog10(ys)), nil
}
