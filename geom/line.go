package geom

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Line describes a solid line.
type Line struct {
	Width float64 // in points
	Color color.Color
}

// Segment draws a straight line from (x0,y0) to (x1,y1).
func (l Line) Segment(x0, y0, x1, y1 float64) (*plotter.Line, error) {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(l.Width)
	line.LineStyle.Color = l.Color
	return line, nil
}

// Ticks places one labeled tick at each position.
func Ticks(positions []float64, labels []string) (plot.ConstantTicks, error) {
	if len(positions) != len(labels) {
		return nil, fmt.Errorf("geom: %d tick positions but %d labels", len(positions), len(labels))
	}
	ticks := make(plot.ConstantTicks, len(positions))
	for i := range ticks {
		ticks[i] = plot.Tick{Value: positions[i], Label: labels[i]}
	}
	return ticks, nil
}
