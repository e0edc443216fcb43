// Package geom builds the gonum plotters gwasplot draws with.
package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Point describes the markers of a scatter layer.
type Point struct {
	Size  float64 // diameter in points
	Color color.Color
	Shape draw.GlyphDrawer // nil draws filled circles
}

// Scatter draws one marker per element of xys. Non-finite coordinates
// are rejected by plotter with ErrInfinity or ErrNaN.
func (p Point) Scatter(xys plotter.XYs) (*plotter.Scatter, error) {
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Radius = vg.Points(p.Size / 2)
	s.GlyphStyle.Color = p.Color
	s.GlyphStyle.Shape = p.Shape
	if s.GlyphStyle.Shape == nil {
		s.GlyphStyle.Shape = draw.CircleGlyph{}
	}
	return s, nil
}

// XYs zips xs and ys. The shorter slice determines the length.
func XYs(xs, ys []float64) plotter.XYs {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	return xys
}

// DropNaN removes the points with a NaN coordinate, missing values in
// the source columns, in place and returns the shortened slice together
// with the number of points removed.
func DropNaN(xys plotter.XYs) (plotter.XYs, int) {
	kept := xys[:0]
	for _, xy := range xys {
		if math.IsNaN(xy.X) || math.IsNaN(xy.Y) {
			continue
		}
		kept = append(kept, xy)
	}
	return kept, len(xys) - len(kept)
}
