package gwasplot

import (
	"bytes"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func TestManhattanBands(t *testing.T) {
	p, d, _ := newTestPlotter(t)
	df := mustFrame(t, results)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)
	require.NotNil(t, fig)

	assert.Equal(t, "Manhattan Plot", fig.Title.Text)
	assert.Equal(t, "Chromosomes", fig.X.Label.Text)
	assert.Equal(t, "-log10(p)", fig.Y.Label.Text)
	assert.Equal(t, []string{"manhattan"}, d.shown)

	// One band per chromosome, the width hint grows with the bands.
	require.Len(t, fig.Bands, 5)
	assert.Len(t, fig.Layers, 5)
	assert.Equal(t, vg.Length(50*5), fig.Width)

	first := fig.Bands[0]
	assert.Equal(t, int64(1), first.Group)
	assert.Equal(t, 0.5, first.Offset)
	xs := make([]float64, len(first.XYs))
	for i, xy := range first.XYs {
		xs[i] = xy.X
	}
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, xs)
	assert.InDelta(t, 6, first.XYs[1].Y, 1e-12)

	for i, band := range fig.Bands {
		assert.Equal(t, float64(i)+0.5, band.Offset)
	}
}

func TestManhattanAlternatingColors(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	df := mustFrame(t, results)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)

	orange := color.NRGBA{0xff, 0xa5, 0x00, 0x80}
	gray := color.NRGBA{0x80, 0x80, 0x80, 0x80}
	for i, band := range fig.Bands {
		want := orange
		if i%2 == 1 {
			want = gray
		}
		assert.Equal(t, want, band.Color, "band %d", i)

		scatter := fig.Layers[i].(*plotter.Scatter)
		assert.Equal(t, want, scatter.GlyphStyle.Color, "band %d", i)
		assert.Equal(t, vg.Points(1), scatter.GlyphStyle.Radius)
	}
}

func TestManhattanTicks(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	df := mustFrame(t, results)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)

	ticks, ok := fig.X.Tick.Marker.(plot.ConstantTicks)
	require.True(t, ok)
	require.Len(t, ticks, 5)
	for i, tick := range ticks {
		assert.Equal(t, float64(i+1), tick.Value)
	}
	assert.Equal(t, "1", ticks[0].Label)
	assert.Equal(t, "5", ticks[4].Label)
}

func TestManhattanGroupOrder(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	data := []Result{
		{Chrom: 3, Pos: 0.5, P: 0.1},
		{Chrom: 1, Pos: 0.5, P: 0.1},
		{Chrom: 2, Pos: 0.5, P: 0.1},
		{Chrom: 1, Pos: 0.7, P: 0.1},
	}
	df := mustFrame(t, data)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)
	var got []interface{}
	for _, b := range fig.Bands {
		got = append(got, b.Group)
	}
	assert.Equal(t, []interface{}{int64(3), int64(1), int64(2)}, got)

	fig, err = p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{SortGroups: true})
	require.NoError(t, err)
	got = got[:0]
	for _, b := range fig.Bands {
		got = append(got, b.Group)
	}
	assert.Equal(t, []interface{}{int64(1), int64(2), int64(3)}, got)
	assert.Len(t, fig.Bands[0].XYs, 2)
}

func TestManhattanInfinitePropagates(t *testing.T) {
	p, d, _ := newTestPlotter(t)
	data := append([]Result(nil), results...)
	data[4].P = 0
	df := mustFrame(t, data)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	assert.ErrorIs(t, err, plotter.ErrInfinity)
	assert.Nil(t, fig)
	assert.Empty(t, d.shown)
}

func TestManhattanErrors(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	df := mustFrame(t, results)

	_, err := p.Manhattan(df, "Missing", "Pos", "P", ManhattanOptions{})
	assert.Error(t, err)
	_, err = p.Manhattan(df, "Chrom", "Pos", "Missing", ManhattanOptions{})
	assert.Error(t, err)
}

func TestManhattanNoGroups(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	df := mustFrame(t, []Result{})

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)
	assert.Empty(t, fig.Bands)
	assert.Equal(t, vg.Points(DefaultStyle.Width), fig.Width)
}

func TestManhattanExport(t *testing.T) {
	p, d, _ := newTestPlotter(t)
	df := mustFrame(t, results)
	dir := t.TempDir()

	var images [][]byte
	for _, name := range []string{"m1.png", "m2.png"} {
		path := filepath.Join(dir, name)
		fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{SaveTo: path, Title: "Test"})
		require.NoError(t, err)
		require.NotNil(t, fig)
		assert.Nil(t, fig.Handle)
		img, err := os.ReadFile(path)
		require.NoError(t, err)
		images = append(images, img)
	}
	assert.Empty(t, d.shown, "exported figure must not be displayed")
	assert.True(t, bytes.Equal(images[0], images[1]), "exports differ")
}

func TestManhattanCustomStyle(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	p.Style.BandColors = []string{"red", "green", "blue"}
	p.Style.Alpha = 1
	p.Style.GroupWidth = 20
	df := mustFrame(t, results)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)
	assert.Equal(t, vg.Length(100), fig.Width)
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, fig.Bands[3].Color)
	assert.Equal(t, color.NRGBA{0, 0, 0xff, 0xff}, fig.Bands[2].Color)
}

func TestManhattanBadStyle(t *testing.T) {
	p, d, _ := newTestPlotter(t)
	p.Style.BandColors = []string{"orange", "grey-ish"}
	df := mustFrame(t, results)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	assert.Error(t, err)
	assert.Nil(t, fig)
	assert.Empty(t, d.shown)
}

func TestManhattanMissingValues(t *testing.T) {
	p, _, _ := newTestPlotter(t)
	data := append([]Result(nil), results...)
	data[1].P = math.NaN()
	df := mustFrame(t, data)

	fig, err := p.Manhattan(df, "Chrom", "Pos", "P", ManhattanOptions{})
	require.NoError(t, err)
	require.Len(t, fig.Bands[0].XYs, 2)
	assert.Equal(t, 1.5, fig.Bands[0].XYs[0].X)
	assert.Equal(t, 3.5, fig.Bands[0].XYs[1].X)
}
