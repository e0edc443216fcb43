package gwasplot

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNoDisplay is returned when a figure should be displayed but the
// Plotter was set up without a Display.
var ErrNoDisplay = errors.New("gwasplot: no display set up")

// Plotter draws QQ and Manhattan plots. The zero value is not usable,
// construct one with New.
type Plotter struct {
	// Style determines sizes and colors of all figures.
	Style Style

	// Display shows figures which are not exported to a file.
	// May be nil if every call sets SaveTo.
	Display Display

	// Log receives the diagnostics. New sets up a logger writing to
	// standard output.
	Log *logrus.Logger
}

// New sets up a Plotter with DefaultStyle which displays on display.
// Call it once from the host application.
func New(display Display) *Plotter {
	log := logrus.New()
	log.Out = os.Stdout
	return &Plotter{
		Style:   DefaultStyle,
		Display: display,
		Log:     log,
	}
}

// Figure is a finished plot together with the size it is exported at.
type Figure struct {
	*plot.Plot

	Width, Height vg.Length

	// Layers are the plotters in the order they were added.
	Layers []plot.Plotter

	// Bands are the groups of a Manhattan plot in drawing order.
	Bands []Band

	// Handle is set if the figure was shown on a Display.
	Handle Handle
}

// Export rasterizes f to path. The format is taken from the file
// extension: png, jpg, jpeg, tif, tiff, svg, pdf or eps.
func (f *Figure) Export(path string) error {
	if err := f.Plot.Save(f.Width, f.Height, path); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func (f *Figure) add(ps ...plot.Plotter) {
	f.Plot.Add(ps...)
	f.Layers = append(f.Layers, ps...)
}

// warnf reports a plot which could not be drawn because of axis.
func (p *Plotter) warnf(axis string, format string, args ...interface{}) {
	p.Log.WithField("axis", axis).Warnf(format, args...)
}

// finish either exports fig to saveTo or shows it under name.
func (p *Plotter) finish(name string, fig *Figure, saveTo string) (*Figure, error) {
	if saveTo != "" {
		if err := fig.Export(saveTo); err != nil {
			return nil, err
		}
		p.Log.WithField("file", saveTo).Debugf("%s plot exported", name)
		return fig, nil
	}

	if p.Display == nil {
		return nil, ErrNoDisplay
	}
	h, err := p.Display.Show(name, fig)
	if err != nil {
		return nil, fmt.Errorf("show %s: %w", name, err)
	}
	if err := h.Push(); err != nil {
		return nil, fmt.Errorf("push %s: %w", name, err)
	}
	fig.Handle = h
	return fig, nil
}
