package gwasplot

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"
)

// Style collects the fixed visual parameters of both plots. Lengths are
// in points, colors are parsed by ParseColor.
type Style struct {
	// Export size of a figure. Manhattan plots derive their width from
	// GroupWidth and use Width only when there are no groups.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	QQPointSize  float64 `toml:"qq_point_size"`
	QQPointColor string  `toml:"qq_point_color"`
	RefLineColor string  `toml:"ref_line_color"`
	RefLineWidth float64 `toml:"ref_line_width"`

	PointSize  float64  `toml:"point_size"`
	BandColors []string `toml:"band_colors"`
	Alpha      float64  `toml:"alpha"`
	GroupWidth float64  `toml:"group_width"`
}

var DefaultStyle = Style{
	Width:  432,
	Height: 432,

	QQPointSize:  1,
	QQPointColor: "navy",
	RefLineColor: "orange",
	RefLineWidth: 2,

	PointSize:  2,
	BandColors: []string{"orange", "gray"},
	Alpha:      0.5,
	GroupWidth: 50,
}

// LoadStyle reads a TOML file on top of DefaultStyle. Keys missing in the
// file keep their default.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle
	s.BandColors = append([]string(nil), DefaultStyle.BandColors...)
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return Style{}, fmt.Errorf("style %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Style{}, fmt.Errorf("style %s: unknown keys %v", path, undecoded)
	}
	if err := s.Validate(); err != nil {
		return Style{}, fmt.Errorf("style %s: %w", path, err)
	}
	return s, nil
}

// Validate checks that all colors parse and that sizes are usable.
func (s Style) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("figure size %gx%g must be positive", s.Width, s.Height)
	}
	if s.GroupWidth <= 0 {
		return fmt.Errorf("group width %g must be positive", s.GroupWidth)
	}
	if s.Alpha < 0 || s.Alpha > 1 {
		return fmt.Errorf("alpha %g outside [0,1]", s.Alpha)
	}
	if len(s.BandColors) == 0 {
		return fmt.Errorf("no band colors")
	}
	for _, c := range append([]string{s.QQPointColor, s.RefLineColor}, s.BandColors...) {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

func (s Style) color(name string) color.Color {
	c, err := ParseColor(name)
	if err != nil {
		return BuiltinColors["black"]
	}
	return c
}

// bandColor is the translucent color of the i'th Manhattan band.
func (s Style) bandColor(i int) color.Color {
	return SetAlpha(s.color(s.BandColors[i%len(s.BandColors)]), s.Alpha)
}
