package gwasplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SetAlpha returns c with its alpha replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(a*0xff + 0.5)
	return n
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.NRGBA{
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0xff, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"navy":    {0x00, 0x00, 0x80, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"gray20":  {0x33, 0x33, 0x33, 0xff},
	"gray40":  {0x66, 0x66, 0x66, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"gray60":  {0x99, 0x99, 0x99, 0xff},
	"gray80":  {0xcc, 0xcc, 0xcc, 0xff},
	"black":   {0x00, 0x00, 0x00, 0xff},
}

// ParseColor understands the names in BuiltinColors as well as "#rrggbb"
// and "#rrggbbaa".
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return nil, fmt.Errorf("bad color %q: %w", s, err)
		}
		if len(s) == 7 {
			v = v<<8 | 0xff
		}
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	}
	if col, ok := BuiltinColors[strings.ToLower(s)]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
