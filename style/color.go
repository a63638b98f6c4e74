package style

import (
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// parseColor understands
//
//     #rgb  #rrggbb  #rrggbbaa  rgb(r, g, b)  rgba(r, g, b, a)
//     transparent  <SVG color name>
//
// Color channels in rgb()/rgba() may be given as 0…255 or as percentages,
// alpha as 0…1.
func parseColor(p Property, _ []string) (Value, error) {
	s := strings.ToLower(p.String())
	switch {
	case s == "transparent":
		return color.RGBA{}, nil
	case strings.HasPrefix(s, "#"):
		return parseHexColor(p, s)
	case strings.HasPrefix(s, "rgba(") || strings.HasPrefix(s, "rgb("):
		return parseRGBFunc(p, s)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, conversionError(p, Color, "unknown color")
}

func parseHexColor(p Property, s string) (Value, error) {
	alpha := uint8(0xff)
	if len(s) == 9 { // #rrggbbaa
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, conversionError(p, Color, "")
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, conversionError(p, Color, err.Error())
	}
	r, g, b := c.RGB255()
	return premultiply(r, g, b, alpha), nil
}

func parseRGBFunc(p Property, s string) (Value, error) {
	lp, rp := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
	if rp < lp {
		return nil, conversionError(p, Color, "unbalanced parentheses")
	}
	args := strings.Split(s[lp+1:rp], ",")
	if len(args) != 3 && len(args) != 4 {
		return nil, conversionError(p, Color, "expecting 3 or 4 components")
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, ok := channel(strings.TrimSpace(args[i]))
		if !ok {
			return nil, conversionError(p, Color, "")
		}
		ch[i] = v
	}
	alpha := uint8(0xff)
	if len(args) == 4 {
		a, err := strconv.ParseFloat(strings.TrimSpace(args[3]), 64)
		if err != nil || a < 0 || a > 1 {
			return nil, conversionError(p, Color, "alpha out of range")
		}
		alpha = uint8(a*255 + 0.5)
	}
	return premultiply(ch[0], ch[1], ch[2], alpha), nil
}

func channel(s string) (uint8, bool) {
	if strings.HasSuffix(s, "%") {
		x, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil || x < 0 || x > 100 {
			return 0, false
		}
		return uint8(x*2.55 + 0.5), true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return uint8(n), true
}

// color.RGBA is alpha-premultiplied.
func premultiply(r, g, b, a uint8) color.RGBA {
	if a == 0xff {
		return color.RGBA{r, g, b, a}
	}
	pm := func(c uint8) uint8 {
		return uint8((uint32(c)*uint32(a) + 127) / 255)
	}
	return color.RGBA{pm(r), pm(g), pm(b), a}
}

// ColorString returns a hex representation of c, suitable as a raw property
// value. Translucent colors get an alpha suffix.
func ColorString(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return "transparent"
	}
	cf, _ := colorful.MakeColor(color.NRGBA{n.R, n.G, n.B, 0xff})
	hex := cf.Hex()
	if n.A == 0xff {
		return hex
	}
	return hex + strconv.FormatUint(uint64(n.A)|0x100, 16)[1:]
}
