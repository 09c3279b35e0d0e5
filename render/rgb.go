package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit cell color
type RGB struct {
	R, G, B uint8
}

// Hex parses "#rrggbb"; malformed input yields black
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}
	}
	return fromColorful(c)
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Tcell converts to a true-color tcell.Color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend performs linear alpha blending: c*(1-alpha) + src*alpha
func Blend(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}
	if alpha >= 1.0 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// add is addition with clamping
func add(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Add performs additive blend with clamping
func Add(c, src RGB) RGB {
	return RGB{R: add(c.R, src.R), G: add(c.G, src.G), B: add(c.B, src.B)}
}

// Scale multiplies each channel by factor, clamped to [0, 255]
func Scale(c RGB, factor float64) RGB {
	return RGB{R: clamp(float64(c.R) * factor), G: clamp(float64(c.G) * factor), B: clamp(float64(c.B) * factor)}
}

// Gradient interpolates in Lab space, keeping perceived brightness even across health bars
func Gradient(from, to RGB, t float64) RGB {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}
	return fromColorful(from.colorful().BlendLab(to.colorful(), t))
}

func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}
