package viz

import (
	"fmt"
	"strings"

	"github.com/san-kum/potflow/internal/potential"
)

// shades from empty to full coverage.
var shades = []rune{' ', '░', '▒', '▓', '█'}

// Heatmap renders a value grid as shaded cells, one rune per cell, with
// the Y axis pointing up. lo and hi fix the color scale; pass lo == hi
// to scale from the data. colorize styles cells by the reliability
// palette, which only makes sense for values in [0, 1].
func Heatmap(xs, ys []float64, values [][]float64, lo, hi float64, colorize bool) string {
	if len(values) == 0 || len(xs) == 0 {
		return ""
	}

	if lo == hi {
		lo, hi = values[0][0], values[0][0]
		for _, row := range values {
			for _, v := range row {
				if v < lo {
					lo = v
				}
				if v > hi {
					hi = v
				}
			}
		}
		if lo == hi {
			hi = lo + 1
		}
	}

	var b strings.Builder
	for r := len(values) - 1; r >= 0; r-- {
		b.WriteString(Subtle.Render(fmt.Sprintf("%7.2f ", ys[r])))
		for _, v := range values[r] {
			t := (v - lo) / (hi - lo)
			if t < 0 {
				t = 0
			}
			if t > 1 {
				t = 1
			}
			idx := int(t * float64(len(shades)-1))
			cell := string(shades[idx])
			if colorize {
				cell = ErrStyle(v).Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", 8))
	b.WriteString(Subtle.Render(fmt.Sprintf("%-8.2f", xs[0])))
	if pad := len(xs) - 16; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(Subtle.Render(fmt.Sprintf("%8.2f", xs[len(xs)-1])))
	b.WriteString("\n")

	return b.String()
}

// ResultCard renders a single estimate as a bordered panel.
func ResultCard(flow, norm string, x0, x []float64, res potential.Result) string {
	var b strings.Builder
	b.WriteString(Title.Render("potential estimate") + "\n\n")
	b.WriteString(Label.Render("flow:  ") + flow + "\n")
	b.WriteString(Label.Render("x0:    ") + fmt.Sprintf("%v", x0) + "\n")
	b.WriteString(Label.Render("x:     ") + fmt.Sprintf("%v", x) + "\n")
	b.WriteString(Label.Render("norm:  ") + norm + "\n\n")
	b.WriteString(Label.Render("dV:    ") + Value.Render(fmt.Sprintf("%+.6g", res.DV)) + "\n")
	b.WriteString(Label.Render("err:   ") + ErrStyle(res.Err).Render(fmt.Sprintf("%.4f", res.Err)))
	return Panel.Render(b.String())
}
