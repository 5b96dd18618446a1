package microqr

/*------------------------------------------------------------------
 *
 * Purpose:	Draw a finished matrix.
 *
 * Description:	Renderers only look at the Matrix: row major, 11x11,
 *		true is dark.  Every renderer surrounds the symbol with
 *		a light quiet zone of the requested width, in modules.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text" // Two characters per module.
	FormatHalf Format = "half" // Two rows of modules per line.
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// Formats lists every Format, in the order shown in help text.
var Formats = []Format{FormatText, FormatHalf, FormatPNG, FormatSVG}

// ParseFormat checks that s names a known format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

const (
	blockFull  = "█"
	blockUpper = "▀"
	blockLower = "▄"
)

// RenderText writes the matrix using a pair of full block characters for
// each dark module and a pair of spaces for each light one.
func RenderText(w io.Writer, m *Matrix, quiet int) error {
	var sb strings.Builder
	var span = Size + 2*quiet

	for y := range span {
		for x := range span {
			if m.At(y-quiet, x-quiet) {
				sb.WriteString(blockFull + blockFull)
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}

	var _, err = io.WriteString(w, sb.String())
	return err
}

/*-------------------------------------------------------------
 *
 * Name:	RenderHalfBlocks
 *
 * Purpose:	Compact terminal rendering.
 *
 * Description:	Each character cell covers one module across and two
 *		down, using upper and lower half blocks.  Terminal cells
 *		are about twice as tall as they are wide so the symbol
 *		comes out roughly square.  An odd final row is drawn
 *		against a light row below it.
 *
 *--------------------------------------------------------------*/

func RenderHalfBlocks(w io.Writer, m *Matrix, quiet int) error {
	var sb strings.Builder
	var span = Size + 2*quiet

	for y := 0; y < span; y += 2 {
		for x := range span {
			var top = m.At(y-quiet, x-quiet)
			var bottom = y+1 < span && m.At(y+1-quiet, x-quiet)

			switch {
			case top && bottom:
				sb.WriteString(blockFull)
			case top:
				sb.WriteString(blockUpper)
			case bottom:
				sb.WriteString(blockLower)
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	var _, err = io.WriteString(w, sb.String())
	return err
}

// RenderImage draws the matrix as a grayscale image with moduleSize
// pixels per module.
func RenderImage(m *Matrix, moduleSize int, quiet int) *image.Gray {
	var span = (Size + 2*quiet) * moduleSize
	var img = image.NewGray(image.Rect(0, 0, span, span))

	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	for row := range Size {
		for col := range Size {
			if !m[row][col] {
				continue
			}
			var x0 = (col + quiet) * moduleSize
			var y0 = (row + quiet) * moduleSize
			for y := y0; y < y0+moduleSize; y++ {
				for x := x0; x < x0+moduleSize; x++ {
					img.SetGray(x, y, color.Gray{Y: 0})
				}
			}
		}
	}

	return img
}

// RenderPNG writes the matrix as a PNG with moduleSize pixels per module.
func RenderPNG(w io.Writer, m *Matrix, moduleSize int, quiet int) error {
	if moduleSize < 1 {
		return fmt.Errorf("module size %d is too small", moduleSize)
	}
	return png.Encode(w, RenderImage(m, moduleSize, quiet))
}

/*-------------------------------------------------------------
 *
 * Name:	RenderSVG
 *
 * Purpose:	Vector rendering on a square viewport.
 *
 * Inputs:	size	- Width and height of the viewport.
 *		quiet	- Quiet zone, in modules.
 *
 * Description:	The viewport is split into a uniform grid of
 *		Size + 2*quiet cells, so one module is size / cells wide.
 *		Each dark module becomes one filled rectangle.
 *
 *--------------------------------------------------------------*/

func RenderSVG(w io.Writer, m *Matrix, size int, quiet int) error {
	if size < 1 {
		return fmt.Errorf("viewport size %d is too small", size)
	}

	var module = float64(size) / float64(Size+2*quiet)
	var sb strings.Builder

	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`+"\n", size, size, size, size)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#fff"/>`+"\n", size, size)

	for row := range Size {
		for col := range Size {
			if m[row][col] {
				fmt.Fprintf(&sb, `<rect x="%g" y="%g" width="%g" height="%g"/>`+"\n",
					float64(col+quiet)*module, float64(row+quiet)*module, module, module)
			}
		}
	}

	sb.WriteString("</svg>\n")

	var _, err = io.WriteString(w, sb.String())
	return err
}

// Render draws m in the format and sizes given by cfg.
func Render(w io.Writer, m *Matrix, cfg *Config) error {
	switch cfg.Format {
	case FormatText:
		return RenderText(w, m, cfg.QuietZone)
	case FormatHalf:
		return RenderHalfBlocks(w, m, cfg.QuietZone)
	case FormatPNG:
		return RenderPNG(w, m, cfg.ModuleSize, cfg.QuietZone)
	case FormatSVG:
		return RenderSVG(w, m, cfg.ModuleSize*(Size+2*cfg.QuietZone), cfg.QuietZone)
	}
	return fmt.Errorf("unknown format %q", cfg.Format)
}
