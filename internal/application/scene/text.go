package scene

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap face every screen writes with
var Face = text.NewGoXFace(basicfont.Face7x13)

// LineHeight of Face in pixels
const LineHeight = 16

// DrawText writes msg with its top-left corner at (x, y). Newlines start new lines.
func DrawText(screen *ebiten.Image, msg string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = LineHeight
	text.Draw(screen, msg, Face, op)
}

// DrawCentered writes msg horizontally centred on the screen, one line at a time
func DrawCentered(screen *ebiten.Image, msg string, y float64, clr color.Color) {
	w := float64(screen.Bounds().Dx())
	for i, line := range strings.Split(msg, "\n") {
		lw := TextWidth(line)
		DrawText(screen, line, (w-lw)/2, y+float64(i*LineHeight), clr)
	}
}

// TextWidth returns the advance of a single line in Face
func TextWidth(line string) float64 {
	return text.Advance(line, Face)
}
