package systems

import (
	"image"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// whiteSubImage avoids sampling the texture edge when filling paths
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

// point is a screen position in pixels
type point struct {
	X, Y float32
}

// fillPolygon fills a convex or concave outline with a flat color.
func fillPolygon(screen *ebiten.Image, pts []point, c color.RGBA) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil) //nolint:staticcheck // TODO: migrate to vector.FillPath
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: false})
}

// strokePolygon outlines a closed shape.
func strokePolygon(screen *ebiten.Image, pts []point, c color.RGBA) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, p.X, p.Y, q.X, q.Y, 1, c, false)
	}
}

// shade darkens c by factor in [0, 1], keeping alpha.
func shade(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// withAlpha returns c with its alpha scaled by a in [0, 1].
func withAlpha(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// Premultiplied: every channel scales with alpha
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

// centeredX returns the x that centers s in a span of width pixels.
func centeredX(s string, face font.Face, width float64) int {
	w := font.MeasureString(face, s).Ceil()
	return int((width - float64(w)) / 2)
}

// drawScaledText draws s centered on (cx, cy) at the given scale.
func drawScaledText(screen *ebiten.Image, s string, face font.Face, cx, cy, scale float64, c color.Color) {
	if scale <= 0 {
		return
	}
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Min.X+bounds.Dx()/2), -float64(bounds.Min.Y+bounds.Dy()/2))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(screen, s, face, op) //nolint:staticcheck // TODO: migrate to text/v2
}

// wrapText breaks s into lines no wider than maxWidth pixels. Explicit
// newlines are kept.
func wrapText(s string, face font.Face, maxWidth int) []string {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}
