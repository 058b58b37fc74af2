package bounce

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer receives one draw call per object per frame. The world and its
// shapes describe what to draw through this interface; Canvas is the
// ebiten-backed implementation, and presentation layers may substitute their
// own.
type Renderer interface {
	FillCircle(center Vec2, radius float64, c Color)
	FillRect(center Vec2, width, height float64, c Color)
	FillPolygon(verts []Vec2, c Color)
	// FillRing draws a partial ring between innerRadius and outerRadius,
	// spanning startDeg to endDeg (degrees, clockwise, 0 along +X).
	FillRing(center Vec2, innerRadius, outerRadius, startDeg, endDeg float64, c Color)
}

// whitePixel is a 1x1 white image used as the texture for vector fills.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.toRGBA())
}

// Canvas renders simulation objects onto an ebiten.Image with antialiased
// vector paths.
type Canvas struct {
	dst *ebiten.Image

	// Scratch buffers reused across fills.
	verts []ebiten.Vertex
	inds  []uint16
}

// NewCanvas creates a Canvas targeting dst.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst}
}

// SetTarget repoints the canvas at a new destination image. Run calls this
// each frame with the current screen.
func (cv *Canvas) SetTarget(dst *ebiten.Image) {
	cv.dst = dst
}

// FillCircle draws a filled circle.
func (cv *Canvas) FillCircle(center Vec2, radius float64, c Color) {
	vector.DrawFilledCircle(cv.dst, float32(center.X), float32(center.Y), float32(radius), c.toRGBA(), true)
}

// FillRect draws a filled rectangle centered on center.
func (cv *Canvas) FillRect(center Vec2, width, height float64, c Color) {
	vector.DrawFilledRect(cv.dst,
		float32(center.X-width/2), float32(center.Y-height/2),
		float32(width), float32(height), c.toRGBA(), true)
}

// FillPolygon draws a filled convex polygon.
func (cv *Canvas) FillPolygon(verts []Vec2, c Color) {
	if len(verts) < 3 {
		return
	}
	var p vector.Path
	p.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, v := range verts[1:] {
		p.LineTo(float32(v.X), float32(v.Y))
	}
	p.Close()
	cv.fillPath(&p, c)
}

// FillRing draws a partial ring as an outer arc, a cap, the inner arc traced
// back, and a closing cap.
func (cv *Canvas) FillRing(center Vec2, innerRadius, outerRadius, startDeg, endDeg float64, c Color) {
	cx, cy := float32(center.X), float32(center.Y)
	start := float32(startDeg * deg2rad)
	end := float32(endDeg * deg2rad)

	var p vector.Path
	p.MoveTo(cx+float32(outerRadius)*cos32(start), cy+float32(outerRadius)*sin32(start))
	p.Arc(cx, cy, float32(outerRadius), start, end, vector.Clockwise)
	p.LineTo(cx+float32(innerRadius)*cos32(end), cy+float32(innerRadius)*sin32(end))
	if innerRadius > 0 {
		p.Arc(cx, cy, float32(innerRadius), end, start, vector.CounterClockwise)
	} else {
		p.LineTo(cx, cy)
	}
	p.Close()
	cv.fillPath(&p, c)
}

// fillPath tessellates and submits a path as triangles over the white pixel.
func (cv *Canvas) fillPath(p *vector.Path, c Color) {
	cv.verts, cv.inds = p.AppendVerticesAndIndicesForFilling(cv.verts[:0], cv.inds[:0])
	for i := range cv.verts {
		cv.verts[i].SrcX = 0.5
		cv.verts[i].SrcY = 0.5
		cv.verts[i].ColorR = float32(c.R)
		cv.verts[i].ColorG = float32(c.G)
		cv.verts[i].ColorB = float32(c.B)
		cv.verts[i].ColorA = float32(c.A)
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	cv.dst.DrawTriangles(cv.verts, cv.inds, whitePixel, op)
}

func cos32(a float32) float32 { return float32(math.Cos(float64(a))) }
func sin32(a float32) float32 { return float32(math.Sin(float64(a))) }

// toRGBA converts a Color to a color.RGBA-compatible value (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// colorRGBA implements the color.Color interface.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}
