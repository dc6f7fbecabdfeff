package ebitenchart

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/hapticharts"
)

// Theme holds the colors used by DrawLayout.
type Theme struct {
	Background Color
	Palette    []Color
	Active     Color // fill for the region under the pointer
}

// DefaultTheme is a dark background with a six-color palette.
var DefaultTheme = Theme{
	Background: Color{0.08, 0.09, 0.11, 1},
	Palette: []Color{
		{0.27, 0.55, 0.89, 1},
		{0.94, 0.55, 0.23, 1},
		{0.36, 0.73, 0.45, 1},
		{0.86, 0.33, 0.39, 1},
		{0.62, 0.47, 0.85, 1},
		{0.95, 0.80, 0.30, 1},
	},
	Active: Color{1, 1, 1, 1},
}

// RegionColor returns the fill for region id.
func (t Theme) RegionColor(id, active hapticharts.RegionID) Color {
	if id == active && id != hapticharts.NoRegion {
		return t.Active
	}
	if len(t.Palette) == 0 {
		return Color{1, 1, 1, 1}
	}
	return t.Palette[int(id)%len(t.Palette)]
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source for every untextured triangle.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// DrawLayout draws every region of l onto dst with the layout's origin at
// (x, y). The region under the pointer, active, is filled with the theme's
// Active color. Layouts that ask for clipping are drawn into a sub-image
// covering their bounds.
func DrawLayout(dst *ebiten.Image, l hapticharts.Layout, x, y float64, theme Theme, active hapticharts.RegionID) {
	FillRect(dst, l.Bounds, x, y, theme.Background)

	target := dst
	if l.Clip {
		b := l.Bounds
		r := image.Rect(int(b.X+x), int(b.Y+y), int(b.X+b.Width+x+0.5), int(b.Y+b.Height+y+0.5))
		target = dst.SubImage(r).(*ebiten.Image)
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	src := ensureWhitePixel()
	for _, r := range l.Regions {
		verts, inds := regionMesh(r, x, y, theme.RegionColor(r.ID, active))
		if len(inds) == 0 {
			continue
		}
		target.DrawTriangles(verts, inds, src, &triOp)
	}
}

// FillRect fills rect, offset by (x, y), with c.
func FillRect(dst *ebiten.Image, rect hapticharts.Rect, x, y float64, c Color) {
	if rect.Empty() || c.A <= 0 {
		return
	}
	verts, inds := regionMesh(hapticharts.Region{Kind: hapticharts.RegionRect, Rect: rect}, x, y, c)
	var triOp ebiten.DrawTrianglesOptions
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), &triOp)
}
