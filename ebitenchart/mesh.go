package ebitenchart

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/hapticharts"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// regionMesh triangulates a region's outline in screen space. Rectangles and
// solid wedges are fanned from their hub; donut wedges and rings, whose
// outline is an outer arc followed by the inner arc in reverse, are stitched
// as a strip between the two arcs.
func regionMesh(r hapticharts.Region, offX, offY float64, c Color) ([]ebiten.Vertex, []uint16) {
	pts := r.Outline()
	n := len(pts)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX:   float32(p.X + offX),
			DstY:   float32(p.Y + offY),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R * c.A),
			ColorG: float32(c.G * c.A),
			ColorB: float32(c.B * c.A),
			ColorA: float32(c.A),
		}
	}

	switch {
	case r.Kind == hapticharts.RegionRect:
		return verts, fanIndices(n, 0)
	case annular(r):
		return verts, stripIndices(n)
	default:
		// Solid wedge or ring: arc points then the center as the last vertex.
		return verts, fanIndices(n, n-1)
	}
}

func annular(r hapticharts.Region) bool {
	switch r.Kind {
	case hapticharts.RegionWedge:
		return r.InnerRadius > 0
	case hapticharts.RegionRing:
		return r.Radius-r.Band > 0
	}
	return false
}

// fanIndices triangulates a convex fan around vertex hub.
func fanIndices(n, hub int) []uint16 {
	inds := make([]uint16, 0, (n-2)*3)
	for i := 0; i < n-1; i++ {
		j := i + 1
		if i == hub || j == hub {
			continue
		}
		inds = append(inds, uint16(hub), uint16(i), uint16(j))
	}
	return inds
}

// stripIndices stitches the first half of the vertices (outer arc) to the
// second half (inner arc, reversed).
func stripIndices(n int) []uint16 {
	half := n / 2
	inds := make([]uint16, 0, (half-1)*6)
	for i := 0; i < half-1; i++ {
		o0, o1 := uint16(i), uint16(i+1)
		i0, i1 := uint16(n-1-i), uint16(n-2-i)
		inds = append(inds, o0, o1, i0, o1, i1, i0)
	}
	return inds
}
