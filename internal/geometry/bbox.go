// Package geometry implements axis-aligned bounding box math shared by the
// alignment, resolution, and classification stages of the fusion engine.
package geometry

import "math"

// BBox is an axis-aligned bounding box in page coordinates.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// New constructs a BBox from raw coordinates.
func New(x0, y0, x1, y1 float64) BBox {
	return BBox{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the box width, clamped to zero for degenerate boxes.
func (b BBox) Width() float64 {
	return math.Max(0, b.X1-b.X0)
}

// Height returns the box height, clamped to zero for degenerate boxes.
func (b BBox) Height() float64 {
	return math.Max(0, b.Y1-b.Y0)
}

// Area returns width * height.
func (b BBox) Area() float64 {
	return b.Width() * b.Height()
}

// Center returns the midpoint of the box.
func (b BBox) Center() (float64, float64) {
	return (b.X0 + b.X1) / 2, (b.Y0 + b.Y1) / 2
}

// Union returns the smallest box enclosing both b and other.
func (b BBox) Union(other BBox) BBox {
	return BBox{
		X0: math.Min(b.X0, other.X0),
		Y0: math.Min(b.Y0, other.Y0),
		X1: math.Max(b.X1, other.X1),
		Y1: math.Max(b.Y1, other.Y1),
	}
}

// Intersection returns the overlapping region of b and other. The result may
// be degenerate (zero or negative width/height) when the boxes don't overlap.
func (b BBox) Intersection(other BBox) BBox {
	return BBox{
		X0: math.Max(b.X0, other.X0),
		Y0: math.Max(b.Y0, other.Y0),
		X1: math.Min(b.X1, other.X1),
		Y1: math.Min(b.Y1, other.Y1),
	}
}

// IoU returns the intersection-over-union ratio, or 0 when the union area is
// non-positive (no overlap, or both boxes degenerate).
func (b BBox) IoU(other BBox) float64 {
	inter := b.Intersection(other).Area()
	union := b.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// CenterDistance returns the Euclidean distance between the two centers.
func (b BBox) CenterDistance(other BBox) float64 {
	cx1, cy1 := b.Center()
	cx2, cy2 := other.Center()
	dx := cx1 - cx2
	dy := cy1 - cy2
	return math.Sqrt(dx*dx + dy*dy)
}

// IsFinite reports whether every coordinate is a finite float, used at
// ingress to reject malformed hypotheses (spec §7 Malformed-hypothesis).
func (b BBox) IsFinite() bool {
	for _, v := range [4]float64{b.X0, b.Y0, b.X1, b.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
