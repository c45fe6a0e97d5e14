package entity

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle in world units.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Offset returns the rect moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Body is the physical box of a moving entity.
// Position is the bottom center of the box (the feet).
type Body struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	HalfWidth float64
	Height    float64

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
}

// NewBody creates a body of the given size standing at feet.
func NewBody(feet mgl64.Vec3, width, height float64) *Body {
	return &Body{
		Position:  feet,
		HalfWidth: width / 2,
		Height:    height,
	}
}

// Rect returns the body box at its current position.
func (b *Body) Rect() Rect {
	return b.RectAt(b.Position.X(), b.Position.Y())
}

// RectAt returns the body box with its feet at x, y.
func (b *Body) RectAt(x, y float64) Rect {
	return Rect{
		MinX: x - b.HalfWidth,
		MinY: y,
		MaxX: x + b.HalfWidth,
		MaxY: y + b.Height,
	}
}

// ClearContacts resets the collision flags before a move.
func (b *Body) ClearContacts() {
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
}
