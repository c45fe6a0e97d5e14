package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestBody_Rect(t *testing.T) {
	b := NewBody(mgl64.Vec3{2, 1, 0}, 0.5, 1.8)

	assert.Equal(t, Rect{MinX: 1.75, MinY: 1, MaxX: 2.25, MaxY: 2.8}, b.Rect())
	assert.Equal(t, Rect{MinX: -0.25, MinY: 0, MaxX: 0.25, MaxY: 1.8}, b.RectAt(0, 0))
}

func TestRect_Offset(t *testing.T) {
	r := Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 2}

	assert.Equal(t, Rect{MinX: 1, MinY: -1, MaxX: 2, MaxY: 1}, r.Offset(1, -1))
}

func TestBody_ClearContacts(t *testing.T) {
	b := &Body{OnGround: true, OnCeiling: true, OnWallLeft: true, OnWallRight: true}

	b.ClearContacts()

	assert.False(t, b.OnGround)
	assert.False(t, b.OnCeiling)
	assert.False(t, b.OnWallLeft)
	assert.False(t, b.OnWallRight)
}
