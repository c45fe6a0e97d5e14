package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TileType represents the type of a tile
type TileType int

const (
	TileEmpty TileType = iota
	TileWall
	TilePlatform
)

// ParseTileType maps a stage config type name to a TileType.
func ParseTileType(name string) TileType {
	switch name {
	case "wall":
		return TileWall
	case "platform":
		return TilePlatform
	default:
		return TileEmpty
	}
}

// Tile represents a single tile in the stage
type Tile struct {
	Type  TileType
	Solid bool
}

// Stage is a side-view tile grid. Row 0 is the top row; world space is
// y-up with the bottom-left corner of the grid at the origin. The depth
// axis (z) is not collided.
type Stage struct {
	Width    int     // tiles
	Height   int     // tiles
	TileSize float64 // world units per tile
	Tiles    [][]Tile
	Spawn    mgl64.Vec3
}

// GetTile returns the tile at the given tile coordinates.
// Everything outside the grid is solid wall.
func (s *Stage) GetTile(tx, ty int) Tile {
	if tx < 0 || tx >= s.Width || ty < 0 || ty >= s.Height {
		return Tile{Type: TileWall, Solid: true}
	}
	return s.Tiles[ty][tx]
}

// TileCoords converts a world point into tile coordinates.
func (s *Stage) TileCoords(x, y float64) (tx, ty int) {
	tx = int(math.Floor(x / s.TileSize))
	row := int(math.Floor(y / s.TileSize))
	return tx, s.Height - 1 - row
}

// TileRect returns the world rectangle of a tile.
func (s *Stage) TileRect(tx, ty int) Rect {
	row := s.Height - 1 - ty
	return Rect{
		MinX: float64(tx) * s.TileSize,
		MinY: float64(row) * s.TileSize,
		MaxX: float64(tx+1) * s.TileSize,
		MaxY: float64(row+1) * s.TileSize,
	}
}

// IsSolidAt checks if the tile at a world point is solid
func (s *Stage) IsSolidAt(x, y float64) bool {
	tx, ty := s.TileCoords(x, y)
	return s.GetTile(tx, ty).Solid
}

// IsSolidRect checks if any tile the rect overlaps is solid.
// Touching edges do not count as overlap.
func (s *Stage) IsSolidRect(r Rect) bool {
	const edge = 1e-9

	startTX, endTY := s.TileCoords(r.MinX+edge, r.MinY+edge)
	endTX, startTY := s.TileCoords(r.MaxX-edge, r.MaxY-edge)

	for ty := startTY; ty <= endTY; ty++ {
		for tx := startTX; tx <= endTX; tx++ {
			if s.GetTile(tx, ty).Solid {
				return true
			}
		}
	}
	return false
}

// SurfaceBelow returns the height of the highest solid surface under the
// span [minX, maxX] at or below y, searching at most maxDepth down.
func (s *Stage) SurfaceBelow(minX, maxX, y, maxDepth float64) (float64, bool) {
	const edge = 1e-9

	startTX, _ := s.TileCoords(minX+edge, y)
	endTX, _ := s.TileCoords(maxX-edge, y)

	best := math.Inf(-1)
	found := false
	for tx := startTX; tx <= endTX; tx++ {
		// Start in the tile containing y, or the one just below when y is on a boundary.
		_, ty := s.TileCoords(minX, y-edge)
		for ; ty < s.Height+1; ty++ {
			r := s.TileRect(tx, ty)
			if y-r.MaxY > maxDepth {
				break
			}
			if s.GetTile(tx, ty).Solid {
				if r.MaxY > best {
					best = r.MaxY
					found = true
				}
				break
			}
		}
	}
	return best, found
}

// Bounds returns the stage size in world units.
func (s *Stage) Bounds() (w, h float64) {
	return float64(s.Width) * s.TileSize, float64(s.Height) * s.TileSize
}

// SolidRuns returns the solid tiles of every row merged into horizontal runs.
func (s *Stage) SolidRuns() []Rect {
	var runs []Rect
	for ty := 0; ty < s.Height; ty++ {
		start := -1
		for tx := 0; tx <= s.Width; tx++ {
			solid := tx < s.Width && s.Tiles[ty][tx].Solid
			switch {
			case solid && start < 0:
				start = tx
			case !solid && start >= 0:
				first := s.TileRect(start, ty)
				last := s.TileRect(tx-1, ty)
				runs = append(runs, Rect{MinX: first.MinX, MinY: first.MinY, MaxX: last.MaxX, MaxY: last.MaxY})
				start = -1
			}
		}
	}
	return runs
}
