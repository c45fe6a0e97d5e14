package backend

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/entity"
)

// stageFromRows builds a 1-unit tile stage where '#' is solid.
func stageFromRows(rows ...string) *entity.Stage {
	tiles := make([][]entity.Tile, len(rows))
	for y, row := range rows {
		tiles[y] = make([]entity.Tile, len(row))
		for x, c := range row {
			if c == '#' {
				tiles[y][x] = entity.Tile{Type: entity.TileWall, Solid: true}
			}
		}
	}
	return &entity.Stage{
		Width:    len(rows[0]),
		Height:   len(rows),
		TileSize: 1,
		Tiles:    tiles,
		Spawn:    mgl64.Vec3{1.5, 1, 0},
	}
}

// testStage is 8x4 with a floor, a one tile step at x=5 and walls at both ends:
//
//	#......#
//	#......#
//	#....#.#
//	########
func testStage() *entity.Stage {
	return stageFromRows(
		"#......#",
		"#......#",
		"#....#.#",
		"########",
	)
}
