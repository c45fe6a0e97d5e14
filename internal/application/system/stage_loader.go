package system

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/movekit/internal/domain/entity"
	"github.com/younwookim/movekit/internal/infrastructure/config"
)

// LoadStage converts a StageConfig into a Stage entity.
// The grid is as wide as the longest collision row; short rows are padded
// with empty tiles.
func LoadStage(cfg *config.StageConfig) *entity.Stage {
	tileWidth := 0
	for _, row := range cfg.Layers.Collision {
		if n := len([]rune(row)); n > tileWidth {
			tileWidth = n
		}
	}
	tileHeight := len(cfg.Layers.Collision)

	tiles := make([][]entity.Tile, tileHeight)
	for y, row := range cfg.Layers.Collision {
		tiles[y] = make([]entity.Tile, tileWidth)
		for x, char := range []rune(row) {
			mapping, ok := cfg.TileMapping[string(char)]
			if !ok {
				tiles[y][x] = entity.Tile{Type: entity.TileEmpty, Solid: false}
				continue
			}

			tiles[y][x] = entity.Tile{
				Type:  entity.ParseTileType(mapping.Type),
				Solid: mapping.Solid,
			}
		}
	}

	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 1
	}

	return &entity.Stage{
		Width:    tileWidth,
		Height:   tileHeight,
		TileSize: tileSize,
		Tiles:    tiles,
		Spawn: mgl64.Vec3{
			cfg.PlayerSpawn.X * tileSize,
			cfg.PlayerSpawn.Y * tileSize,
			cfg.PlayerSpawn.Z * tileSize,
		},
	}
}
