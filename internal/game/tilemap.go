package game

import (
	"errors"
	"fmt"
	"math"
)

// TileCode identifies the contents of one grid cell. 0 is open floor; any
// other value is a wall, the value naming its variant.
type TileCode int

// TileEmpty is the only passable tile code.
const TileEmpty TileCode = 0

// IsSolid reports whether the tile blocks movement and rays.
func (t TileCode) IsSolid() bool { return t != TileEmpty }

var (
	errEmptyGrid  = errors.New("grid has no tiles")
	errRaggedGrid = errors.New("grid rows differ in length")
)

// GridMap is the static tile world. It is immutable once built; all queries
// go through the bounds-checked accessors below.
type GridMap struct {
	Cols  int
	Rows  int
	tiles []TileCode
}

// NewGridMap builds a grid from row-major tile codes (rows[y][x]).
func NewGridMap(rows [][]int) (*GridMap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errEmptyGrid
	}
	cols := len(rows[0])
	gm := &GridMap{Cols: cols, Rows: len(rows), tiles: make([]TileCode, 0, cols*len(rows))}
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d: %w", y, errRaggedGrid)
		}
		for _, code := range row {
			gm.tiles = append(gm.tiles, TileCode(code))
		}
	}
	return gm, nil
}

// inBounds returns true if (col, row) is within the grid.
func (gm *GridMap) inBounds(col, row int) bool {
	return col >= 0 && col < gm.Cols && row >= 0 && row < gm.Rows
}

// At returns the tile at (col, row). ok is false outside the grid.
func (gm *GridMap) At(col, row int) (tile TileCode, ok bool) {
	if !gm.inBounds(col, row) {
		return TileEmpty, false
	}
	return gm.tiles[row*gm.Cols+col], true
}

// CellOf returns the cell containing the world point p.
func CellOf(p Vec2) (col, row int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

// TileAt returns the tile under world point p. ok is false outside the grid.
func (gm *GridMap) TileAt(p Vec2) (TileCode, bool) {
	col, row := CellOf(p)
	return gm.At(col, row)
}

// Contains reports whether p lies inside [0, Cols) x [0, Rows).
func (gm *GridMap) Contains(p Vec2) bool {
	return p.X >= 0 && p.X < float64(gm.Cols) && p.Y >= 0 && p.Y < float64(gm.Rows)
}

// IsPassable returns true if an entity may stand at p. Points outside the
// grid are never passable.
func (gm *GridMap) IsPassable(p Vec2) bool {
	t, ok := gm.TileAt(p)
	return ok && !t.IsSolid()
}
