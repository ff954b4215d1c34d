// Package world provides dungeon generation and map management.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents an open, passable floor tile.
	TileFloor Tile = ' '
	// TileStart marks the entry point of the dungeon.
	TileStart Tile = 'S'
	// TileExit marks the goal of the dungeon.
	TileExit Tile = 'E'
)

// Key tiles are 'a'-'f' and door tiles are 'A'-'F'; the letter index
// selects the bit in a key mask.
const keyCount = 6

// IsPassable returns true if the tile can be walked on at all.
// Doors count as passable here; whether a walker may actually cross one
// depends on its collected keys (see CanPass).
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// IsKey reports whether the tile is one of the six key tiles.
func (t Tile) IsKey() bool {
	return t >= 'a' && t < 'a'+keyCount
}

// IsDoor reports whether the tile is one of the six door tiles.
func (t Tile) IsDoor() bool {
	return t >= 'A' && t < 'A'+keyCount
}

// CanPass reports whether a walker holding the given key mask may step onto
// this tile. Non-door tiles never require keys; door 'A' requires bit 0,
// door 'B' bit 1, and so on.
func (t Tile) CanPass(keys int) bool {
	if !t.IsDoor() {
		return true
	}
	return keys&(1<<int(t-'A')) != 0
}

// Collect returns the key mask after stepping onto this tile. Stepping on
// key 'a' sets bit 0, 'b' bit 1, and so on; any other tile leaves the mask
// unchanged. Masks only ever gain bits.
func (t Tile) Collect(keys int) int {
	if !t.IsKey() {
		return keys
	}
	return keys | 1<<int(t-'a')
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
