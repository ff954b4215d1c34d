package viewer

// Config holds viewer configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon
	// generation. A seed of 0 means a random seed will be generated.
	Seed int64

	// Rows and Cols are the requested dungeon dimensions. The generator
	// coerces them odd and to at least the minimum size.
	Rows, Cols int

	// RoomRate is the percentage of extra openings punched after carving.
	RoomRate int

	// KeyPairs is how many key/door pairs to place on generated dungeons.
	KeyPairs int
}
