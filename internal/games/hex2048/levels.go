package hex2048

// Level defines a campaign level: a board size and the tile to reach on it.
type Level struct {
	ID     int
	Name   string
	Radius int
	Target int
}

// Levels defines the campaign. Boards grow and targets climb; levels on a
// small board with a high target are the hard ones.
var Levels = []Level{
	{ID: 1, Name: "Pocket", Radius: 2, Target: 32},
	{ID: 2, Name: "Cluster", Radius: 3, Target: 128},
	{ID: 3, Name: "Hive", Radius: 3, Target: 256},
	{ID: 4, Name: "Comb", Radius: 4, Target: 512},
	{ID: 5, Name: "Tight Squeeze", Radius: 2, Target: 64},
	{ID: 6, Name: "Wide Comb", Radius: 4, Target: 1024},
	{ID: 7, Name: "Classic", Radius: 3, Target: 2048},
	{ID: 8, Name: "Colony", Radius: 5, Target: 4096},
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(Levels)
}

// GetLevel returns the level at the given index (0-based).
// Returns nil if index is out of range.
func GetLevel(index int) *Level {
	if index < 0 || index >= len(Levels) {
		return nil
	}
	return &Levels[index]
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	names := make([]string, len(Levels))
	for i, lvl := range Levels {
		names[i] = lvl.Name
	}
	return names
}

// LevelTargets returns the targets of all levels.
func LevelTargets() []int {
	targets := make([]int, len(Levels))
	for i, lvl := range Levels {
		targets[i] = lvl.Target
	}
	return targets
}
