package trace

// Level controls how much of a run is echoed to the console.
type Level string

const (
	// LevelNone prints nothing but the end-of-run summary.
	LevelNone Level = "none"
	// LevelSwitches prints context switches and idle ticks only.
	LevelSwitches Level = "switches"
	// LevelTicks prints every tick (the default).
	LevelTicks Level = "ticks"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:     true,
	LevelSwitches: true,
	LevelTicks:    true,
	"":            true, // empty defaults to ticks
}

// IsValidLevel returns true if the given level string is a recognized trace level.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// ParseLevel maps a validated level string to a Level, defaulting to LevelTicks.
func ParseLevel(level string) Level {
	if level == "" {
		return LevelTicks
	}
	return Level(level)
}
