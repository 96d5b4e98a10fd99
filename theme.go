package probearm

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Bot    int // Bot cell background
	Arm    int // Arm cell background
	Probe  int // Probe cell background
	Empty  int // Empty cell background
	Error  int // Error messages
	Muted  int // Status bar, placeholders
	Accent int // Headings, labels
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Bot:    4,
		Arm:    12,
		Probe:  2,
		Empty:  7,
		Error:  1,
		Muted:  8,
		Accent: 5,
	}
}
