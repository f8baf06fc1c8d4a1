package wardrobe

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Accent  int // banner headings, variation markers
	Muted   int // paths, secondary detail
	Success int // saved-file confirmations
	Warning int // out-of-range sampling notices
	Error   int // failure output
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent:  5,
		Muted:   8,
		Success: 2,
		Warning: 3,
		Error:   1,
	}
}
