package config

// Color constants for component log prefixes
const (
	ColorGreen   = "\033[32m"
	ColorMagenta = "\033[35m"
	ColorCyan    = "\033[36m"
)
