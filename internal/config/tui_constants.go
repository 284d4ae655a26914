package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of the progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest the progress bar gets.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// ConfettiRows is the height of the celebration band.
	ConfettiRows = 8

	// DefaultWidth is assumed until the first window size message.
	DefaultWidth = 80
)

// Input constraints.
const (
	// MaxLabelLength is the maximum focus label length.
	MaxLabelLength = 60

	// MinutesCharLimit bounds the duration inputs.
	MinutesCharLimit = 4

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)
