package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetTitleWidth is the preferred width for item titles.
	TargetTitleWidth = 48

	// MinTitleWidth is the minimum width for item titles.
	MinTitleWidth = 10

	// ProgressBarWidth is the width of the day completion bar.
	ProgressBarWidth = 40
)

// Display limits.
const (
	// MaxVisibleItems limits items shown per section before scrolling.
	MaxVisibleItems = 15

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	// JournalPreviewLines is how many journal lines the day view shows.
	JournalPreviewLines = 6
)

// Input constraints.
const (
	// MaxTitleLength is the maximum item title length in runes.
	MaxTitleLength = 100

	// MaxJournalLength caps the journal editor.
	MaxJournalLength = 10000
)
