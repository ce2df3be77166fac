package skincfg

import "time"

// Timing constants governing skin file watching.
const (
	// MinPollInterval is the hard floor for file stat polling.
	MinPollInterval = 100 * time.Millisecond

	// DefaultPollInterval is the standard file monitoring frequency.
	DefaultPollInterval = time.Second

	// DefaultDebounce is the change coalescence period: a rewrite in
	// progress settles for this long before the file is re-decoded.
	DefaultDebounce = 500 * time.Millisecond
)
