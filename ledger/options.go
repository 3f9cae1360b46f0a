package ledger

import (
	"log/slog"
	"time"
)

type chainOption func(*Blockchain)

// WithLogger sets the logger used to report appended blocks.
func WithLogger(logger *slog.Logger) chainOption {
	return func(bc *Blockchain) {
		if logger != nil {
			bc.logger = logger
		}
	}
}

// WithClock replaces time.Now as the source of block timestamps.
func WithClock(now func() time.Time) chainOption {
	return func(bc *Blockchain) {
		if now != nil {
			bc.now = now
		}
	}
}
