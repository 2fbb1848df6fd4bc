package models

import "time"

// FlowSample is one harvested traffic observation. Samples are immutable.
type FlowSample struct {
	AccountID  int64
	ByteCount  int64
	ObservedAt time.Time
}

// AccountFlow is the sum of samples for one account within a window.
type AccountFlow struct {
	AccountID  int64 `db:"account_id"`
	TotalBytes int64 `db:"total_bytes"`
}

// FlowWindow is a half-open [Start, End) time range.
type FlowWindow struct {
	Start time.Time
	End   time.Time
}
