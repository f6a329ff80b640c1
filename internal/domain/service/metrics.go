package service

import "time"

// MetricsRecorder records pipeline counters. Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	RecordEvent(outcome string)
	RecordTransition(kind string)
	RecordPushResult(sent, failed int)
	RecordProcessingLatency(duration time.Duration)
}
