package parallel

import (
	"sync/atomic"
	"time"
)

// Stats holds the run's shared mutable state: monotonically
// incremented counters touched by every worker goroutine, per spec §5.
type Stats struct {
	FilesProcessed atomic.Int64
	FilesFailed    atomic.Int64
	LERecords      atomic.Int64
	SPRecords      atomic.Int64
	BytesProcessed atomic.Int64
	ParseErrors    atomic.Int64

	startedAt time.Time
	elapsed   time.Duration
}

// Start records the run's start time.
func (s *Stats) Start() { s.startedAt = time.Now() }

// Stop freezes the elapsed duration; call once after the run completes.
func (s *Stats) Stop() { s.elapsed = time.Since(s.startedAt) }

// Elapsed returns the duration between Start and Stop (or "so far" if
// Stop has not been called).
func (s *Stats) Elapsed() time.Duration {
	if s.elapsed > 0 {
		return s.elapsed
	}
	return time.Since(s.startedAt)
}

// TotalRecords returns LERecords + SPRecords.
func (s *Stats) TotalRecords() int64 {
	return s.LERecords.Load() + s.SPRecords.Load()
}

// RecordsPerSecond reports throughput over Elapsed.
func (s *Stats) RecordsPerSecond() float64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.TotalRecords()) / secs
}

// Snapshot is an immutable copy of Stats suitable for JSON output or a
// final summary line.
type Snapshot struct {
	FilesProcessed   int64   `json:"files_processed"`
	FilesFailed      int64   `json:"files_failed"`
	LERecords        int64   `json:"le_records"`
	SPRecords        int64   `json:"sp_records"`
	TotalRecords     int64   `json:"total_records"`
	ParseErrors      int64   `json:"parse_errors"`
	ElapsedSeconds   float64 `json:"elapsed_seconds"`
	RecordsPerSecond float64 `json:"records_per_second"`
}

// Snapshot captures the current counter values.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		FilesProcessed:   s.FilesProcessed.Load(),
		FilesFailed:      s.FilesFailed.Load(),
		LERecords:        s.LERecords.Load(),
		SPRecords:        s.SPRecords.Load(),
		TotalRecords:     s.TotalRecords(),
		ParseErrors:      s.ParseErrors.Load(),
		ElapsedSeconds:   s.Elapsed().Seconds(),
		RecordsPerSecond: s.RecordsPerSecond(),
	}
}
