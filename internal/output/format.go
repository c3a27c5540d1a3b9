// Package output implements the three writer backends spec §4.5/§4.6
// describe: a size-bounded, rolling Parquet columnar writer, and the
// simpler JSON Lines / JSON array alternates. All three satisfy the
// Writer interface declared in writer.go.
package output

import (
	"strings"

	"github.com/kmakeev/egrul-go/pkg/types"
)

// Format identifies an output file format.
type Format int

const (
	// Parquet is Apache Parquet with Snappy compression.
	Parquet Format = iota
	// JSONLines is one JSON object per line.
	JSONLines
	// JSONArray is a single JSON array of objects.
	JSONArray
)

// Extension returns the canonical file extension for f.
func (f Format) Extension() string {
	switch f {
	case JSONLines:
		return "jsonl"
	case JSONArray:
		return "json"
	default:
		return "parquet"
	}
}

// ParseFormat maps a format name or file extension to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "parquet", "pq":
		return Parquet, nil
	case "jsonl", "jsonlines", "ndjson":
		return JSONLines, nil
	case "json":
		return JSONArray, nil
	default:
		return 0, types.ConfigError(nil, "unknown output format %q", s)
	}
}
