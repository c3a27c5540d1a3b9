package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/spf13/cobra"
)

var (
	statsInput    string
	statsDetailed bool
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().StringVar(&statsInput, "input", "", "Output directory to aggregate (required)")
	cmd.Flags().BoolVar(&statsDetailed, "detailed", false, "Also count rows inside Parquet/JSON files")
	cmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Aggregate file counts and sizes over a pipeline output directory",
		Long: `stats walks a directory produced by "egrulctl parse" and reports how
many Parquet/JSON files it contains, their total size, and (with
--detailed) the total row/record count.

Example:
  egrulctl stats --input ./output
  egrulctl stats --input ./output --detailed --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

// byFormat accumulates counts and sizes for one output format family.
type byFormat struct {
	Files   int   `json:"files"`
	Bytes   int64 `json:"bytes"`
	Records int64 `json:"records,omitempty"`
}

type outputStats struct {
	Parquet      byFormat `json:"parquet"`
	JSON         byFormat `json:"json"`
	TotalFiles   int      `json:"total_files"`
	TotalBytes   int64    `json:"total_bytes"`
	TotalRecords int64    `json:"total_records,omitempty"`
}

func runStats() error {
	printVerbose("Aggregating: %s\n", statsInput)

	var stats outputStats

	err := filepath.WalkDir(statsInput, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size := info.Size()

		switch strings.ToLower(filepath.Ext(path)) {
		case ".parquet":
			stats.Parquet.Files++
			stats.Parquet.Bytes += size
			if statsDetailed {
				if n, err := parquetRowCount(path); err == nil {
					stats.Parquet.Records += n
				}
			}
		case ".json", ".jsonl":
			stats.JSON.Files++
			stats.JSON.Bytes += size
			if statsDetailed {
				if n, err := jsonlRowCount(path); err == nil {
					stats.JSON.Records += n
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", statsInput, err)
	}

	stats.TotalFiles = stats.Parquet.Files + stats.JSON.Files
	stats.TotalBytes = stats.Parquet.Bytes + stats.JSON.Bytes
	stats.TotalRecords = stats.Parquet.Records + stats.JSON.Records

	if jsonOut {
		return printJSON(stats)
	}

	printInfo("\nOutput statistics: %s\n", statsInput)
	printInfo("%s\n\n", strings.Repeat("─", 40))
	printInfo("  Parquet files:  %s\n", formatNumber(int64(stats.Parquet.Files)))
	printInfo("  Parquet size:   %s\n\n", formatBytes(stats.Parquet.Bytes))
	printInfo("  JSON files:     %s\n", formatNumber(int64(stats.JSON.Files)))
	printInfo("  JSON size:      %s\n\n", formatBytes(stats.JSON.Bytes))
	printInfo("  Total files:    %s\n", formatNumber(int64(stats.TotalFiles)))
	printInfo("  Total size:     %s\n", formatBytes(stats.TotalBytes))
	if statsDetailed {
		printInfo("  Total records:  %s\n", formatNumber(stats.TotalRecords))
	}

	return nil
}

func parquetRowCount(path string) (int64, error) {
	r, err := file.OpenParquetFile(path, false)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return r.NumRows(), nil
}

func jsonlRowCount(path string) (int64, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(content) == 0 {
		return 0, nil
	}
	// JSON array files hold one top-level array, written on one line.
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var records []json.RawMessage
		if err := json.Unmarshal(content, &records); err != nil {
			return 0, err
		}
		return int64(len(records)), nil
	}
	// JSONL holds one object per line, each terminated by a newline.
	n := int64(strings.Count(string(content), "\n"))
	if content[len(content)-1] != '\n' {
		n++
	}
	return n, nil
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

func formatNumber(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var result strings.Builder
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
