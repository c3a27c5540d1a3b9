package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/spf13/cobra"

	"github.com/kmakeev/egrul-go/internal/applog"
	"github.com/kmakeev/egrul-go/internal/config"
	"github.com/kmakeev/egrul-go/internal/output"
	"github.com/kmakeev/egrul-go/internal/parallel"
)

var (
	parseInput           string
	parseOutput          string
	parseFormat          string
	parseWorkers         int
	parseBatchSize       int
	parseContinueOnError bool
	parseNoProgress      bool
)

func init() {
	cmd := newParseCmd()
	cmd.Flags().StringVar(&parseInput, "input", "", "Input XML file or directory (required)")
	cmd.Flags().StringVar(&parseOutput, "output", "./output", "Output directory")
	cmd.Flags().StringVar(&parseFormat, "format", "", "Output format: parquet, json, jsonl (default from config)")
	cmd.Flags().IntVar(&parseWorkers, "workers", 0, "Worker count (default: CPU count)")
	cmd.Flags().IntVar(&parseBatchSize, "batch-size", 0, "Writer batch size (default from config)")
	cmd.Flags().BoolVar(&parseContinueOnError, "continue-on-error", true, "Skip files/records that fail to parse instead of aborting")
	cmd.Flags().BoolVar(&parseNoProgress, "no-progress", false, "Disable the progress bar")
	cmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cmd)
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse",
		Short: "Ingest EGRUL/EGRIP XML into Parquet or JSON",
		Long: `parse discovers every *.xml file under --input (or parses a single
file directly), extracts LE and SP records in parallel, and writes two
per-registry streams (le/sp) to --output in the chosen format.

Example:
  egrulctl parse --input ./dumps --output ./out --format parquet --workers 8
  egrulctl parse --input EGRUL_77.xml --output ./out --format jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse()
		},
	}
}

func runParse() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := applog.Init(applog.Options{Enabled: true, Level: cfg.Logging.Level, File: cfg.Logging.File, JSON: cfg.Logging.Format == "json"}); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	formatName := parseFormat
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	workers := parseWorkers
	if workers == 0 {
		workers = cfg.NumWorkers()
	}
	batchSize := parseBatchSize
	if batchSize == 0 {
		batchSize = cfg.Parser.BatchSize
	}

	printInfo("Input:       %s\n", parseInput)
	printInfo("Output:      %s\n", parseOutput)
	printInfo("Format:      %s\n", formatName)
	printInfo("Workers:     %d\n", workers)
	printInfo("Batch size:  %d\n\n", batchSize)

	if err := os.MkdirAll(parseOutput, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	stem := filepath.Join(parseOutput, "egrul")

	stat, err := os.Stat(parseInput)
	if err != nil {
		return fmt.Errorf("stat %s: %w", parseInput, err)
	}

	opts := parallel.Options{
		Format:            format,
		Workers:           workers,
		BatchSize:         batchSize,
		ChannelBufferSize: cfg.Parser.ChannelBufferSize,
		ContinueOnError:   parseContinueOnError && cfg.Parser.ContinueOnError,
		DistributeBySize:  cfg.Parallel.DistributeBySize,
		Limits: output.Limits{
			MaxRecordsPerFile: cfg.Output.MaxRecordsPerFile,
			MaxSizeMB:         float64(cfg.Output.MaxFileSizeMB),
		},
	}

	var bar *pb.ProgressBar
	if cfg.Parser.ShowProgress && !parseNoProgress && !quiet {
		total, err := countXMLFiles(parseInput, stat)
		if err == nil && total > 0 {
			bar = pb.StartNew(total)
			opts.OnFileDone = func(_ parallel.FileInfo, _ parallel.ParseResult, _ error) {
				bar.Increment()
			}
		}
	}

	var inputDir string
	if stat.IsDir() {
		inputDir = parseInput
	} else {
		// ProcessDirectory walks a whole directory, which for a file's
		// parent would also pick up sibling XML files, so a single file
		// is parsed directly instead.
		return parseSingleFile(parseInput, stem, opts)
	}

	start := time.Now()
	stats, err := parallel.ProcessDirectory(inputDir, stem, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	printSummary(stats, time.Since(start))
	return nil
}

func countXMLFiles(input string, stat os.FileInfo) (int, error) {
	if !stat.IsDir() {
		return 1, nil
	}
	files, err := parallel.Discover(input)
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

func parseSingleFile(path, stem string, opts parallel.Options) error {
	start := time.Now()
	result, err := parallel.ParseFile(path, func(err error) {
		applog.Warn("record parse error", "file", path, "error", err)
	})
	if err != nil {
		return err
	}

	writer, err := output.New(stem, opts.Format, opts.Limits)
	if err != nil {
		return err
	}
	if len(result.LE) > 0 {
		if err := writer.AppendLE(result.LE); err != nil {
			return err
		}
	}
	if len(result.SP) > 0 {
		if err := writer.AppendSP(result.SP); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	printInfo("LE records: %d\n", len(result.LE))
	printInfo("SP records: %d\n", len(result.SP))
	printInfo("Elapsed: %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

func printSummary(stats *parallel.Stats, elapsed time.Duration) {
	snap := stats.Snapshot()
	printInfo("\n")
	printInfo("Files processed:   %s\n", formatNumber(snap.FilesProcessed))
	printInfo("Files failed:      %s\n", formatNumber(snap.FilesFailed))
	printInfo("LE records:        %s\n", formatNumber(snap.LERecords))
	printInfo("SP records:        %s\n", formatNumber(snap.SPRecords))
	printInfo("Parse errors:      %s\n", formatNumber(snap.ParseErrors))
	printInfo("Elapsed:           %s\n", elapsed.Round(time.Millisecond))
	if snap.RecordsPerSecond > 0 {
		printInfo("Throughput:        %.0f records/sec\n", snap.RecordsPerSecond)
	}
}
