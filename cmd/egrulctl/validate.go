package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kmakeev/egrul-go/internal/parallel"
)

var (
	validateInput      string
	validateErrorsOnly bool
)

func init() {
	cmd := newValidateCmd()
	cmd.Flags().StringVar(&validateInput, "input", "", "File or directory of XML files to validate (required)")
	cmd.Flags().BoolVar(&validateErrorsOnly, "errors-only", false, "Only print files that failed to parse")
	cmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cmd)
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Parse XML files without writing any output, reporting per-file pass/fail",
		Long: `validate runs the same encoding detection, dispatch, and extraction
as parse, but discards every record instead of writing it. It exits
non-zero if any input file failed to parse.

Example:
  egrulctl validate --input ./dumps
  egrulctl validate --input ./dumps --errors-only --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

type validateFileResult struct {
	File    string `json:"file"`
	Status  string `json:"status"`
	Records int    `json:"records,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runValidate() error {
	printVerbose("Validating: %s\n", validateInput)

	var files []parallel.FileInfo
	stat, err := os.Stat(validateInput)
	if err != nil {
		return err
	}
	if stat.IsDir() {
		files, err = parallel.Discover(validateInput)
		if err != nil {
			return err
		}
	} else {
		files = []parallel.FileInfo{{Path: validateInput, Size: stat.Size()}}
	}

	var results []validateFileResult
	var validCount, invalidCount int

	for _, f := range files {
		result, perr := parallel.ParseFile(f.Path, nil)
		if perr != nil {
			invalidCount++
			results = append(results, validateFileResult{File: f.Path, Status: "invalid", Error: perr.Error()})
			if !jsonOut {
				printInfo("%s\n", color.RedString("✗ %s: %v", f.Path, perr))
			}
			continue
		}

		validCount++
		records := len(result.LE) + len(result.SP)
		if !validateErrorsOnly {
			results = append(results, validateFileResult{File: f.Path, Status: "valid", Records: records})
			if !jsonOut {
				printInfo("%s\n", color.GreenString("✓ %s (%d records)", f.Path, records))
			}
		}
	}

	if jsonOut {
		summary := map[string]interface{}{
			"total":   len(files),
			"valid":   validCount,
			"invalid": invalidCount,
			"files":   results,
		}
		if err := printJSON(summary); err != nil {
			return err
		}
	} else {
		printInfo("\nResult: %d valid, %d invalid (of %d files)\n", validCount, invalidCount, len(files))
	}

	if invalidCount > 0 {
		os.Exit(1)
	}
	return nil
}
