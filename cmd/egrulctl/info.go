package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	goxml "github.com/arturoeanton/go-xml/xml"

	"github.com/kmakeev/egrul-go/internal/encoding"
	"github.com/kmakeev/egrul-go/internal/extract"
	"github.com/kmakeev/egrul-go/pkg/model"
)

var (
	infoInput       string
	infoSamples     bool
	infoSampleCount int
	infoRaw         bool
)

func init() {
	cmd := newInfoCmd()
	cmd.Flags().StringVar(&infoInput, "input", "", "XML file to inspect (required)")
	cmd.Flags().BoolVar(&infoSamples, "samples", false, "Extract and print a few sample records")
	cmd.Flags().IntVar(&infoSampleCount, "sample-count", 3, "Number of sample records to print with --samples")
	cmd.Flags().BoolVar(&infoRaw, "raw", false, "Also dump the decoded document as a nested JSON map")
	cmd.MarkFlagRequired("input")
	rootCmd.AddCommand(cmd)
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Report encoding, registry kind, and record counts for one XML file",
		Long: `info opens a single EGRUL/EGRIP XML file, detects its source
encoding, counts <СвЮЛ>/<СвИП> record-root tags, and optionally extracts
a handful of sample records without writing any output.

Example:
  egrulctl info --input EGRUL_77.xml
  egrulctl info --input EGRUL_77.xml --samples --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo()
		},
	}
}

type fileInfoResult struct {
	File         string `json:"file"`
	SizeBytes    int64  `json:"size_bytes"`
	Encoding     string `json:"encoding"`
	RegistryKind string `json:"registry_kind"`
	LECount      int    `json:"le_count"`
	SPCount      int    `json:"sp_count"`
}

func runInfo() error {
	printVerbose("Opening: %s\n", infoInput)

	stat, err := os.Stat(infoInput)
	if err != nil {
		return fmt.Errorf("stat %s: %w", infoInput, err)
	}

	doc, err := encoding.Open(infoInput)
	if err != nil {
		return err
	}
	defer doc.Close()

	text, kind, err := encoding.Decode(doc.Bytes)
	if err != nil {
		return err
	}

	registryKind, classifyErr := extract.Classify(infoInput, text)

	result := fileInfoResult{
		File:      infoInput,
		SizeBytes: stat.Size(),
		Encoding:  kind.String(),
		LECount:   strings.Count(text, "<СвЮЛ") + strings.Count(text, "<SvUL"),
		SPCount:   strings.Count(text, "<СвИП") + strings.Count(text, "<SvIP"),
	}
	if classifyErr == nil {
		result.RegistryKind = registryKind.Label()
	} else {
		result.RegistryKind = "unknown"
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("\nFile Information:\n")
	printInfo("  File:           %s\n", result.File)
	printInfo("  Size:           %s\n", formatBytes(result.SizeBytes))
	printInfo("  Encoding:       %s\n", result.Encoding)
	printInfo("  Registry kind:  %s\n", result.RegistryKind)
	printInfo("\n")
	printInfo("  LE records:     %d\n", result.LECount)
	printInfo("  SP records:     %d\n", result.SPCount)
	printInfo("  Total records:  %d\n", result.LECount+result.SPCount)

	if infoSamples && (result.LECount > 0 || result.SPCount > 0) {
		printInfo("\nSamples:\n")
		printSamples(text)
	}

	if infoRaw {
		printInfo("\nRaw document map:\n")
		if err := printRawMap(text); err != nil {
			return err
		}
	}

	return nil
}

// printRawMap dumps the decoded document's full element tree as an
// indented JSON object, for inspecting a record's exact tag/attribute
// shape without going through the typed extractors.
func printRawMap(text string) error {
	doc, err := goxml.MapXML(strings.NewReader(text))
	if err != nil {
		return fmt.Errorf("mapping document: %w", err)
	}
	rendered, err := doc.ToJSON()
	if err != nil {
		return fmt.Errorf("rendering document map: %w", err)
	}
	printInfo("%s\n", rendered)
	return nil
}

func printSamples(text string) {
	count := 0
	if infoSampleCount <= 0 {
		infoSampleCount = 3
	}
	extract.WalkLE(strings.NewReader(text), func(r *model.LegalEntityRecord) {
		if count >= infoSampleCount {
			return
		}
		count++
		printInfo("  #%d OGRN=%s  INN=%s  name=%q\n", count, r.OGRN, r.INN, r.FullName)
	}, nil)
	count = 0
	extract.WalkSP(strings.NewReader(text), func(r *model.SoleProprietorRecord) {
		if count >= infoSampleCount {
			return
		}
		count++
		printInfo("  #%d OGRNIP=%s  INN=%s  name=%q\n", count, r.OGRNIP, r.INN, r.FullName())
	}, nil)
}
