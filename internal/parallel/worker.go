package parallel

import (
	"strings"

	"github.com/kmakeev/egrul-go/internal/encoding"
	"github.com/kmakeev/egrul-go/internal/extract"
	"github.com/kmakeev/egrul-go/pkg/model"
)

// ParseResult is the outcome of parsing one file end-to-end.
type ParseResult struct {
	LE []*model.LegalEntityRecord
	SP []*model.SoleProprietorRecord
}

// ParseFile opens path, decodes it to UTF-8, and runs both the LE and
// SP extractors over the decoded text. Both extractors are invoked
// unconditionally (not just the one Classify would pick) so that a
// file carrying both record kinds — rare but explicitly allowed by
// spec §8 — still emits on both streams; Classify is used only to
// reject a file that matches neither extractor and has no recognised
// filename token, mirroring the dispatcher's contract in spec §4.4.
// onRecordError is invoked for each per-record parse error encountered
// by either extractor; the record is discarded and scanning continues.
func ParseFile(path string, onRecordError func(error)) (ParseResult, error) {
	doc, err := encoding.Open(path)
	if err != nil {
		return ParseResult{}, err
	}
	defer doc.Close()

	text, _, err := encoding.Decode(doc.Bytes)
	if err != nil {
		return ParseResult{}, err
	}

	if _, err := extract.Classify(path, text); err != nil {
		return ParseResult{}, err
	}

	var result ParseResult
	if err := extract.WalkLE(strings.NewReader(text), func(r *model.LegalEntityRecord) {
		result.LE = append(result.LE, r)
	}, onRecordError); err != nil {
		return ParseResult{}, err
	}
	if err := extract.WalkSP(strings.NewReader(text), func(r *model.SoleProprietorRecord) {
		result.SP = append(result.SP, r)
	}, onRecordError); err != nil {
		return ParseResult{}, err
	}
	return result, nil
}
