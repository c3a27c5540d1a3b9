package output

import (
	"bufio"
	"encoding/json"
	"os"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
)

// JSONLinesWriter writes one JSON object per line per stream, with no
// rolling (spec §4.6 calls these "trivial alternates").
type JSONLinesWriter struct {
	le *bufio.Writer
	sp *bufio.Writer
	leFile, spFile *os.File
}

// NewJSONLinesWriter opens "<stem>_le.jsonl" and "<stem>_sp.jsonl".
func NewJSONLinesWriter(stem string) (*JSONLinesWriter, error) {
	leFile, err := os.Create(stem + "_le.jsonl")
	if err != nil {
		return nil, types.IOError(err, "creating %s_le.jsonl", stem)
	}
	spFile, err := os.Create(stem + "_sp.jsonl")
	if err != nil {
		leFile.Close()
		return nil, types.IOError(err, "creating %s_sp.jsonl", stem)
	}
	return &JSONLinesWriter{
		le: bufio.NewWriter(leFile), sp: bufio.NewWriter(spFile),
		leFile: leFile, spFile: spFile,
	}, nil
}

func (w *JSONLinesWriter) AppendLE(batch []*model.LegalEntityRecord) error {
	for _, r := range batch {
		if err := writeJSONLine(w.le, r); err != nil {
			return err
		}
	}
	return nil
}

func (w *JSONLinesWriter) AppendSP(batch []*model.SoleProprietorRecord) error {
	for _, r := range batch {
		if err := writeJSONLine(w.sp, r); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONLine(w *bufio.Writer, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return types.SerializationError(err, "marshaling record")
	}
	if _, err := w.Write(b); err != nil {
		return types.IOError(err, "writing jsonl record")
	}
	return w.WriteByte('\n')
}

func (w *JSONLinesWriter) Close() error {
	if err := w.le.Flush(); err != nil {
		return types.IOError(err, "flushing LE jsonl")
	}
	if err := w.sp.Flush(); err != nil {
		return types.IOError(err, "flushing SP jsonl")
	}
	w.leFile.Close()
	w.spFile.Close()
	return nil
}

// JSONArrayWriter writes each stream as a single JSON array.
type JSONArrayWriter struct {
	le, sp               *bufio.Writer
	leFile, spFile       *os.File
	leFirst, spFirst     bool
}

// NewJSONArrayWriter opens "<stem>_le.json" and "<stem>_sp.json".
func NewJSONArrayWriter(stem string) (*JSONArrayWriter, error) {
	leFile, err := os.Create(stem + "_le.json")
	if err != nil {
		return nil, types.IOError(err, "creating %s_le.json", stem)
	}
	spFile, err := os.Create(stem + "_sp.json")
	if err != nil {
		leFile.Close()
		return nil, types.IOError(err, "creating %s_sp.json", stem)
	}
	w := &JSONArrayWriter{
		le: bufio.NewWriter(leFile), sp: bufio.NewWriter(spFile),
		leFile: leFile, spFile: spFile,
		leFirst: true, spFirst: true,
	}
	if _, err := w.le.WriteString("["); err != nil {
		return nil, types.IOError(err, "writing LE array open")
	}
	if _, err := w.sp.WriteString("["); err != nil {
		return nil, types.IOError(err, "writing SP array open")
	}
	return w, nil
}

func (w *JSONArrayWriter) AppendLE(batch []*model.LegalEntityRecord) error {
	for _, r := range batch {
		if err := writeJSONArrayElement(w.le, &w.leFirst, r); err != nil {
			return err
		}
	}
	return nil
}

func (w *JSONArrayWriter) AppendSP(batch []*model.SoleProprietorRecord) error {
	for _, r := range batch {
		if err := writeJSONArrayElement(w.sp, &w.spFirst, r); err != nil {
			return err
		}
	}
	return nil
}

func writeJSONArrayElement(w *bufio.Writer, first *bool, v interface{}) error {
	if !*first {
		if _, err := w.WriteString(","); err != nil {
			return types.IOError(err, "writing array separator")
		}
	}
	*first = false
	b, err := json.Marshal(v)
	if err != nil {
		return types.SerializationError(err, "marshaling record")
	}
	if _, err := w.Write(b); err != nil {
		return types.IOError(err, "writing json record")
	}
	return nil
}

func (w *JSONArrayWriter) Close() error {
	if _, err := w.le.WriteString("]"); err != nil {
		return types.IOError(err, "closing LE array")
	}
	if _, err := w.sp.WriteString("]"); err != nil {
		return types.IOError(err, "closing SP array")
	}
	if err := w.le.Flush(); err != nil {
		return types.IOError(err, "flushing LE json")
	}
	if err := w.sp.Flush(); err != nil {
		return types.IOError(err, "flushing SP json")
	}
	w.leFile.Close()
	w.spFile.Close()
	return nil
}
