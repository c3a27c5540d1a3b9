package output

import (
	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
)

// Writer is the common contract every format backend satisfies: buffer
// a batch of typed records per stream, finish by flushing and closing.
type Writer interface {
	AppendLE(batch []*model.LegalEntityRecord) error
	AppendSP(batch []*model.SoleProprietorRecord) error
	Close() error
}

// New opens a writer of the given format rooted at stem.
func New(stem string, format Format, limits Limits) (Writer, error) {
	switch format {
	case Parquet:
		return NewParquetWriter(stem, limits), nil
	case JSONLines:
		return NewJSONLinesWriter(stem)
	case JSONArray:
		return NewJSONArrayWriter(stem)
	default:
		return nil, types.ConfigError(nil, "unsupported output format %v", format)
	}
}
