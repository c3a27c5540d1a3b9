package extract

import (
	"encoding/xml"
	"io"

	"github.com/kmakeev/egrul-go/internal/xmlattr"
	"github.com/kmakeev/egrul-go/pkg/types"
)

// skipElement consumes decoder tokens until the End matching start has
// been read, discarding everything in between. Used for nested
// elements the walker does not recognise.
func skipElement(dec *xml.Decoder) error {
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return types.XMLError(err, "skipping unrecognised element")
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

// firstAttr is a tiny helper matching xmlattr.String's "first alias
// present, non-empty" semantics against a StartElement directly.
func firstAttr(start xml.StartElement, names ...string) (string, bool) {
	return xmlattr.String(start.Attr, names...)
}

// setFirst assigns *dst = v only when dst currently holds the zero
// value, implementing the recognition table's "first present wins,
// later occurrences do not overwrite" rule.
func setFirst(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}

// errEOFRecord is an alias of io.EOF. No function in this package
// returns it: WalkLE and WalkSP compare the decoder's error against
// io.EOF directly.
var errEOFRecord = io.EOF
