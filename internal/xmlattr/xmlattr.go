// Package xmlattr provides typed, alias-tolerant accessors over
// encoding/xml start-tag attributes, plus namespace-stripping tag
// comparison. The source XML is attribute-heavy and the same logical
// field often appears under more than one legacy spelling across
// schema generations, so every accessor here takes a list of
// candidate attribute names and returns the first that is present.
package xmlattr

import (
	"strconv"
	"strings"
	"time"

	"encoding/xml"
)

// dateLayouts is the cascade of accepted date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006.01.02",
	"02/01/2006",
	"20060102",
}

// LocalName strips any namespace prefix up to the first colon from a
// raw tag or attribute name and returns the bare local name.
func LocalName(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// TagMatches reports whether elem's local name (namespace-stripped)
// equals any of aliases.
func TagMatches(elem xml.Name, aliases ...string) bool {
	local := LocalName(elem.Local)
	for _, a := range aliases {
		if local == a {
			return true
		}
	}
	return false
}

// find returns the trimmed value of the first attribute among names
// present on attrs, and whether any matched and was non-empty.
func find(attrs []xml.Attr, names ...string) (string, bool) {
	for _, name := range names {
		for _, a := range attrs {
			if LocalName(a.Name.Local) != name {
				continue
			}
			v := strings.TrimSpace(a.Value)
			if v == "" {
				continue
			}
			return v, true
		}
	}
	return "", false
}

// String returns the first non-empty, trimmed value among the named
// attribute aliases.
func String(attrs []xml.Attr, names ...string) (string, bool) {
	return find(attrs, names...)
}

// Date parses the first present attribute among names using the
// accepted date-format cascade (YYYY-MM-DD, DD.MM.YYYY, YYYY.MM.DD,
// DD/MM/YYYY, YYYYMMDD). Returns ok=false when no alias is present;
// returns an error when an alias is present but no format matches.
func Date(attrs []xml.Attr, names ...string) (time.Time, bool, error) {
	raw, ok := find(attrs, names...)
	if !ok {
		return time.Time{}, false, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true, nil
		}
	}
	return time.Time{}, true, errDateParse(raw)
}

// Float parses the first present attribute among names as a
// floating-point number, tolerating a comma decimal separator.
func Float(attrs []xml.Attr, names ...string) (float64, bool, error) {
	raw, ok := find(attrs, names...)
	if !ok {
		return 0, false, nil
	}
	normalized := strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// Int parses the first present attribute among names as a signed
// integer.
func Int(attrs []xml.Attr, names ...string) (int64, bool, error) {
	raw, ok := find(attrs, names...)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// Bool parses the first present attribute among names as a boolean.
// Accepted truthy spellings (case-insensitive): "1", "true", "да",
// "yes". Anything else present is false.
func Bool(attrs []xml.Attr, names ...string) (bool, bool) {
	raw, ok := find(attrs, names...)
	if !ok {
		return false, false
	}
	switch strings.ToLower(raw) {
	case "1", "true", "да", "yes":
		return true, true
	default:
		return false, true
	}
}

// errDateParse is a sentinel-style error carrying the offending value;
// callers that need the pipeline's typed ErrDateParse kind should wrap
// with types.DateParseError(raw) instead of inspecting this directly.
type dateParseError struct{ value string }

func (e dateParseError) Error() string { return "no accepted date format matched " + strconv.Quote(e.value) }

func errDateParse(value string) error { return dateParseError{value: value} }
