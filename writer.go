package emojidata

import (
	"bytes"
	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

// arrays are never folded onto a single line, as with JSON.stringify
var artifactFormat = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// Marshal renders records as a JSON array indented with two spaces,
// keeping each record's field order.
func Marshal(records []*Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			buf.WriteByte(',')
		}

		b, err := r.MarshalJSON()
		if err != nil {
			return nil, errors.Wrapf(err, "could not marshal record %d", i)
		}

		buf.Write(b)
	}
	buf.WriteByte(']')

	return Format(buf.Bytes()), nil
}

// Format pretty prints any JSON document the same way artifacts are
// written. Like JSON.stringify, no newline follows the closing bracket.
func Format(json []byte) []byte {
	return bytes.TrimSuffix(pretty.PrettyOptions(json, artifactFormat), []byte("\n"))
}

func Digest(b []byte) uint64 {
	return xxhash.Sum64(b)
}
