package emojidata

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"math"
	"strconv"
	"strings"
)

const hexDigits = "0123456789abcdef"

// Normalize re-renders a JSON document in compact form the way
// JSON.stringify does: strings escaped minimally, numbers in their
// shortest form, duplicate object keys collapsed to the last value.
func Normalize(json []byte) ([]byte, error) {
	if !gjson.ValidBytes(json) {
		return nil, errors.Wrap(ErrInvalidDataset, "malformed json")
	}

	var buf bytes.Buffer
	appendNormalized(&buf, gjson.ParseBytes(json))
	return buf.Bytes(), nil
}

func normalizedRaw(v gjson.Result) string {
	var buf bytes.Buffer
	appendNormalized(&buf, v)
	return buf.String()
}

func appendNormalized(buf *bytes.Buffer, v gjson.Result) {
	switch v.Type {
	case gjson.String:
		buf.WriteString(quoteJSON(v.Str))
	case gjson.Number:
		buf.WriteString(formatNumber(v.Num))
	case gjson.True:
		buf.WriteString("true")
	case gjson.False:
		buf.WriteString("false")
	case gjson.Null:
		buf.WriteString("null")
	default:
		switch {
		case v.IsObject():
			b, _ := newRecordFromJSON(v).MarshalJSON()
			buf.Write(b)
		case v.IsArray():
			buf.WriteByte('[')
			i := 0
			v.ForEach(func(_, el gjson.Result) bool {
				if i > 0 {
					buf.WriteByte(',')
				}
				appendNormalized(buf, el)
				i++
				return true
			})
			buf.WriteByte(']')
		default:
			buf.WriteString("null")
		}
	}
}

// formatNumber renders f as Number.prototype.toString does: fixed
// notation for 1e-6 <= |f| < 1e21, exponent notation otherwise.
func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}

	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}

// quoteJSON escapes only quotes, backslashes and control characters.
func quoteJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xF])
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
