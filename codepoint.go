package emojidata

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"strconv"
	"strings"
)

var ErrInvalidCodePoint = errors.New("invalid code point")

const (
	codePointSeparator = "-"

	supplementaryMin = 0x10000
	supplementaryMax = 0x10FFFF

	highSurrogateBase = 0xD800
	lowSurrogateBase  = 0xDC00
	surrogateMax      = 0xDFFF
	surrogateSpan     = 0x400
)

var utf16Text = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// Decode converts a hyphen delimited sequence of hex code points,
// e.g. "1F9D1-200D-1F373", into the literal text it represents.
func Decode(unified string) (string, error) {
	units, err := DecodeUnits(unified)
	if err != nil {
		return "", err
	}

	if pos := unpairedSurrogate(units); pos != -1 {
		return "", errors.Wrapf(ErrInvalidCodePoint, "sequence %q: unpaired surrogate %04X", unified, units[pos])
	}

	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(buf[2*i:], u)
	}

	b, err := utf16Text.NewDecoder().Bytes(buf)
	if err != nil {
		return "", errors.Wrapf(ErrInvalidCodePoint, "could not decode %q: %s", unified, err.Error())
	}

	return string(b), nil
}

// DecodeUnits converts a hyphen delimited sequence of hex code points into
// UTF-16 code units, in token order. Surrogate values given as tokens are
// emitted as they are, so "D83D-DE00" yields the same units as "1F600".
func DecodeUnits(unified string) ([]uint16, error) {
	if unified == "" {
		return nil, errors.Wrap(ErrInvalidCodePoint, "empty code point sequence")
	}

	tokens := strings.Split(unified, codePointSeparator)
	units := make([]uint16, 0, 2*len(tokens))

	for _, tok := range tokens {
		cp, err := parseCodePoint(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "sequence %q", unified)
		}

		if cp >= supplementaryMin {
			high, low := EncodeSurrogates(cp)
			units = append(units, high, low)
		} else {
			units = append(units, uint16(cp))
		}
	}

	return units, nil
}

// EncodeSurrogates splits a supplementary plane code point into its
// high and low surrogates. The result is undefined outside 0x10000-0x10FFFF.
func EncodeSurrogates(cp rune) (high, low uint16) {
	v := cp - supplementaryMin
	high = uint16(v/surrogateSpan + highSurrogateBase)
	low = uint16(v%surrogateSpan + lowSurrogateBase)
	return
}

func parseCodePoint(tok string) (rune, error) {
	if tok == "" {
		return 0, errors.Wrap(ErrInvalidCodePoint, "empty token")
	}

	v, err := strconv.ParseUint(tok, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidCodePoint, "token %q is not hexadecimal", tok)
	}

	if v > supplementaryMax {
		return 0, errors.Wrapf(ErrInvalidCodePoint, "token %q is beyond U+10FFFF", tok)
	}

	return rune(v), nil
}

// unpairedSurrogate returns the index of the first surrogate unit that is
// not part of a high/low pair, or -1.
func unpairedSurrogate(units []uint16) int {
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= highSurrogateBase && u < lowSurrogateBase:
			if i+1 < len(units) && units[i+1] >= lowSurrogateBase && units[i+1] <= surrogateMax {
				i++
				continue
			}
			return i
		case u >= lowSurrogateBase && u <= surrogateMax:
			return i
		}
	}

	return -1
}
