package encoding

import (
	"bytes"
	"encoding/hex"
	"unicode"

	"github.com/corpix/sigli/errors"
)

const hexGroupDigits = 4

type EncodeDecoderHex struct{}

var _ EncodeDecoder = &EncodeDecoderHex{}

//

// Encode writes uppercase hex digits in hyphen separated groups of four
// followed by a line feed, AB0102222343 becomes "AB01-0222-2343\n".
func (e *EncodeDecoderHex) Encode(buf []byte) ([]byte, error) {
	digits := make([]byte, hex.EncodedLen(len(buf)))
	hex.Encode(digits, buf)
	digits = bytes.ToUpper(digits)

	out := make([]byte, 0, len(digits)+len(digits)/hexGroupDigits+1)
	for n, c := range digits {
		if n > 0 && n%hexGroupDigits == 0 {
			out = append(out, '-')
		}
		out = append(out, c)
	}
	return append(out, '\n'), nil
}

// Decode accepts hex digits of either case, hyphens and whitespace are ignored.
func (e *EncodeDecoderHex) Decode(buf []byte) ([]byte, error) {
	digits := make([]byte, 0, len(buf))
	for offset, c := range string(buf) {
		switch {
		case c < unicode.MaxASCII && isHexDigit(byte(c)):
			digits = append(digits, byte(c))
		case c == '-' || unicode.IsSpace(c):
		default:
			return nil, malformed(c, offset)
		}
	}
	if len(digits)%2 != 0 {
		return nil, errors.Wrapf(ErrMalformedInput, "odd number of hex digits %d", len(digits))
	}

	out := make([]byte, hex.DecodedLen(len(digits)))
	_, err := hex.Decode(out, digits)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedInput, err.Error())
	}
	return out, nil
}

func NewEncodeDecoderHex() *EncodeDecoderHex {
	return &EncodeDecoderHex{}
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
