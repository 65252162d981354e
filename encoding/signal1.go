package encoding

import (
	"github.com/corpix/sigli/radix"
)

const (
	signal1Base         = 26
	signal1GroupLetters = 5
	signal1LineLetters  = 6 * signal1GroupLetters
)

// EncodeDecoderSignal1 writes buffers as uppercase letters in groups of five,
// six groups per line:
//
//	ZKCNU ZOSJI INMQH YBFNP BKBSY XGZWK
//	PMXVZ DLRDK TPBCQ EFIYS ZRHPS XUEJL
//	JKKBG YRN
//
// Spaces, line feeds and carriage returns are ignored on decode, anything
// else outside of A-Z is rejected.
// Conversion cost grows with the square of the buffer length.
type EncodeDecoderSignal1 struct{}

var _ EncodeDecoder = &EncodeDecoderSignal1{}

//

func (e *EncodeDecoderSignal1) Encode(buf []byte) ([]byte, error) {
	digits := radix.ConvertWidth(buf, 256, signal1Base, radix.Width(len(buf), 256, signal1Base))

	out := make([]byte, 0, len(digits)+len(digits)/signal1GroupLetters+1)
	for n, d := range digits {
		if n > 0 {
			switch {
			case n%signal1LineLetters == 0:
				out = append(out, '\n')
			case n%signal1GroupLetters == 0:
				out = append(out, ' ')
			}
		}
		out = append(out, 'A'+d)
	}
	return append(out, '\n'), nil
}

func (e *EncodeDecoderSignal1) Decode(buf []byte) ([]byte, error) {
	digits := make([]byte, 0, len(buf))
	for offset, c := range string(buf) {
		switch {
		case 'A' <= c && c <= 'Z':
			digits = append(digits, byte(c-'A'))
		case c == ' ' || c == '\n' || c == '\r':
		default:
			return nil, malformed(c, offset)
		}
	}
	return radix.ConvertWidth(digits, signal1Base, 256, radix.Capacity(len(digits), signal1Base, 256)), nil
}

func NewEncodeDecoderSignal1() *EncodeDecoderSignal1 {
	return &EncodeDecoderSignal1{}
}
