package encoding

import (
	"unicode"

	"github.com/corpix/sigli/radix"
)

// Plain1Alphabet maps digit n to the n-th symbol, 'a' is the zero digit.
const Plain1Alphabet = "abcdefghijklmnopqrstuvwxyz0912345678 ,."

const plain1Base = uint32(len(Plain1Alphabet))

var plain1Digits = func() map[rune]byte {
	m := make(map[rune]byte, len(Plain1Alphabet))
	for n, c := range Plain1Alphabet {
		m[c] = byte(n)
	}
	return m
}()

// EncodeDecoderPlain1 writes buffers as lowercase text of letters, digits,
// space, comma and period, which makes it suitable for short human written
// messages. Decoding is lenient: letters of any case are accepted, every
// whitespace character except carriage return (which is dropped) reads as a
// space and symbols outside of the alphabet are skipped.
//
// Every leading zero byte is written as one leading 'a' and the rest is a
// plain base conversion, so text made of alphabet symbols only survives
// Decode followed by Encode unchanged.
type EncodeDecoderPlain1 struct{}

var _ EncodeDecoder = &EncodeDecoderPlain1{}

//

func (e *EncodeDecoderPlain1) Encode(buf []byte) ([]byte, error) {
	zeros := leadingZeros(buf)
	digits := append(make([]byte, zeros), radix.Convert(buf[zeros:], 256, plain1Base)...)
	for n, d := range digits {
		digits[n] = Plain1Alphabet[d]
	}
	return digits, nil
}

func (e *EncodeDecoderPlain1) Decode(buf []byte) ([]byte, error) {
	digits := make([]byte, 0, len(buf))
	for _, c := range string(buf) {
		switch {
		case c == '\r':
			continue
		case unicode.IsSpace(c):
			c = ' '
		case 'A' <= c && c <= 'Z':
			c += 'a' - 'A'
		}
		if d, ok := plain1Digits[c]; ok {
			digits = append(digits, d)
		}
	}
	zeros := leadingZeros(digits)
	return append(make([]byte, zeros), radix.Convert(digits[zeros:], plain1Base, 256)...), nil
}

func NewEncodeDecoderPlain1() *EncodeDecoderPlain1 {
	return &EncodeDecoderPlain1{}
}

func leadingZeros(digits []byte) int {
	n := 0
	for n < len(digits) && digits[n] == 0 {
		n++
	}
	return n
}
