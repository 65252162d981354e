package encoding

import (
	"strings"

	"github.com/corpix/sigli/errors"
	"github.com/corpix/sigli/reflect"
)

type (
	// EncodeDecoder converts between a canonical byte buffer and its
	// transmissible form. Encode packs, Decode unpacks and for any buffer
	// Decode(Encode(buf)) returns buf.
	EncodeDecoder interface {
		Encode([]byte) ([]byte, error)
		Decode([]byte) ([]byte, error)
	}
	EncodeDecoderType string
)

const (
	EncodeDecoderTypeRaw     EncodeDecoderType = "raw"
	EncodeDecoderTypeHex     EncodeDecoderType = "hex"
	EncodeDecoderTypePlain1  EncodeDecoderType = "plain1"
	EncodeDecoderTypeSignal1 EncodeDecoderType = "signal1"

	DefaultKeyFormat    = EncodeDecoderTypeHex
	DefaultPlainFormat  = EncodeDecoderTypePlain1
	DefaultCipherFormat = EncodeDecoderTypeSignal1
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidFormat  = errors.New("invalid format")

	descriptions = map[EncodeDecoderType]string{
		EncodeDecoderTypeRaw:     "binary, passed through unchanged",
		EncodeDecoderTypeHex:     "uppercase hexadecimal in hyphen separated blocks of 4 digits",
		EncodeDecoderTypePlain1:  "lowercase letters, digits, space, comma and period",
		EncodeDecoderTypeSignal1: "uppercase letters in blocks of 5, 6 blocks per line",
	}

	// plain1 has meaningful whitespace, a damaged key would decode silently.
	keyCapable = map[EncodeDecoderType]struct{}{
		EncodeDecoderTypeRaw:     {},
		EncodeDecoderTypeHex:     {},
		EncodeDecoderTypeSignal1: {},
	}
)

//

func malformed(c rune, offset int) error {
	return errors.Wrapf(ErrMalformedInput, "unexpected character %q at offset %d", c, offset)
}

//

func NewEncodeDecoder(name string) (EncodeDecoder, error) {
	switch EncodeDecoderType(strings.ToLower(name)) {
	case EncodeDecoderTypeRaw:
		return NewEncodeDecoderRaw(), nil
	case EncodeDecoderTypeHex:
		return NewEncodeDecoderHex(), nil
	case EncodeDecoderTypePlain1:
		return NewEncodeDecoderPlain1(), nil
	case EncodeDecoderTypeSignal1:
		return NewEncodeDecoderSignal1(), nil
	default:
		return nil, errors.Wrapf(ErrInvalidFormat, "unsupported format %q", name)
	}
}

func MustNewEncodeDecoder(name string) EncodeDecoder {
	e, err := NewEncodeDecoder(name)
	if err != nil {
		panic(err)
	}
	return e
}

// Names lists every registered format, sorted.
func Names() []string {
	return reflect.MapSortedKeys(reflect.ValueOf(descriptions))
}

// KeyNames lists the formats suitable for key material, sorted.
func KeyNames() []string {
	return reflect.MapSortedKeys(reflect.ValueOf(keyCapable))
}

func IsKeyFormat(name string) bool {
	_, ok := keyCapable[EncodeDecoderType(strings.ToLower(name))]
	return ok
}

func Describe(name string) string {
	return descriptions[EncodeDecoderType(strings.ToLower(name))]
}
