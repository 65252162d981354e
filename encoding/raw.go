package encoding

type EncodeDecoderRaw struct{}

var _ EncodeDecoder = &EncodeDecoderRaw{}

//

func (e *EncodeDecoderRaw) Encode(buf []byte) ([]byte, error) {
	return clone(buf), nil
}

func (e *EncodeDecoderRaw) Decode(buf []byte) ([]byte, error) {
	return clone(buf), nil
}

func NewEncodeDecoderRaw() *EncodeDecoderRaw {
	return &EncodeDecoderRaw{}
}

func clone(buf []byte) []byte {
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}
