package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	assert.Equal(t, []byte{1, 0, 0}, Convert([]byte{1, 0}, 256, 16))
	assert.Equal(t, []byte{1, 0, 1}, Convert([]byte{0, 0, 5}, 10, 2))
	assert.Equal(t, []byte{6, 5, 5, 3, 5}, Convert([]byte{255, 255}, 256, 10))
	assert.Equal(t, []uint32{2, 12, 19, 19}, Convert([]uint32{0xab, 0x01}, 256, 26))
	assert.Equal(t, []uint16{0xab, 0x01}, Convert([]uint16{2, 12, 19, 19}, 26, 256))
}

func TestConvertZero(t *testing.T) {
	assert.Empty(t, Convert([]byte{}, 256, 26))
	assert.Empty(t, Convert([]byte{0, 0, 0}, 256, 26))
}

func TestConvertDoesNotModifyInput(t *testing.T) {
	in := []byte{0xde, 0xad, 0xbe, 0xef}
	Convert(in, 256, 7)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, in)
}

func TestConvertPanicsOnDegenerateBase(t *testing.T) {
	assert.Panics(t, func() { Convert([]byte{1}, 1, 10) })
	assert.Panics(t, func() { Convert([]byte{1}, 10, 0) })
}

func TestConvertWidth(t *testing.T) {
	assert.Equal(t, []byte{0, 0, 0, 1}, ConvertWidth([]byte{0, 1}, 256, 26, 4))
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, ConvertWidth([]byte{0, 0, 0}, 256, 26, 6))
	// never truncates
	assert.Equal(t, []byte{2, 12, 19, 19}, ConvertWidth([]byte{0xab, 0x01}, 256, 26, 2))
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(0, 256, 26))
	assert.Equal(t, 2, Width(1, 256, 26))
	assert.Equal(t, 12, Width(6, 256, 16))
	assert.Equal(t, 28, Width(16, 256, 26))
	assert.Equal(t, 55, Width(32, 256, 26))
	assert.Equal(t, 49, Width(32, 256, 39))
	assert.Equal(t, 436, Width(256, 256, 26))
	assert.Equal(t, 388, Width(256, 256, 39))
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 0, Capacity(0, 26, 256))
	assert.Equal(t, 0, Capacity(1, 26, 256))
	assert.Equal(t, 1, Capacity(2, 26, 256))
	assert.Equal(t, 32, Capacity(55, 26, 256))
	assert.Equal(t, 256, Capacity(436, 26, 256))
	assert.Equal(t, 1, Capacity(3, 16, 256))
	// exact powers
	assert.Equal(t, 2, Capacity(4, 16, 256))
}

func TestCapacityInvertsWidth(t *testing.T) {
	for _, base := range []uint32{2, 10, 16, 26, 39, 41, 255} {
		for n := 0; n <= 64; n++ {
			assert.Equal(t, n, Capacity(Width(n, 256, base), base, 256), "base %d, %d bytes", base, n)
		}
	}
}

func TestRoundTripKeepsLeadingZeros(t *testing.T) {
	buf := make([]byte, 256)
	for n := range buf {
		buf[n] = byte(n)
	}

	for _, base := range []uint32{26, 39} {
		digits := ConvertWidth(buf, 256, base, Width(len(buf), 256, base))
		for _, d := range digits {
			assert.Less(t, uint32(d), base)
		}
		back := ConvertWidth(digits, base, 256, Capacity(len(digits), base, 256))
		assert.Equal(t, buf, back, "base %d", base)
	}

	zeros := make([]byte, 32)
	digits := ConvertWidth(zeros, 256, 26, Width(len(zeros), 256, 26))
	assert.Len(t, digits, 55)
	assert.Equal(t, zeros, ConvertWidth(digits, 26, 256, Capacity(len(digits), 26, 256)))
}

func TestWidthAndCapacityMatchExactCount(t *testing.T) {
	for _, bases := range [][2]uint32{
		{256, 2}, {256, 10}, {256, 16}, {256, 26}, {256, 39}, {256, 64},
		{2, 256}, {16, 256}, {26, 256}, {39, 256}, {4, 16}, {8, 64},
	} {
		from, to := bases[0], bases[1]
		for n := 0; n <= 200; n++ {
			assert.Equal(t, exactWidth(n, from, to), Width(n, from, to), "width %d %d->%d", n, from, to)
			assert.Equal(t, exactCapacity(n, from, to), Capacity(n, from, to), "capacity %d %d->%d", n, from, to)
		}
	}
}
