// Package radix re-expresses big-endian digit sequences in another base.
//
// Numbers are arbitrary precision, each digit sequence is read most
// significant digit first. Conversion is schoolbook long division over the
// whole digit array for every output digit, so the cost is quadratic in the
// input length: fine for keys and short messages, a poor fit for large
// payloads.
//
// Plain conversion drops leading zero digits, which loses information when the
// digits are bytes of a buffer. Width and Capacity give the two halves of the
// length convention fixed width codecs use to keep leading zero bytes:
//
//	digits := ConvertWidth(buf, 256, b, Width(len(buf), 256, b))
//	buf = ConvertWidth(digits, b, 256, Capacity(len(digits), b, 256))
//
// For any base b below 256 this recovers buf exactly.
package radix

import (
	"math"

	"github.com/corpix/sigli/errors"
)

type Digit interface {
	~uint8 | ~uint16 | ~uint32
}

func checkBases(from, to uint32) {
	if from < 2 || to < 2 {
		panic(errors.Errorf("radix bases must be at least 2, got from=%d to=%d", from, to))
	}
}

// Convert returns digits, a big-endian base from number, as a big-endian base
// to number without leading zero digits. Zero converts to an empty sequence.
// Every input digit must be below from and to must fit the digit type.
func Convert[D Digit](digits []D, from, to uint32) []D {
	checkBases(from, to)

	work := make([]uint64, len(digits))
	for n, d := range digits {
		work[n] = uint64(d)
	}

	var (
		base    = uint64(from)
		divisor = uint64(to)
		head    = skipZeros(work, 0)
		out     = make([]D, 0, len(digits))
	)
	for head < len(work) {
		var rem uint64
		for n := head; n < len(work); n++ {
			acc := rem*base + work[n]
			work[n] = acc / divisor
			rem = acc % divisor
		}
		out = append(out, D(rem))
		head = skipZeros(work, head)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ConvertWidth is Convert left padded with zero digits up to width.
// A result that needs more than width digits is returned whole.
func ConvertWidth[D Digit](digits []D, from, to uint32, width int) []D {
	out := Convert(digits, from, to)
	if len(out) >= width {
		return out
	}
	padded := make([]D, width)
	copy(padded[width-len(out):], out)
	return padded
}

// Width is the least k such that to^k >= from^n, the number of base to digits
// required to hold every n digit base from number.
func Width(n int, from, to uint32) int {
	checkBases(from, to)
	x := digitRatio(n, from, to)
	if nearInteger(x) {
		return exactWidth(n, from, to)
	}
	return int(math.Ceil(x))
}

// Capacity is the greatest n such that to^n <= from^k, the number of base to
// digits every k digit base from number is guaranteed to fill.
// For from < to it inverts Width: Capacity(Width(n, to, from), from, to) == n.
func Capacity(k int, from, to uint32) int {
	checkBases(from, to)
	x := digitRatio(k, from, to)
	if nearInteger(x) {
		return exactCapacity(k, from, to)
	}
	return int(math.Floor(x))
}

// digitRatio is n*log(from)/log(to), the exact digit count as a real number.
func digitRatio(n int, from, to uint32) float64 {
	return float64(n) * math.Log(float64(from)) / math.Log(float64(to))
}

// nearInteger reports whether rounding error could put x on the wrong side
// of an integer, exact powers such as 256^n == 16^2n land here.
func nearInteger(x float64) bool {
	tolerance := 1e-9 * math.Max(1, x)
	return x-math.Floor(x) < tolerance || math.Ceil(x)-x < tolerance
}

func exactWidth(n int, from, to uint32) int {
	return len(Convert(largest(n, from), from, to))
}

func exactCapacity(k int, from, to uint32) int {
	max := Convert(largest(k, from), from, to)
	for _, d := range max {
		if uint32(d) != to-1 {
			return len(max) - 1
		}
	}
	// from^k is an exact power of to.
	return len(max)
}

func largest(n int, base uint32) []uint32 {
	digits := make([]uint32, n)
	for i := range digits {
		digits[i] = base - 1
	}
	return digits
}

func skipZeros(work []uint64, from int) int {
	for from < len(work) && work[from] == 0 {
		from++
	}
	return from
}
