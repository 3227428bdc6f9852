// Package varint implements the unsigned variable-length integer encoding
// used by the multihash wire format: base-128 with a continuation bit, least
// significant chunk first.
//
// Decoded values are capped at 63 bits so that every value fits an int64 and
// can safely size allocations downstream. Non-minimal encodings are rejected.
package varint

import "errors"

// MaxLen is the maximum encoded length of a value in the supported 63-bit
// range.
const MaxLen = 9

var (
	// ErrUnderflow means the buffer ended before a terminating byte
	// (high bit clear) was seen. Callers framing varints inside larger
	// messages can treat this as "need more bytes".
	ErrUnderflow = errors.New("varint: buffer too small")

	// ErrOverflow means the encoded value does not fit the supported
	// 63-bit range.
	ErrOverflow = errors.New("varint: value overflows 63-bit range")

	// ErrNotMinimal means the encoding carries a redundant trailing zero
	// chunk. Minimal encodings are required so that values have exactly
	// one byte representation.
	ErrNotMinimal = errors.New("varint: non-minimal encoding")

	// ErrInvalidOffset means a decode offset outside the buffer was
	// requested. This is a caller contract violation, not a data error.
	ErrInvalidOffset = errors.New("varint: offset out of range")
)

// Len returns the number of bytes Encode uses to represent v.
func Len(v uint64) int {
	n := 1
	for v > 0x7f {
		v >>= 7
		n++
	}
	return n
}

// Append appends the minimal encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	for v > 0x7f {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Encode returns the minimal encoding of v as a fresh slice.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Len(v)), v)
}

// Decode reads one varint from the front of buf and returns the value and
// the number of bytes consumed.
//
// Fails with ErrUnderflow if buf ends before a terminating byte, with
// ErrOverflow if the value exceeds 63 bits, and with ErrNotMinimal if the
// encoding is non-canonical.
func Decode(buf []byte) (uint64, int, error) {
	var v uint64
	for i, b := range buf {
		if i == MaxLen {
			// 9 bytes already hold 63 value bits; a continuation
			// past that cannot stay in range.
			return 0, 0, ErrOverflow
		}
		v |= uint64(b&0x7f) << uint(7*i)
		if b&0x80 == 0 {
			if b == 0 && i > 0 {
				return 0, 0, ErrNotMinimal
			}
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrUnderflow
}

// DecodeAt reads one varint starting at offset within buf.
func DecodeAt(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset > len(buf) {
		return 0, 0, ErrInvalidOffset
	}
	return Decode(buf[offset:])
}
