// Package multihash implements the multihash self-describing digest format:
// a raw digest prefixed with a varint function code and a varint digest
// length, so that the encoded bytes identify themselves without external
// context.
//
// Wire format, bit-exact:
//
//	varint(function_code) || varint(digest_length) || digest
//
// The codec is strict. A buffer either decodes into exactly one multihash or
// fails with a distinct error kind; short input is never zero-padded and
// extra bytes are never ignored. Unknown function codes decode successfully
// (the format permits application-specific codes); only Verify, which must
// actually run a hash function, requires the code to resolve against a
// registry.
//
// All operations are pure functions over their inputs and are safe for
// concurrent use.
package multihash

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/candeira/go-multihash/varint"
)

// Multihash is a decoded (function code, digest) pair. The digest length of
// the wire format is implied by len(Digest).
//
// Construct values through Decode so inputs are checked; a zero Multihash is
// not valid.
type Multihash struct {
	Code   uint64
	Digest []byte
}

// Length returns the digest length in bytes.
func (m Multihash) Length() int {
	return len(m.Digest)
}

// Bytes re-encodes m into its canonical wire form.
func (m Multihash) Bytes() ([]byte, error) {
	return Encode(m.Code, m.Digest)
}

// Equal reports whether two multihashes carry the same code and digest.
// This is a structural comparison; use Verify to compare against data.
func (m Multihash) Equal(o Multihash) bool {
	return m.Code == o.Code && bytes.Equal(m.Digest, o.Digest)
}

// Encode packs a function code and a digest into the multihash wire form.
//
// The digest is trusted as supplied: no registry consultation, no length
// check against the function's natural output, no recomputation. The only
// rejected input is an empty digest, which the format cannot represent.
func Encode(code uint64, digest []byte) ([]byte, error) {
	if len(digest) == 0 {
		return nil, NewError(KindEmptyDigest, "multihash: cannot encode empty digest")
	}
	buf := make([]byte, 0, varint.Len(code)+varint.Len(uint64(len(digest)))+len(digest))
	buf = varint.Append(buf, code)
	buf = varint.Append(buf, uint64(len(digest)))
	return append(buf, digest...), nil
}

// Decode unpacks buf into its multihash components with strict format
// checking.
//
// Distinct failure kinds: KindTruncated when buf ends before the declared
// structure is complete, KindTrailingData when bytes remain after it,
// KindOverflow when a varint field is out of range or non-minimal, and
// KindEmptyDigest when the declared digest length is zero.
//
// The returned digest is copied out of buf; the caller may reuse buf freely
// afterwards.
func Decode(buf []byte) (Multihash, error) {
	code, length, dn, err := decodeHeader(buf)
	if err != nil {
		return Multihash{}, err
	}

	rest := buf[dn:]
	switch {
	case length == 0:
		return Multihash{}, NewError(KindEmptyDigest, "multihash: zero digest length")
	case uint64(len(rest)) < length:
		return Multihash{}, NewError(KindTruncated,
			fmt.Sprintf("multihash: digest truncated: have %d of %d bytes", len(rest), length))
	case uint64(len(rest)) > length:
		return Multihash{}, NewError(KindTrailingData,
			fmt.Sprintf("multihash: %d trailing bytes after digest", uint64(len(rest))-length))
	}

	digest := make([]byte, length)
	copy(digest, rest)
	return Multihash{Code: code, Digest: digest}, nil
}

// IsValid reports whether Decode would succeed on buf, without constructing
// the value. It is the sole operation that converts codec failures into a
// boolean; callers needing to know why a buffer is invalid must use Decode.
func IsValid(buf []byte) bool {
	_, length, dn, err := decodeHeader(buf)
	if err != nil {
		return false
	}
	return length != 0 && uint64(len(buf)-dn) == length
}

// decodeHeader reads the two varint fields and returns the function code,
// the declared digest length and the header size in bytes.
func decodeHeader(buf []byte) (code, length uint64, n int, err error) {
	code, cn, err := varint.Decode(buf)
	if err != nil {
		return 0, 0, 0, wrapVarintErr(err, "function code")
	}
	length, ln, err := varint.DecodeAt(buf, cn)
	if err != nil {
		return 0, 0, 0, wrapVarintErr(err, "digest length")
	}
	return code, length, cn + ln, nil
}

// wrapVarintErr lifts a varint sentinel into the codec taxonomy, keeping the
// sentinel reachable through errors.Is.
func wrapVarintErr(err error, field string) error {
	kind := KindOverflow
	if errors.Is(err, varint.ErrUnderflow) {
		kind = KindTruncated
	}
	return WrapError(kind, fmt.Sprintf("multihash: reading %s: %v", field, err), err)
}
