package multihash

import (
	"crypto/subtle"
	"fmt"
)

// Computer is the capability the codec needs from a hash-function registry:
// compute the full digest of data under the function identified by code. The
// boolean is false when the code is not registered.
//
// Implementations must be safe for concurrent use; the codec treats them as
// read-only collaborators.
type Computer interface {
	Compute(code uint64, data []byte) (digest []byte, ok bool)
}

// Verify decodes encoded as a multihash and reports whether it matches data.
// See Multihash.Verify for the comparison contract.
func Verify(c Computer, data, encoded []byte) (bool, error) {
	m, err := Decode(encoded)
	if err != nil {
		return false, err
	}
	return m.Verify(c, data)
}

// Verify recomputes the digest of data under m.Code and compares it against
// the stored digest.
//
// The stored digest may be a truncation of the function's natural output, so
// the comparison runs against the leading len(m.Digest) bytes of the freshly
// computed full digest, in constant time. A stored digest longer than the
// full digest can never match.
//
// A mismatch is a normal false result, not an error. Errors are reserved for
// structural problems: an empty stored digest, or a function code the
// registry cannot resolve (KindUnknownFunction).
func (m Multihash) Verify(c Computer, data []byte) (bool, error) {
	if len(m.Digest) == 0 {
		return false, NewError(KindEmptyDigest, "multihash: verify against empty digest")
	}
	full, ok := c.Compute(m.Code, data)
	if !ok {
		return false, NewError(KindUnknownFunction,
			fmt.Sprintf("multihash: no hash function registered for code 0x%x", m.Code))
	}
	if len(m.Digest) > len(full) {
		return false, nil
	}
	return subtle.ConstantTimeCompare(m.Digest, full[:len(m.Digest)]) == 1, nil
}
