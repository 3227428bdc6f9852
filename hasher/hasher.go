// Package hasher provides an incremental hashing object in the style of the
// usual update/digest/copy hash APIs, finalizing into a multihash encoding.
// It is a convenience layer over a registry and the codec; it adds no codec
// semantics of its own.
package hasher

import (
	"encoding"
	"encoding/hex"
	"fmt"
	"hash"

	"github.com/candeira/go-multihash/multihash"
	"github.com/candeira/go-multihash/registry"
)

// Hasher accumulates input for one hash function and emits raw, hex or
// multihash-encoded digests. Digest does not finalize: more input may be
// written afterwards, as with any hash.Hash.
//
// A Hasher is not safe for concurrent use.
type Hasher struct {
	reg  *registry.Registry
	desc registry.Descriptor
	h    hash.Hash
}

// New returns a hasher for the given function code.
func New(r *registry.Registry, code uint64) (*Hasher, error) {
	desc, ok := r.Lookup(code)
	if !ok {
		return nil, multihash.NewError(multihash.KindUnknownFunction,
			fmt.Sprintf("hasher: no hash function registered for code 0x%x", code))
	}
	h, _ := r.New(code)
	return &Hasher{reg: r, desc: desc, h: h}, nil
}

// NewByName returns a hasher for a function name, e.g. "sha2-256".
func NewByName(r *registry.Registry, name string) (*Hasher, error) {
	desc, ok := r.ByName(name)
	if !ok {
		return nil, multihash.NewError(multihash.KindUnknownFunction,
			fmt.Sprintf("hasher: no hash function registered as %q", name))
	}
	return New(r, desc.Code)
}

// Write absorbs more input. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.h.Write(p)
}

// Digest returns the raw digest of the input written so far.
func (h *Hasher) Digest() []byte {
	return h.h.Sum(nil)
}

// HexDigest returns the hex form of Digest.
func (h *Hasher) HexDigest() string {
	return hex.EncodeToString(h.Digest())
}

// Encoded returns the multihash encoding of the current digest.
func (h *Hasher) Encoded() ([]byte, error) {
	return multihash.Encode(h.desc.Code, h.Digest())
}

// EncodedTruncated returns the multihash encoding of the first k bytes of
// the current digest.
func (h *Hasher) EncodedTruncated(k int) ([]byte, error) {
	d := h.Digest()
	if k < 1 || k > len(d) {
		return nil, multihash.NewError(multihash.KindInvalidArgument,
			fmt.Sprintf("hasher: truncation length %d outside 1..%d", k, len(d)))
	}
	return multihash.Encode(h.desc.Code, d[:k])
}

// Clone returns an independent copy of the hasher carrying the same
// accumulated state. The underlying implementation must support binary
// state marshaling (the standard library and x/crypto hashes do); for ones
// that do not, Clone fails with KindInvalidArgument.
func (h *Hasher) Clone() (*Hasher, error) {
	m, ok := h.h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, multihash.NewError(multihash.KindInvalidArgument,
			fmt.Sprintf("hasher: %s state does not support cloning", h.desc.Name))
	}
	state, err := m.MarshalBinary()
	if err != nil {
		return nil, multihash.WrapError(multihash.KindInvalidArgument,
			fmt.Sprintf("hasher: marshaling %s state", h.desc.Name), err)
	}
	fresh, _ := h.reg.New(h.desc.Code)
	u, ok := fresh.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, multihash.NewError(multihash.KindInvalidArgument,
			fmt.Sprintf("hasher: %s state does not support cloning", h.desc.Name))
	}
	if err := u.UnmarshalBinary(state); err != nil {
		return nil, multihash.WrapError(multihash.KindInvalidArgument,
			fmt.Sprintf("hasher: unmarshaling %s state", h.desc.Name), err)
	}
	return &Hasher{reg: h.reg, desc: h.desc, h: fresh}, nil
}

// Reset discards all accumulated input.
func (h *Hasher) Reset() {
	h.h.Reset()
}

// Size returns the natural digest length in bytes.
func (h *Hasher) Size() int {
	return h.h.Size()
}

// BlockSize returns the underlying block size.
func (h *Hasher) BlockSize() int {
	return h.h.BlockSize()
}

// Code returns the multihash function code.
func (h *Hasher) Code() uint64 {
	return h.desc.Code
}

// Name returns the multihash function name.
func (h *Hasher) Name() string {
	return h.desc.Name
}
