package registry

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/cloudflare/circl/xof/k12"
	sha256 "github.com/minio/sha256-simd"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Function codes from the multicodec table,
// https://github.com/multiformats/multicodec/blob/master/table.csv
const (
	SHA1          uint64 = 0x11
	SHA2_256      uint64 = 0x12
	SHA2_512      uint64 = 0x13
	SHA3_512      uint64 = 0x14
	SHA3_384      uint64 = 0x15
	SHA3_256      uint64 = 0x16
	SHA3_224      uint64 = 0x17
	SHAKE_128     uint64 = 0x18
	SHAKE_256     uint64 = 0x19
	KECCAK_256    uint64 = 0x1b
	BLAKE3        uint64 = 0x1e
	MURMUR3X64_64 uint64 = 0x22
	DBL_SHA2_256  uint64 = 0x56
	MD5           uint64 = 0xd4
	K12           uint64 = 0x1d01
	BLAKE2B_256   uint64 = 0xb220
	BLAKE2B_512   uint64 = 0xb240
	BLAKE2S_256   uint64 = 0xb260
)

var defaultRegistry = newDefault()

// Default returns the shared registry carrying the standard multicodec hash
// functions. It is built once and must not be registered into; callers
// needing extra functions build their own with New.
func Default() *Registry {
	return defaultRegistry
}

func newDefault() *Registry {
	r := New()

	mustRegister(r, Descriptor{Code: MD5, Name: "md5", DefaultLength: md5.Size}, md5.New)
	mustRegister(r, Descriptor{Code: SHA1, Name: "sha1", DefaultLength: sha1.Size}, sha1.New)
	mustRegister(r, Descriptor{Code: SHA2_256, Name: "sha2-256", DefaultLength: sha256.Size},
		sha256.New)
	mustRegister(r, Descriptor{Code: SHA2_512, Name: "sha2-512", DefaultLength: sha512.Size},
		sha512.New)

	mustRegister(r, Descriptor{Code: SHA3_224, Name: "sha3-224", DefaultLength: 28}, sha3.New224)
	mustRegister(r, Descriptor{Code: SHA3_256, Name: "sha3-256", DefaultLength: 32}, sha3.New256)
	mustRegister(r, Descriptor{Code: SHA3_384, Name: "sha3-384", DefaultLength: 48}, sha3.New384)
	mustRegister(r, Descriptor{Code: SHA3_512, Name: "sha3-512", DefaultLength: 64}, sha3.New512)
	mustRegister(r, Descriptor{Code: SHAKE_128, Name: "shake-128", DefaultLength: 32},
		func() hash.Hash { return &xofHash{s: sha3.NewShake128(), size: 32, rate: 168} })
	mustRegister(r, Descriptor{Code: SHAKE_256, Name: "shake-256", DefaultLength: 64},
		func() hash.Hash { return &xofHash{s: sha3.NewShake256(), size: 64, rate: 136} })
	mustRegister(r, Descriptor{Code: KECCAK_256, Name: "keccak-256", DefaultLength: 32},
		sha3.NewLegacyKeccak256)

	mustRegister(r, Descriptor{Code: DBL_SHA2_256, Name: "dbl-sha2-256", DefaultLength: sha256.Size},
		func() hash.Hash { return doubleSHA256{sha256.New()} })

	mustRegister(r, Descriptor{Code: BLAKE3, Name: "blake3", DefaultLength: 32},
		func() hash.Hash { return blake3.New(32, nil) })
	mustRegister(r, Descriptor{Code: MURMUR3X64_64, Name: "murmur3-x64-64", DefaultLength: 8},
		func() hash.Hash { return murmur3.New64() })
	mustRegister(r, Descriptor{Code: K12, Name: "kangarootwelve", DefaultLength: 32},
		func() hash.Hash { return &k12Hash{s: k12.NewDraft10(nil), size: 32} })

	// The multicodec table reserves a code per blake2b digest size.
	for n := 1; n <= blake2b.Size; n++ {
		size := n
		mustRegister(r, Descriptor{
			Code:          0xb200 + uint64(n),
			Name:          fmt.Sprintf("blake2b-%d", n*8),
			DefaultLength: n,
		}, func() hash.Hash {
			h, err := blake2b.New(size, nil)
			if err != nil {
				// blake2b.New only rejects sizes outside 1..64.
				panic(err)
			}
			return h
		})
	}
	mustRegister(r, Descriptor{Code: BLAKE2S_256, Name: "blake2s-256", DefaultLength: blake2s.Size},
		func() hash.Hash {
			h, err := blake2s.New256(nil)
			if err != nil {
				panic(err)
			}
			return h
		})

	return r
}

func mustRegister(r *Registry, d Descriptor, newHash func() hash.Hash) {
	if err := r.Register(d, newHash); err != nil {
		panic(err)
	}
}

// xofHash presents an extendable-output function as a fixed-size hash.Hash.
// Sum reads from a clone so the running state is left undisturbed.
type xofHash struct {
	s    sha3.ShakeHash
	size int
	rate int
}

func (h *xofHash) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h *xofHash) Reset()                      { h.s.Reset() }
func (h *xofHash) Size() int                   { return h.size }
func (h *xofHash) BlockSize() int              { return h.rate }

func (h *xofHash) Sum(b []byte) []byte {
	c := h.s.Clone()
	d := make([]byte, h.size)
	c.Read(d)
	return append(b, d...)
}

// k12Hash is the same adapter for the KangarooTwelve xof.
type k12Hash struct {
	s    k12.State
	size int
}

func (h *k12Hash) Write(p []byte) (int, error) { return h.s.Write(p) }
func (h *k12Hash) Reset()                      { h.s.Reset() }
func (h *k12Hash) Size() int                   { return h.size }
func (h *k12Hash) BlockSize() int              { return 168 }

func (h *k12Hash) Sum(b []byte) []byte {
	c := h.s.Clone()
	d := make([]byte, h.size)
	c.Read(d)
	return append(b, d...)
}

// doubleSHA256 hashes the sha2-256 digest once more, the bitcoin-style
// dbl-sha2-256 function.
type doubleSHA256 struct {
	hash.Hash
}

func (d doubleSHA256) Sum(b []byte) []byte {
	first := d.Hash.Sum(nil)
	second := sha256.Sum256(first)
	return append(b, second[:]...)
}
