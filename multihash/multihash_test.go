package multihash

import (
	"bytes"
	"testing"
)

func TestEncode_ConcreteVector(t *testing.T) {
	// Function code 18 (sha2-256) with a 32-byte all-zero digest must
	// yield 0x12 0x20 followed by the digest.
	digest := make([]byte, 32)
	enc, err := Encode(18, digest)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := append([]byte{0x12, 0x20}, digest...)
	if !bytes.Equal(enc, want) {
		t.Fatalf("Encode = %x, want %x", enc, want)
	}

	m, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Code != 18 || m.Length() != 32 || !bytes.Equal(m.Digest, digest) {
		t.Fatalf("Decode = (%d, %d, %x)", m.Code, m.Length(), m.Digest)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		code   uint64
		digest []byte
	}{
		{"single-byte code", 0x11, bytes.Repeat([]byte{0xab}, 20)},
		{"two-byte code", 0xb220, bytes.Repeat([]byte{0x01}, 32)},
		{"large code", 0x1d01, []byte{0xde, 0xad, 0xbe, 0xef}},
		{"application-specific code", 0x07, []byte{0x01}},
		{"one-byte digest", 0x12, []byte{0xff}},
		{"digest longer than 127", 0x12, bytes.Repeat([]byte{0x42}, 200)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := Encode(tc.code, tc.digest)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			m, err := Decode(enc)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if m.Code != tc.code {
				t.Errorf("code = 0x%x, want 0x%x", m.Code, tc.code)
			}
			if !bytes.Equal(m.Digest, tc.digest) {
				t.Errorf("digest = %x, want %x", m.Digest, tc.digest)
			}
			re, err := m.Bytes()
			if err != nil {
				t.Fatalf("Bytes: %v", err)
			}
			if !bytes.Equal(re, enc) {
				t.Errorf("re-encoded = %x, want %x", re, enc)
			}
		})
	}
}

func TestDecode_CopiesDigest(t *testing.T) {
	enc, err := Encode(0x12, bytes.Repeat([]byte{0x0f}, 32))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	m, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	enc[2] ^= 0xff
	if m.Digest[0] != 0x0f {
		t.Fatal("decoded digest aliases the input buffer")
	}
}

func TestDecode_UnknownCodeSucceeds(t *testing.T) {
	// The format allows application-specific codes; decoding never
	// consults a registry.
	enc, err := Encode(9999, []byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	m, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if m.Code != 9999 {
		t.Fatalf("code = %d, want 9999", m.Code)
	}
}

func TestDecode_TruncationDetectedAtEveryPrefix(t *testing.T) {
	enc, err := Encode(0xb220, bytes.Repeat([]byte{0x5a}, 32))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := 0; i < len(enc); i++ {
		_, err := Decode(enc[:i])
		if err == nil {
			t.Fatalf("Decode(prefix %d) succeeded", i)
		}
		if !IsKind(err, KindTruncated) {
			t.Errorf("Decode(prefix %d) kind = %v, want Truncated", i, err)
		}
	}
}

func TestDecode_TrailingDataDetected(t *testing.T) {
	enc, err := Encode(0x11, bytes.Repeat([]byte{0x5a}, 20))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, extra := range [][]byte{{0x00}, {0xff}, {0x01, 0x02, 0x03}} {
		_, err := Decode(append(append([]byte{}, enc...), extra...))
		if !IsKind(err, KindTrailingData) {
			t.Errorf("Decode(+%x) kind = %v, want TrailingData", extra, err)
		}
	}
}

func TestDecode_EmptyDigest(t *testing.T) {
	// 0x12 0x00 declares a zero-length digest.
	if _, err := Decode([]byte{0x12, 0x00}); !IsKind(err, KindEmptyDigest) {
		t.Errorf("Decode kind = %v, want EmptyDigest", err)
	}
}

func TestEncode_EmptyDigest(t *testing.T) {
	for _, digest := range [][]byte{nil, {}} {
		if _, err := Encode(0x12, digest); !IsKind(err, KindEmptyDigest) {
			t.Errorf("Encode(%v) kind = %v, want EmptyDigest", digest, err)
		}
	}
}

func TestIsValid(t *testing.T) {
	enc, err := Encode(0x12, bytes.Repeat([]byte{0x01}, 32))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !IsValid(enc) {
		t.Error("IsValid(valid) = false")
	}
	invalid := [][]byte{
		nil,
		{0x12},
		enc[:len(enc)-1],
		append(append([]byte{}, enc...), 0x00),
		{0x12, 0x00},
		{0x80, 0x00, 0x01, 0xaa}, // non-minimal code varint
	}
	for _, buf := range invalid {
		if IsValid(buf) {
			t.Errorf("IsValid(%x) = true", buf)
		}
	}
}

func TestEqual(t *testing.T) {
	a := Multihash{Code: 0x12, Digest: []byte{1, 2, 3}}
	b := Multihash{Code: 0x12, Digest: []byte{1, 2, 3}}
	c := Multihash{Code: 0x13, Digest: []byte{1, 2, 3}}
	d := Multihash{Code: 0x12, Digest: []byte{1, 2, 4}}
	if !a.Equal(b) {
		t.Error("a != b")
	}
	if a.Equal(c) || a.Equal(d) {
		t.Error("distinct multihashes compare equal")
	}
}
