package multihash

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// String forms for encoded multihashes. These operate on wire bytes, not on
// decoded values: the From variants validate through Decode, so a string
// that parses but does not frame a multihash still fails with the usual
// codec kinds.

// HexString returns the hex form of an encoded multihash.
func HexString(encoded []byte) string {
	return hex.EncodeToString(encoded)
}

// FromHexString decodes a multihash from its hex form.
func FromHexString(s string) (Multihash, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Multihash{}, WrapError(KindInvalidArgument, "multihash: invalid hex string", err)
	}
	return Decode(buf)
}

// B58String returns the base58 (bitcoin alphabet) form of an encoded
// multihash, the conventional text form in content-addressing systems.
func B58String(encoded []byte) string {
	return base58.Encode(encoded)
}

// FromB58String decodes a multihash from its base58 form.
func FromB58String(s string) (Multihash, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return Multihash{}, WrapError(KindInvalidArgument, "multihash: invalid base58 string", err)
	}
	return Decode(buf)
}
