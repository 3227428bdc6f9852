package registry

import (
	"fmt"

	"github.com/candeira/go-multihash/multihash"
)

// Sum hashes data with the function identified by code in the default
// registry and returns the encoded multihash.
//
// length selects the stored digest length: -1 takes the function's default,
// a smaller value stores a truncated digest per the multihash truncation
// convention, and a value beyond the natural digest size is rejected.
func Sum(code uint64, data []byte, length int) ([]byte, error) {
	return SumIn(Default(), code, data, length)
}

// SumIn is Sum against a caller-supplied registry.
func SumIn(r *Registry, code uint64, data []byte, length int) ([]byte, error) {
	d, ok := r.Lookup(code)
	if !ok {
		return nil, multihash.NewError(multihash.KindUnknownFunction,
			fmt.Sprintf("registry: no hash function registered for code 0x%x", code))
	}
	full, _ := r.Compute(code, data)

	if length < 0 {
		length = d.DefaultLength
		if length < 0 {
			length = len(full)
		}
	}
	if length > len(full) {
		return nil, multihash.NewError(multihash.KindInvalidArgument,
			fmt.Sprintf("registry: requested length %d exceeds %s digest size %d", length, d.Name, len(full)))
	}
	return multihash.Encode(code, full[:length])
}
