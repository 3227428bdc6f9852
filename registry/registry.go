// Package registry supplies the hash-function table the multihash codec
// consumes: a mapping from function codes to descriptors and concrete
// hash.Hash constructors.
//
// A Registry is mutable only while being built. Construct it once at process
// start, register every function, and treat it as read-only afterwards; all
// lookup paths are then safe for concurrent use without locking. Default
// returns a shared table prebuilt this way.
package registry

import (
	"errors"
	"fmt"
	"hash"
)

var (
	// ErrDuplicate means a function code or name was registered twice.
	ErrDuplicate = errors.New("registry: duplicate hash function")

	// ErrNilConstructor means Register was handed a nil constructor.
	ErrNilConstructor = errors.New("registry: nil hash constructor")
)

// Descriptor describes one registered hash function.
type Descriptor struct {
	Code uint64
	Name string

	// DefaultLength is the digest length in bytes that Sum emits when the
	// caller does not choose one. -1 marks variable-output functions with
	// no conventional length.
	DefaultLength int
}

type entry struct {
	desc    Descriptor
	newHash func() hash.Hash
}

// Registry maps function codes to hash implementations.
type Registry struct {
	byCode map[uint64]entry
	byName map[string]uint64
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byCode: make(map[uint64]entry),
		byName: make(map[string]uint64),
	}
}

// Register adds a function to the table. Codes and names must be unique.
func (r *Registry) Register(d Descriptor, newHash func() hash.Hash) error {
	if newHash == nil {
		return fmt.Errorf("%w: %q (0x%x)", ErrNilConstructor, d.Name, d.Code)
	}
	if d.Name == "" {
		return fmt.Errorf("registry: empty name for code 0x%x", d.Code)
	}
	if _, ok := r.byCode[d.Code]; ok {
		return fmt.Errorf("%w: code 0x%x", ErrDuplicate, d.Code)
	}
	if _, ok := r.byName[d.Name]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicate, d.Name)
	}
	r.byCode[d.Code] = entry{desc: d, newHash: newHash}
	r.byName[d.Name] = d.Code
	return nil
}

// Lookup returns the descriptor for a function code.
func (r *Registry) Lookup(code uint64) (Descriptor, bool) {
	e, ok := r.byCode[code]
	return e.desc, ok
}

// ByName returns the descriptor for a function name, e.g. "sha2-256".
func (r *Registry) ByName(name string) (Descriptor, bool) {
	code, ok := r.byName[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.byCode[code].desc, true
}

// New returns a fresh hash instance for a function code.
func (r *Registry) New(code uint64) (hash.Hash, bool) {
	e, ok := r.byCode[code]
	if !ok {
		return nil, false
	}
	return e.newHash(), true
}

// Compute returns the full digest of data under the function identified by
// code. It satisfies the codec's Computer capability.
func (r *Registry) Compute(code uint64, data []byte) ([]byte, bool) {
	h, ok := r.New(code)
	if !ok {
		return nil, false
	}
	h.Write(data)
	return h.Sum(nil), true
}
