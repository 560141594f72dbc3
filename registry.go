package ods

import (
	"fmt"
	"sync"
)

// CustomTagFunc constructs a custom tag from its decoded name and raw value
// bytes. The value slice is owned by the callee.
type CustomTagFunc func(name string, value []byte) (Tag, error)

var (
	registryMu sync.RWMutex
	customTags = map[TagType]CustomTagFunc{}
	tolerant   bool
)

// RegisterCustomTag installs a decoder for a user-defined type ID. IDs 0-15
// are reserved for the format. Registering an existing ID replaces it.
func RegisterCustomTag(id TagType, fn CustomTagFunc) error {
	if id <= maxReservedType {
		return fmt.Errorf("%w: %d", ErrReservedTypeID, id)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil constructor for type %d", ErrInvalidCustomTag, id)
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	customTags[id] = fn
	return nil
}

func customTagFor(id TagType) (CustomTagFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn, ok := customTags[id]
	return fn, ok
}

// SetTolerant toggles tolerant parsing. When on, a type ID with no handler
// decodes to an InvalidTag carrying the raw value instead of failing with
// ErrUnknownType. No other error is affected.
func SetTolerant(v bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	tolerant = v
}

// Tolerant reports whether tolerant parsing is on.
func Tolerant() bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return tolerant
}
