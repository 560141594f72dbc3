package ods

import "errors"

var (
	// ErrMalformed reports header fields that are inconsistent with the tag
	// grammar, or a buffer underflow during a structured parse.
	ErrMalformed = errors.New("ods: malformed data")

	// ErrCompressedTraversal reports an attempt to descend into a
	// CompressedObject tag by key. Obtain the tag itself and traverse its
	// decoded value in memory instead.
	ErrCompressedTraversal = errors.New("ods: cannot traverse a compressed object")

	// ErrUnknownType reports a type ID with no built-in or registered custom
	// handler while tolerant mode is off.
	ErrUnknownType = errors.New("ods: unknown tag type")

	// ErrReservedTypeID reports a custom tag registration inside the
	// reserved ID range 0-15.
	ErrReservedTypeID = errors.New("ods: reserved tag type id")

	// ErrUnknownCompressor reports a compressor name with no registration.
	ErrUnknownCompressor = errors.New("ods: unknown compressor")

	// ErrInvalidCustomTag reports a custom tag registration without a
	// usable constructor.
	ErrInvalidCustomTag = errors.New("ods: invalid custom tag")

	// ErrKeyNotFound reports a Set with a nil tag (a delete) on a key that
	// does not resolve. Delete itself reports an absent key as false.
	ErrKeyNotFound = errors.New("ods: key not found")
)
