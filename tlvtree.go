// Package tlvtree is a generic engine for decoding, encoding and mutating
// self-describing, recursively nested binary records. Each record on the wire
// carries a type tag, a total-length field and a type-specific payload whose
// shape is resolved only after the tag has been read. Decoding produces an
// offset-tracking parse tree; mutation is an explicit two-step contract of
// replace-then-resync so that lengths and offsets are recomputed exactly once,
// bottom-up, rather than silently on every edit.
package tlvtree

import (
    "errors"
)

// A record header is 1 tag byte followed by a 4 byte little-endian length.
// The length counts the entire record including the header itself.
const RecordHeaderSize = 5

// Tag identifies a record variant within one Registry.
type Tag uint8

var (
    // ErrUnknownTag is returned when a decoded tag has no variant registered.
    ErrUnknownTag = errors.New("Unknown tag")

    // ErrDuplicateTag is returned when registering a variant under a tag that is already bound.
    ErrDuplicateTag = errors.New("Duplicate tag")

    // ErrTruncatedInput is returned when fewer bytes are available than the current field declares.
    ErrTruncatedInput = errors.New("Truncated input")

    // ErrSchemaMismatch is returned when a mutation would place a node of an
    // incompatible shape into a fixed-schema slot.
    ErrSchemaMismatch = errors.New("Schema mismatch")
)
