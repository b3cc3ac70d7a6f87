// Package source provides seekable, sliceable views over bytes for the
// decoder to read from, backed by memory or by a file. Sources are read-only;
// decode either fully succeeds against the bytes presented or fails
// deterministically.
package source

import (
    "errors"
    "fmt"
)

// ErrOutOfRange is returned by a read past the end of the source.
var ErrOutOfRange = errors.New("Read out of range")

// Source is a bounded view over bytes. ReadAt returns exactly n bytes at off
// or fails with ErrOutOfRange; the returned slice is only valid until the
// next call and must not be modified.
type Source interface {
    ReadAt(off int64, n int) ([]byte, error)
    Size() int64
}

// Buffer is a memory-backed Source.
type Buffer []byte

func (b Buffer) Size() int64 {
    return int64(len(b))
}

func (b Buffer) ReadAt(off int64, n int) ([]byte, error) {
    if off < 0 || n < 0 || off+int64(n) > int64(len(b)) {
        return nil, fmt.Errorf("%w: [%d:%d) of %d", ErrOutOfRange, off, off+int64(n), len(b))
    }
    return b[off : off+int64(n)], nil
}
