// Package store is the persistence layer for serialized record documents. It
// exposes a small backend interface set so document storage is not tied to
// one KV engine; the badger subpackage provides the production backend.
package store

type IDB interface {
    Close() error
    View(func(ITxn) error) error
    Update(func(ITxn) error) error
}

// IItem is a lazy value.
type IItem interface {
    Key() []byte
    Value() ([]byte, error)
}

type ITxn interface {
    Get(key []byte) (IItem, error)
    Set(key []byte, value []byte) error
    Delete(key []byte) error
    NewIterator(prefix []byte) IIterator
}

type IIterator interface {
    Close()

    Seek(key []byte)
    Next()
    Valid() bool

    Item() IItem
}
