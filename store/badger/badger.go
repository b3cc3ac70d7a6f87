// Package badger backs the store interfaces with dgraph-io/badger.
package badger

import (
    "io"

    "github.com/dgraph-io/badger"
    "github.com/rs/zerolog"

    "github.com/hansonkd/tlvtree/store"
)

const prefetchSize = 100

// Log is the adapter's logger. Discards by default.
var Log = zerolog.New(io.Discard)

func translateError(e error) error {
    switch e {
    case nil:
        return nil
    case badger.ErrKeyNotFound:
        return store.ErrKeyNotFound
    case badger.ErrEmptyKey:
        return store.ErrEmptyKey
    case badger.ErrConflict:
        return store.ErrConflict
    case badger.ErrReadOnlyTxn:
        return store.ErrReadOnlyTxn
    case badger.ErrDiscardedTxn:
        return store.ErrDiscardedTxn
    default:
        return store.NewBackendError(e)
    }
}

type BadgerDB struct {
    db *badger.DB
}

func OpenBadgerDB(dir string) (*store.DB, error) {
    opts := badger.DefaultOptions(dir)
    opts.Logger = nil
    return OpenDBWithOpts(opts)
}

func OpenDBWithOpts(opts badger.Options) (*store.DB, error) {
    Log.Info().Str("dir", opts.Dir).Msg("opening badger db")
    db, err := badger.Open(opts)
    if err != nil {
        return nil, translateError(err)
    }
    return store.NewDB(&BadgerDB{db}), nil
}

func (db *BadgerDB) Close() error {
    return translateError(db.db.Close())
}

func (db *BadgerDB) View(f func(store.ITxn) error) error {
    return db.db.View(func(txn *badger.Txn) error {
        return f(&BadgerTxn{txn})
    })
}

func (db *BadgerDB) Update(f func(store.ITxn) error) error {
    return db.db.Update(func(txn *badger.Txn) error {
        return f(&BadgerTxn{txn})
    })
}

type BadgerTxn struct {
    txn *badger.Txn
}

func (t *BadgerTxn) Get(key []byte) (store.IItem, error) {
    item, err := t.txn.Get(key)
    if err != nil {
        return nil, translateError(err)
    }
    return &BadgerItem{item}, nil
}

func (t *BadgerTxn) Set(key []byte, value []byte) error {
    return translateError(t.txn.Set(key, value))
}

func (t *BadgerTxn) Delete(key []byte) error {
    return translateError(t.txn.Delete(key))
}

func (t *BadgerTxn) NewIterator(prefix []byte) store.IIterator {
    opts := badger.DefaultIteratorOptions
    opts.PrefetchSize = prefetchSize
    opts.Prefix = prefix
    return &BadgerIterator{it: t.txn.NewIterator(opts), prefix: prefix}
}

type BadgerItem struct {
    item *badger.Item
}

func (i *BadgerItem) Key() []byte {
    return i.item.Key()
}

func (i *BadgerItem) Value() ([]byte, error) {
    v, err := i.item.ValueCopy(nil)
    return v, translateError(err)
}

type BadgerIterator struct {
    it *badger.Iterator
    prefix []byte
}

func (i *BadgerIterator) Close() { i.it.Close() }

// Seek positions at the first key >= key; a nil key rewinds to the start of
// the iterator's prefix.
func (i *BadgerIterator) Seek(key []byte) {
    if len(key) == 0 {
        i.it.Rewind()
        return
    }
    i.it.Seek(key)
}

func (i *BadgerIterator) Next() { i.it.Next() }
func (i *BadgerIterator) Valid() bool { return i.it.Valid() }
func (i *BadgerIterator) Item() store.IItem { return &BadgerItem{i.it.Item()} }
