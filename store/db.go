package store

import (
    "bytes"
)

// DB wraps a backend and hands out domain-scoped transactions. The domain is
// a key prefix isolating one application area (one protocol family's
// documents, an index, ...) from the others sharing the backend.
type DB struct {
    IDB
}

func NewDB(idb IDB) *DB {
    return &DB{idb}
}

func (db *DB) View(domain []byte, f func(*Txn) error) error {
    wrapped := func(iTxn ITxn) error {
        return f(&Txn{iTxn, false, db, domain})
    }
    return db.IDB.View(wrapped)
}

func (db *DB) Update(domain []byte, f func(*Txn) error) error {
    wrapped := func(iTxn ITxn) error {
        return f(&Txn{iTxn, true, db, domain})
    }
    return db.IDB.Update(wrapped)
}

// Txn is a backend transaction scoped to a domain. Every key passed in is
// prefixed with the domain before it reaches the backend.
type Txn struct {
    ITxn
    write bool
    db *DB
    domain []byte
}

func (rTxn *Txn) Get(key []byte) (IItem, error) {
    return rTxn.ITxn.Get(append(append([]byte{}, rTxn.domain...), key...))
}

func (rTxn *Txn) Set(key []byte, val []byte) error {
    if !rTxn.write {
        return ErrReadOnlyTxn
    }
    return rTxn.ITxn.Set(append(append([]byte{}, rTxn.domain...), key...), val)
}

func (rTxn *Txn) Delete(key []byte) error {
    if !rTxn.write {
        return ErrReadOnlyTxn
    }
    return rTxn.ITxn.Delete(append(append([]byte{}, rTxn.domain...), key...))
}

// NewIterator iterates keys under prefix, inside the transaction's domain.
func (rTxn *Txn) NewIterator(prefix []byte) IIterator {
    full := append(append([]byte{}, rTxn.domain...), prefix...)
    return rTxn.ITxn.NewIterator(full)
}

func (rTxn *Txn) TrimDomain(s []byte) []byte {
    return bytes.TrimPrefix(s, rTxn.domain)
}

func (rTxn *Txn) CanWrite() bool {
    return rTxn.write
}
