package tlvtree

import (
    "github.com/hansonkd/tlvtree/source"
    "github.com/hansonkd/tlvtree/store"
)

const tableDocument = byte(0)

func documentKey(name []byte) []byte {
    return append([]byte{tableDocument}, name...)
}

// A Document binds a parse tree to a key in the store for the lifetime of a
// transaction. Open it, read or mutate the tree, then Commit to resync and
// write the serialized bytes back. Nothing is persisted until Commit.
type Document struct {
    *Tree
    Root NodeID
    reg *Registry
    name []byte
    txn *store.Txn
}

// OpenDocument loads and decodes the document stored under name. A missing
// key yields an empty document whose Root is NilNode; build a record with the
// New*Record builders and SetRoot it before committing.
func OpenDocument(reg *Registry, name []byte, txn *store.Txn) (*Document, error) {
    if len(name) == 0 {
        return nil, store.ErrEmptyKey
    }
    key := append([]byte{}, name...)
    switch item, err := txn.Get(documentKey(name)); {
    case err == nil:
        raw, err := item.Value()
        if err != nil {
            return nil, err
        }
        d := NewDecoder(reg, source.Buffer(raw))
        root, err := d.DecodeRecord(0)
        if err != nil {
            return nil, err
        }
        return &Document{Tree: d.Tree(), Root: root, reg: reg, name: key, txn: txn}, nil
    case err == store.ErrKeyNotFound:
        return &Document{Tree: NewTree(), Root: NilNode, reg: reg, name: key, txn: txn}, nil
    default:
        return nil, err
    }
}

// SetRoot installs the record subtree to persist on the next Commit.
func (doc *Document) SetRoot(id NodeID) {
    doc.Root = id
}

// Commit resyncs the tree and writes its serialization back under the
// document's key. A rootless document commits nothing.
func (doc *Document) Commit() error {
    if doc.Root == NilNode {
        return nil
    }
    if !doc.txn.CanWrite() {
        return store.ErrReadOnlyTxn
    }
    doc.Resync(doc.Root)
    return doc.txn.Set(documentKey(doc.name), doc.Bytes(doc.Root))
}

// Drop deletes the document from the store.
func (doc *Document) Drop() error {
    return doc.txn.Delete(documentKey(doc.name))
}

// Documents lists the names of all documents visible to txn, in key order.
func Documents(txn *store.Txn) ([][]byte, error) {
    it := txn.NewIterator([]byte{tableDocument})
    defer it.Close()

    var names [][]byte
    for it.Seek(nil); it.Valid(); it.Next() {
        full := txn.TrimDomain(it.Item().Key())
        name := make([]byte, len(full)-1)
        copy(name, full[1:])
        names = append(names, name)
    }
    return names, nil
}
