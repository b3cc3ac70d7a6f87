package tlvtree

import (
    "fmt"
)

// Replace swaps the i-th child of a composite node for repl, retargeting the
// parent links and marking the slot and every ancestor dirty. It deliberately
// does NOT touch lengths or offsets: the enclosing record's length field and
// all later siblings' offsets stay desynchronized until the caller runs
// Resync. The displaced subtree stays in the arena, unlinked.
//
// Shape rules: an array slot accepts any record node; a struct or record slot
// only accepts a node of the same kind as the child it displaces. A violation
// fails with ErrSchemaMismatch and changes nothing.
func (t *Tree) Replace(parent NodeID, i int, repl NodeID) error {
    p := t.Node(parent)
    if p.isLeaf() {
        return fmt.Errorf("%w: %s node has no children", ErrSchemaMismatch, p.Kind)
    }
    if i < 0 || i >= len(p.Children) {
        return fmt.Errorf("%w: child index %d out of range (%d children)", ErrSchemaMismatch, i, len(p.Children))
    }
    old := t.Node(p.Children[i])
    r := t.Node(repl)
    switch p.Kind {
    case KindArray:
        if r.Kind != KindRecord {
            return fmt.Errorf("%w: array element must be a record, got %s", ErrSchemaMismatch, r.Kind)
        }
    default:
        if r.Kind != old.Kind {
            return fmt.Errorf("%w: slot %q holds %s, got %s", ErrSchemaMismatch, old.Name, old.Kind, r.Kind)
        }
        r.Name = old.Name
    }
    old.Parent = NilNode
    p.Children[i] = repl
    r.Parent = parent
    r.Dirty = true
    for a := parent; a != NilNode; a = t.Node(a).Parent {
        t.Node(a).Dirty = true
    }
    return nil
}

// The builders below allocate well-formed record subtrees from plain values,
// without any byte source behind them. Lengths and sizes are computed at
// build time; offsets are only meaningful once the subtree is linked into a
// document and resynced, so every built node starts out dirty.

func (t *Tree) newLeafUint8(name string, v uint8) NodeID {
    return t.alloc(Node{Name: name, Kind: KindUint8, Size: 1, Uint: uint64(v), Dirty: true})
}

func (t *Tree) newLeafUint32(name string, v uint32) NodeID {
    return t.alloc(Node{Name: name, Kind: KindUint32, Size: 4, Uint: uint64(v), Dirty: true})
}

func (t *Tree) newRecord(tag Tag, payload NodeID) NodeID {
    size := RecordHeaderSize + t.Node(payload).Size
    id := t.alloc(Node{Name: "record", Kind: KindRecord, Size: size, Dirty: true})
    t.link(id, t.newLeafUint8(FieldTag, uint8(tag)))
    t.link(id, t.newLeafUint32(FieldLength, uint32(size)))
    t.Node(payload).Name = FieldPayload
    t.link(id, payload)
    return id
}

// NewUintRecord builds a tag 0 record carrying v. Total size is always 9.
func (t *Tree) NewUintRecord(v uint32) NodeID {
    p := t.alloc(Node{Kind: KindUint32, Size: 4, Uint: uint64(v), Dirty: true})
    return t.newRecord(TagUint, p)
}

// NewTextRecord builds a tag 1 record carrying text. The bytes are copied.
func (t *Tree) NewTextRecord(text []byte) NodeID {
    raw := make([]byte, len(text))
    copy(raw, text)
    p := t.alloc(Node{Kind: KindBytes, Size: len(raw), Raw: raw, Dirty: true})
    return t.newRecord(TagText, p)
}

// NewListRecord builds a tag 2 record owning the given element records.
// Elements must be record nodes built on (or decoded into) the same tree.
func (t *Tree) NewListRecord(elems ...NodeID) NodeID {
    size := 0
    for _, e := range elems {
        size += t.Node(e).Size
    }
    arr := t.alloc(Node{Name: FieldElements, Kind: KindArray, Size: size, Dirty: true})
    for _, e := range elems {
        t.link(arr, e)
    }
    p := t.alloc(Node{Name: "list", Kind: KindStruct, Size: 4 + size, Dirty: true})
    t.link(p, t.newLeafUint32(FieldCount, uint32(len(elems))))
    t.link(p, arr)
    return t.newRecord(TagList, p)
}
