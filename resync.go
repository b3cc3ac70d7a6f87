package tlvtree

// RecomputeLengths re-derives the byte size of every node in the subtree and
// rewrites each record's length field (and each list's count field) from what
// its children actually occupy. It runs bottom-up: a parent's length depends
// on its children's recomputed sizes. Returns the subtree's serialized size.
func (t *Tree) RecomputeLengths(id NodeID) int {
    n := t.Node(id)
    switch n.Kind {
    case KindUint8:
        n.Size = 1
    case KindUint32:
        n.Size = 4
    case KindBytes:
        n.Size = len(n.Raw)
    default:
        tot := 0
        for _, c := range n.Children {
            tot += t.RecomputeLengths(c)
        }
        n.Size = tot
        switch n.Kind {
        case KindRecord:
            if length, ok := t.Field(id, FieldLength); ok {
                t.Node(length).Uint = uint64(tot)
            }
        case KindStruct:
            // A list payload keeps its element count in a sibling field.
            count, ok := t.Field(id, FieldCount)
            elems, ok2 := t.Field(id, FieldElements)
            if ok && ok2 {
                t.Node(count).Uint = uint64(len(t.Node(elems).Children))
            }
        }
        return tot
    }
    return n.Size
}

// ResyncOffsets reassigns offsets in document order: the first child starts
// at its parent's start, every next sibling at the previous sibling's offset
// plus its size. The root keeps its current offset as the base. Run it after
// RecomputeLengths, since placement consumes the recomputed sizes.
func (t *Tree) ResyncOffsets(id NodeID) {
    t.place(id, t.Node(id).Offset)
}

func (t *Tree) place(id NodeID, off int64) int64 {
    n := t.Node(id)
    n.Offset = off
    if n.isLeaf() {
        return off + int64(n.Size)
    }
    cur := off
    for _, c := range n.Children {
        cur = t.place(c, cur)
    }
    return cur
}

// Resync recomputes lengths bottom-up, reassigns offsets in document order
// and clears the dirty flags. It is the explicit counterpart to Replace and
// the builders; nothing in the engine resyncs implicitly. Idempotent.
func (t *Tree) Resync(id NodeID) {
    t.RecomputeLengths(id)
    t.ResyncOffsets(id)
    t.clean(id)
}

func (t *Tree) clean(id NodeID) {
    t.Node(id).Dirty = false
    for _, c := range t.Node(id).Children {
        t.clean(c)
    }
}
