package tlvtree

import (
    "bytes"
    "encoding/binary"
)

// Kind describes the shape of a node's value.
type Kind uint8

const (
    KindUint8 Kind = iota
    KindUint32
    KindBytes
    KindStruct
    KindArray
    KindRecord
)

func (k Kind) String() string {
    switch k {
    case KindUint8:
        return "uint8"
    case KindUint32:
        return "uint32"
    case KindBytes:
        return "bytes"
    case KindStruct:
        return "struct"
    case KindArray:
        return "array"
    case KindRecord:
        return "record"
    }
    return "invalid"
}

// NodeID indexes a node inside a Tree's arena.
type NodeID int32

// NilNode is the id of no node. A root's Parent is NilNode.
const NilNode NodeID = -1

// Node is one element of the parse tree. Children hold node ids and Parent is
// a plain id used only for upward navigation, never for lifetime management:
// the arena owns every node.
type Node struct {
    Name string
    Kind Kind

    // Offset is the node's byte position in the source document. Size is the
    // number of bytes the node's serialization occupies. Both are maintained
    // by decode and by Resync.
    Offset int64
    Size int

    // Uint carries KindUint8/KindUint32 values, Raw carries KindBytes.
    Uint uint64
    Raw []byte

    Parent NodeID
    Children []NodeID

    // Dirty marks a node whose subtree changed since the last Resync.
    Dirty bool
}

func (n *Node) isLeaf() bool {
    switch n.Kind {
    case KindUint8, KindUint32, KindBytes:
        return true
    }
    return false
}

// Tree is an arena of parse nodes. Nodes are created by a Decoder pass or by
// the New*Record builders and stay in the arena until the tree is discarded;
// replacing a subtree merely unlinks it.
type Tree struct {
    nodes []Node
}

func NewTree() *Tree {
    return &Tree{}
}

// Node returns the node for id. The pointer stays valid until the next
// allocation on the tree.
func (t *Tree) Node(id NodeID) *Node {
    return &t.nodes[id]
}

// Len is the number of nodes in the arena, including unlinked ones.
func (t *Tree) Len() int {
    return len(t.nodes)
}

func (t *Tree) alloc(n Node) NodeID {
    n.Parent = NilNode
    t.nodes = append(t.nodes, n)
    return NodeID(len(t.nodes) - 1)
}

func (t *Tree) link(parent, child NodeID) {
    t.Node(child).Parent = parent
    p := t.Node(parent)
    p.Children = append(p.Children, child)
}

// Field returns the child of a composite node with the given slot name.
func (t *Tree) Field(id NodeID, name string) (NodeID, bool) {
    for _, c := range t.Node(id).Children {
        if t.Node(c).Name == name {
            return c, true
        }
    }
    return NilNode, false
}

// Serialize writes the node's bytes to w in schema order and returns the
// number of bytes written. A record's length field is written as currently
// stored, it is never recomputed here; call RecomputeLengths first if the
// subtree was mutated.
func (t *Tree) Serialize(id NodeID, w *bytes.Buffer) int {
    n := t.Node(id)
    switch n.Kind {
    case KindUint8:
        w.WriteByte(byte(n.Uint))
        return 1
    case KindUint32:
        var b [4]byte
        binary.LittleEndian.PutUint32(b[:], uint32(n.Uint))
        w.Write(b[:])
        return 4
    case KindBytes:
        s, _ := w.Write(n.Raw)
        return s
    default:
        tot := 0
        for _, c := range n.Children {
            tot += t.Serialize(c, w)
        }
        return tot
    }
}

// Bytes serializes the subtree rooted at id.
func (t *Tree) Bytes(id NodeID) []byte {
    var b bytes.Buffer
    b.Grow(t.Node(id).Size)
    t.Serialize(id, &b)
    return b.Bytes()
}
