package tlvtree

import (
    "testing"

    "github.com/google/go-cmp/cmp"
    "github.com/stretchr/testify/require"

    "github.com/hansonkd/tlvtree/source"
)

var (
    uintRecordBytes = []byte{0x00, 0x09, 0x00, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12}
    textRecordBytes = []byte{0x01, 0x0B, 0x00, 0x00, 0x00, 'H', 'E', 'L', 'L', 'O', 0x00}
)

func listRecordBytes() []byte {
    b := []byte{0x02, 0x24, 0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00}
    for i := 0; i < 3; i++ {
        b = append(b, uintRecordBytes...)
    }
    return b
}

func TestDecodeUintRecord(t *testing.T) {
    tree, root, err := Parse(StandardRegistry(), source.Buffer(uintRecordBytes))
    require.NoError(t, err)

    n := tree.Node(root)
    require.Equal(t, KindRecord, n.Kind)
    require.Equal(t, int64(0), n.Offset)
    require.Equal(t, 9, n.Size)

    tag, ok := tree.Field(root, FieldTag)
    require.True(t, ok)
    require.Equal(t, uint64(0), tree.Node(tag).Uint)

    length, ok := tree.Field(root, FieldLength)
    require.True(t, ok)
    require.Equal(t, uint64(9), tree.Node(length).Uint)

    payload, ok := tree.Field(root, FieldPayload)
    require.True(t, ok)
    require.Equal(t, KindUint32, tree.Node(payload).Kind)
    require.Equal(t, uint64(0x12345678), tree.Node(payload).Uint)
    require.Equal(t, int64(5), tree.Node(payload).Offset)
}

func TestDecodeTextRecord(t *testing.T) {
    tree, root, err := Parse(StandardRegistry(), source.Buffer(textRecordBytes))
    require.NoError(t, err)
    require.Equal(t, 11, tree.Node(root).Size)

    payload, ok := tree.Field(root, FieldPayload)
    require.True(t, ok)
    n := tree.Node(payload)
    require.Equal(t, KindBytes, n.Kind)
    // The payload is exactly length-5 bytes; the embedded NUL is an ordinary
    // payload byte, not a terminator.
    require.Equal(t, []byte{'H', 'E', 'L', 'L', 'O', 0x00}, n.Raw)
}

func TestDecodeListRecord(t *testing.T) {
    tree, root, err := Parse(StandardRegistry(), source.Buffer(listRecordBytes()))
    require.NoError(t, err)
    require.Equal(t, 36, tree.Node(root).Size)

    payload, _ := tree.Field(root, FieldPayload)
    count, ok := tree.Field(payload, FieldCount)
    require.True(t, ok)
    require.Equal(t, uint64(3), tree.Node(count).Uint)

    elems, ok := tree.Elements(root)
    require.True(t, ok)
    children := tree.Node(elems).Children
    require.Len(t, children, 3)
    for i, c := range children {
        require.Equal(t, int64(9+9*i), tree.Node(c).Offset)
        require.Equal(t, 9, tree.Node(c).Size)
        p, _ := tree.Field(c, FieldPayload)
        require.Equal(t, uint64(305419896), tree.Node(p).Uint)
    }
}

func TestDecodeOffsetsContiguous(t *testing.T) {
    tree, root, err := Parse(StandardRegistry(), source.Buffer(listRecordBytes()))
    require.NoError(t, err)
    requireContiguous(t, tree, root)
}

func requireContiguous(t *testing.T, tree *Tree, id NodeID) {
    t.Helper()
    n := tree.Node(id)
    if len(n.Children) == 0 {
        return
    }
    require.Equal(t, n.Offset, tree.Node(n.Children[0]).Offset)
    for i := 0; i+1 < len(n.Children); i++ {
        cur := tree.Node(n.Children[i])
        next := tree.Node(n.Children[i+1])
        require.Equal(t, cur.Offset+int64(cur.Size), next.Offset)
    }
    for _, c := range n.Children {
        requireContiguous(t, tree, c)
    }
}

func TestDecodeUnknownTag(t *testing.T) {
    b := append([]byte{}, uintRecordBytes...)
    b[0] = 0x07
    _, _, err := Parse(StandardRegistry(), source.Buffer(b))
    require.ErrorIs(t, err, ErrUnknownTag)
}

func TestDecodeTruncated(t *testing.T) {
    cases := map[string][]byte{
        "EmptyBuffer": {},
        "HeaderOnly": textRecordBytes[:5],
        "ShortPayload": textRecordBytes[:8],
        "ShortListElement": listRecordBytes()[:20],
    }
    for name, b := range cases {
        b := b
        t.Run(name, func(t *testing.T) {
            _, _, err := Parse(StandardRegistry(), source.Buffer(b))
            require.ErrorIs(t, err, ErrTruncatedInput)
            // The source's bounds error stays reachable as the cause.
            require.ErrorIs(t, err, source.ErrOutOfRange)
        })
    }
}

func TestDecodeRoundTripBytes(t *testing.T) {
    for name, b := range map[string][]byte{
        "Uint": uintRecordBytes,
        "Text": textRecordBytes,
        "List": listRecordBytes(),
    } {
        b := b
        t.Run(name, func(t *testing.T) {
            tree, root, err := Parse(StandardRegistry(), source.Buffer(b))
            require.NoError(t, err)
            require.Equal(t, b, tree.Bytes(root))
        })
    }
}

// nodeShape is the structural projection compared across round trips: ids are
// arena-specific, so trees are compared by document-order shape instead.
type nodeShape struct {
    Name string
    Kind Kind
    Offset int64
    Size int
    Uint uint64
    Raw []byte
    Children int
}

func flatten(tree *Tree, id NodeID) []nodeShape {
    n := tree.Node(id)
    out := []nodeShape{{n.Name, n.Kind, n.Offset, n.Size, n.Uint, n.Raw, len(n.Children)}}
    for _, c := range n.Children {
        out = append(out, flatten(tree, c)...)
    }
    return out
}

func TestDecodeRoundTripStructural(t *testing.T) {
    reg := StandardRegistry()
    tree, root, err := Parse(reg, source.Buffer(listRecordBytes()))
    require.NoError(t, err)

    tree2, root2, err := Parse(reg, source.Buffer(tree.Bytes(root)))
    require.NoError(t, err)

    if diff := cmp.Diff(flatten(tree, root), flatten(tree2, root2)); diff != "" {
        t.Errorf("reparsed tree mismatch (-want +got):\n%s", diff)
    }
}

func TestDecodeShortLengthClampsPayload(t *testing.T) {
    // length=3 is smaller than the header itself; the payload defaults to 0
    // bytes rather than going negative.
    b := []byte{0x01, 0x03, 0x00, 0x00, 0x00}
    tree, root, err := Parse(StandardRegistry(), source.Buffer(b))
    require.NoError(t, err)
    payload, _ := tree.Field(root, FieldPayload)
    require.Equal(t, 0, tree.Node(payload).Size)
    require.Empty(t, tree.Node(payload).Raw)
}

func TestDecodeAtOffset(t *testing.T) {
    // Records are position-independent: the same bytes decode at any offset.
    b := append([]byte{0xFF, 0xFF, 0xFF}, uintRecordBytes...)
    d := NewDecoder(StandardRegistry(), source.Buffer(b))
    root, err := d.DecodeRecord(3)
    require.NoError(t, err)
    require.Equal(t, int64(3), d.Tree().Node(root).Offset)
    payload, _ := d.Tree().Field(root, FieldPayload)
    require.Equal(t, uint64(0x12345678), d.Tree().Node(payload).Uint)
}
