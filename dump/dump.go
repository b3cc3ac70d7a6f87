// Package dump renders parse trees and raw bytes for diagnostics. The engine
// never depends on it for correctness.
package dump

import (
    "fmt"
    "io"
    "strings"

    "github.com/hansonkd/tlvtree"
)

// Tree writes one line per node of the subtree at id: offset, slot name,
// kind, size, and the value for leaves.
func Tree(w io.Writer, t *tlvtree.Tree, id tlvtree.NodeID) {
    dumpNode(w, t, id, 0)
}

func dumpNode(w io.Writer, t *tlvtree.Tree, id tlvtree.NodeID, depth int) {
    n := t.Node(id)
    name := n.Name
    if name == "" {
        name = fmt.Sprintf("[%d]", childIndex(t, id))
    }
    fmt.Fprintf(w, "[%08x] %s%s %s %d bytes", n.Offset, strings.Repeat("  ", depth), name, n.Kind, n.Size)
    switch n.Kind {
    case tlvtree.KindUint8, tlvtree.KindUint32:
        fmt.Fprintf(w, " = %d", n.Uint)
    case tlvtree.KindBytes:
        fmt.Fprintf(w, " : % x", n.Raw)
    }
    if n.Dirty {
        fmt.Fprint(w, " (dirty)")
    }
    fmt.Fprintln(w)
    for _, c := range n.Children {
        dumpNode(w, t, c, depth+1)
    }
}

func childIndex(t *tlvtree.Tree, id tlvtree.NodeID) int {
    n := t.Node(id)
    if n.Parent == tlvtree.NilNode {
        return 0
    }
    for i, c := range t.Node(n.Parent).Children {
        if c == id {
            return i
        }
    }
    return 0
}

// Hex writes a classic 16 byte per row hexdump of b, offsets starting at base.
func Hex(w io.Writer, b []byte, base int64) {
    for row := 0; row < len(b); row += 16 {
        end := row + 16
        if end > len(b) {
            end = len(b)
        }
        fmt.Fprintf(w, "%08x ", base+int64(row))
        for i := row; i < row+16; i++ {
            if i < end {
                fmt.Fprintf(w, " %02x", b[i])
            } else {
                fmt.Fprint(w, "   ")
            }
        }
        fmt.Fprint(w, "  |")
        for i := row; i < end; i++ {
            c := b[i]
            if c < 0x20 || c > 0x7e {
                c = '.'
            }
            fmt.Fprintf(w, "%c", c)
        }
        fmt.Fprintln(w, "|")
    }
}
