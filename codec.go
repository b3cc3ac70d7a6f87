package tlvtree

import (
    "encoding/binary"
    "fmt"
)

// A Codec materializes one field's bytes into a parse node. Composite codecs
// recurse through the Decoder.
type Codec interface {
    Name() string
    Decode(d *Decoder, off int64) (NodeID, error)
}

var (
    // Uint8 decodes a single byte.
    Uint8 Codec = uint8Codec{}
    // Uint32 decodes a 4 byte little-endian unsigned integer.
    Uint32 Codec = uint32Codec{}
)

type uint8Codec struct{}

func (uint8Codec) Name() string { return "uint8" }
func (uint8Codec) Decode(d *Decoder, off int64) (NodeID, error) {
    b, err := d.read(off, 1)
    if err != nil {
        return NilNode, err
    }
    return d.tree.alloc(Node{Kind: KindUint8, Offset: off, Size: 1, Uint: uint64(b[0])}), nil
}

type uint32Codec struct{}

func (uint32Codec) Name() string { return "uint32" }
func (uint32Codec) Decode(d *Decoder, off int64) (NodeID, error) {
    b, err := d.read(off, 4)
    if err != nil {
        return NilNode, err
    }
    v := binary.LittleEndian.Uint32(b)
    return d.tree.alloc(Node{Kind: KindUint32, Offset: off, Size: 4, Uint: uint64(v)}), nil
}

// Blob returns a codec for exactly n raw bytes. This is how dynamically sized
// payloads are expressed: the enclosing record resolves n from its length
// field and instantiates the blob at that size.
func Blob(n int) Codec {
    return blobCodec{n}
}

type blobCodec struct {
    n int
}

func (c blobCodec) Name() string { return fmt.Sprintf("blob(%d)", c.n) }
func (c blobCodec) Decode(d *Decoder, off int64) (NodeID, error) {
    b, err := d.read(off, c.n)
    if err != nil {
        return NilNode, err
    }
    raw := make([]byte, len(b))
    copy(raw, b)
    return d.tree.alloc(Node{Kind: KindBytes, Offset: off, Size: c.n, Raw: raw}), nil
}

// Struct returns a codec decoding the schema's fields in order, feeding each
// resolver the fields materialized before it.
func Struct(s *Schema) Codec {
    return structCodec{schema: s, kind: KindStruct}
}

type structCodec struct {
    schema *Schema
    kind Kind
}

func (c structCodec) Name() string { return c.schema.name }
func (c structCodec) Decode(d *Decoder, off int64) (NodeID, error) {
    id := d.tree.alloc(Node{Name: c.schema.name, Kind: c.kind, Offset: off})
    cur := off
    for _, f := range c.schema.fields {
        fc, err := f.Resolve(Fields{d.tree, id})
        if err != nil {
            return NilNode, err
        }
        cid, err := fc.Decode(d, cur)
        if err != nil {
            return NilNode, err
        }
        d.tree.Node(cid).Name = f.Name
        d.tree.link(id, cid)
        cur += int64(d.tree.Node(cid).Size)
    }
    d.tree.Node(id).Size = int(cur - off)
    return id, nil
}

// Array returns a codec decoding exactly count elements of elem back-to-back.
func Array(elem Codec, count int) Codec {
    return arrayCodec{elem, count}
}

type arrayCodec struct {
    elem Codec
    count int
}

func (c arrayCodec) Name() string { return fmt.Sprintf("array(%s,%d)", c.elem.Name(), c.count) }
func (c arrayCodec) Decode(d *Decoder, off int64) (NodeID, error) {
    id := d.tree.alloc(Node{Kind: KindArray, Offset: off})
    cur := off
    for i := 0; i < c.count; i++ {
        cid, err := c.elem.Decode(d, cur)
        if err != nil {
            return NilNode, err
        }
        d.tree.link(id, cid)
        cur += int64(d.tree.Node(cid).Size)
    }
    d.tree.Node(id).Size = int(cur - off)
    return id, nil
}
