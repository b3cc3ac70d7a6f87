package tlvtree

import (
    "fmt"

    "github.com/hansonkd/tlvtree/source"
)

// Names of the general record wrapper's slots and of the list payload's
// slots. Mutation and resync key off these to find length and count fields.
const (
    FieldTag = "tag"
    FieldLength = "length"
    FieldPayload = "payload"
    FieldCount = "count"
    FieldElements = "elements"
)

// Decoder walks codecs against a byte source, materializing parse nodes into
// one tree. Decoding is strict and in-order: every field is materialized as
// soon as it is reached, so each resolver only ever sees fully decoded
// predecessors.
type Decoder struct {
    tree *Tree
    src source.Source
    reg *Registry
}

func NewDecoder(reg *Registry, src source.Source) *Decoder {
    return &Decoder{tree: NewTree(), src: src, reg: reg}
}

// Tree returns the tree the decoder materializes into.
func (d *Decoder) Tree() *Tree {
    return d.tree
}

// Decode materializes one value of codec c at off and returns its node.
func (d *Decoder) Decode(c Codec, off int64) (NodeID, error) {
    return c.Decode(d, off)
}

// DecodeRecord materializes one general record at off.
func (d *Decoder) DecodeRecord(off int64) (NodeID, error) {
    return d.Decode(Record(d.reg), off)
}

// read fetches exactly n bytes at off, translating the source's bounds error
// into ErrTruncatedInput with the source error as cause.
func (d *Decoder) read(off int64, n int) ([]byte, error) {
    b, err := d.src.ReadAt(off, n)
    if err != nil {
        return nil, fmt.Errorf("%w: %d bytes at offset %d: %w", ErrTruncatedInput, n, off, err)
    }
    return b, nil
}

// Parse decodes a single general record at offset 0 of src.
func Parse(reg *Registry, src source.Source) (*Tree, NodeID, error) {
    d := NewDecoder(reg, src)
    root, err := d.DecodeRecord(0)
    if err != nil {
        return nil, NilNode, err
    }
    return d.tree, root, nil
}

// Record returns the codec for the general record wrapper: a tag byte, a 4
// byte total length, and a payload whose codec is resolved by looking the tag
// up in reg and sizing it from the decoded length. An unknown tag fails
// before any payload byte is consumed.
func Record(reg *Registry) Codec {
    return structCodec{
        kind: KindRecord,
        schema: NewSchema("record",
            Field{FieldTag, Fixed(Uint8)},
            Field{FieldLength, Fixed(Uint32)},
            Field{FieldPayload, payloadResolver(reg)},
        ),
    }
}

func payloadResolver(reg *Registry) Resolver {
    return func(f Fields) (Codec, error) {
        tag := Tag(f.Uint(FieldTag))
        v, err := reg.Lookup(tag)
        if err != nil {
            return nil, err
        }
        size := int(f.Uint(FieldLength)) - RecordHeaderSize
        if size < 0 {
            logger.Warn().Uint8("tag", uint8(tag)).Int("size", size).
                Msg("record length smaller than header, defaulting payload to 0 bytes")
            size = 0
        }
        return v.Payload(reg, size), nil
    }
}
