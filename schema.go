package tlvtree

import (
    "fmt"
)

// Fields is a read-only view of the fields of a composite node that have been
// decoded so far. Resolvers receive one to derive the next field's codec from
// earlier values; a field that has not been decoded yet is simply absent, so
// dependencies are forward-only by construction.
type Fields struct {
    t *Tree
    id NodeID
}

// Has reports whether a field of that name has been materialized.
func (f Fields) Has(name string) bool {
    _, ok := f.t.Field(f.id, name)
    return ok
}

// Uint returns the integer value of a decoded uint field. Referencing a field
// that is not decoded yet (or not an integer) is a schema bug, so it panics.
func (f Fields) Uint(name string) uint64 {
    id, ok := f.t.Field(f.id, name)
    if !ok {
        panic(fmt.Sprintf("tlvtree: resolver referenced undecoded field %q", name))
    }
    n := f.t.Node(id)
    if n.Kind != KindUint8 && n.Kind != KindUint32 {
        panic(fmt.Sprintf("tlvtree: field %q is %s, not an integer", name, n.Kind))
    }
    return n.Uint
}

// Bytes returns the raw value of a decoded bytes field.
func (f Fields) Bytes(name string) []byte {
    id, ok := f.t.Field(f.id, name)
    if !ok {
        panic(fmt.Sprintf("tlvtree: resolver referenced undecoded field %q", name))
    }
    return f.t.Node(id).Raw
}

// A Resolver produces the codec for the next field from the fields decoded
// before it. Resolvers must only reference strictly earlier fields of the
// same composite.
type Resolver func(f Fields) (Codec, error)

// Fixed lifts a fixed codec into a Resolver that ignores preceding fields.
func Fixed(c Codec) Resolver {
    return func(Fields) (Codec, error) {
        return c, nil
    }
}

// Field is one named slot of a Schema.
type Field struct {
    Name string
    Resolve Resolver
}

// Schema is an ordered sequence of named field slots. Fields decode strictly
// in order; a later slot's codec may depend on every earlier slot's value.
type Schema struct {
    name string
    fields []Field
}

func NewSchema(name string, fields ...Field) *Schema {
    return &Schema{name: name, fields: fields}
}

func (s *Schema) Name() string {
    return s.name
}
