package tlvtree

const TagList = Tag(2)

// DecodeList is the list variant of the illustrated protocol: the payload is
// a 4 byte little-endian count followed by exactly count general records
// back-to-back. Every element carries its own tag and length, so a list is
// heterogeneous by construction.
var DecodeList = ListVariant(TagList, "list")

// ListVariant returns a list payload variant under a caller-chosen tag.
// Elements dispatch through the same registry the enclosing record used.
func ListVariant(tag Tag, name string) Variant {
    return listVariant{tag, name}
}

type listVariant struct {
    tag Tag
    name string
}

func (v listVariant) Tag() Tag { return v.tag }
func (v listVariant) Name() string { return v.name }

func (v listVariant) Payload(reg *Registry, size int) Codec {
    return Struct(NewSchema("list",
        Field{FieldCount, Fixed(Uint32)},
        Field{FieldElements, func(f Fields) (Codec, error) {
            return Array(Record(reg), int(f.Uint(FieldCount))), nil
        }},
    ))
}

// Elements returns the element array node of a list record. Its Children are
// the list's records in order; pass it to Replace to swap one out.
func (t *Tree) Elements(record NodeID) (NodeID, bool) {
    payload, ok := t.Field(record, FieldPayload)
    if !ok {
        return NilNode, false
    }
    return t.Field(payload, FieldElements)
}
