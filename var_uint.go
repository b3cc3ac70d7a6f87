package tlvtree

const TagUint = Tag(0)

// DecodeUint is the fixed integer variant of the illustrated protocol: the
// payload is a 4 byte little-endian unsigned integer, so the total record
// length is always 9.
var DecodeUint = UintVariant(TagUint, "uint32")

// UintVariant returns a fixed uint32 payload variant under a caller-chosen
// tag, for registries describing other protocol families.
func UintVariant(tag Tag, name string) Variant {
    return uintVariant{tag, name}
}

type uintVariant struct {
    tag Tag
    name string
}

func (v uintVariant) Tag() Tag { return v.tag }
func (v uintVariant) Name() string { return v.name }

// The payload is fixed width; size is advisory here and ignored.
func (v uintVariant) Payload(reg *Registry, size int) Codec {
    return Uint32
}
