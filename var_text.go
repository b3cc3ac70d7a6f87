package tlvtree

const TagText = Tag(1)

// DecodeText is the text variant of the illustrated protocol: the payload is
// exactly length-5 raw bytes. The framework attaches no meaning to embedded
// terminator bytes, they are ordinary payload bytes.
var DecodeText = TextVariant(TagText, "text")

// TextVariant returns a raw bytes payload variant under a caller-chosen tag.
// The payload's extent always comes from the enclosing record's length field,
// never from any length embedded in the payload itself.
func TextVariant(tag Tag, name string) Variant {
    return textVariant{tag, name}
}

type textVariant struct {
    tag Tag
    name string
}

func (v textVariant) Tag() Tag { return v.tag }
func (v textVariant) Name() string { return v.name }

func (v textVariant) Payload(reg *Registry, size int) Codec {
    return Blob(size)
}
