package tlvtree

import (
    "fmt"
)

// A Variant describes how to decode one record payload. Variants are bound to
// tags through a Registry; declaring the tag is the only hard requirement on
// a variant author.
type Variant interface {
    Tag() Tag
    Name() string
    // Payload returns the codec for a payload of `size` bytes, where size is
    // the enclosing record's length minus the record header. Dynamically
    // sized payloads derive their extent from size, fixed payloads may
    // ignore it.
    Payload(reg *Registry, size int) Codec
}

// Registry maps tags to variants. It is explicit caller-owned state, not a
// global: independent registries can describe different protocol families and
// coexist in one process.
type Registry struct {
    variants map[Tag]Variant
}

func NewRegistry() *Registry {
    return &Registry{variants: make(map[Tag]Variant)}
}

// Register binds v under its declared tag. Rebinding a tag fails with
// ErrDuplicateTag.
func (reg *Registry) Register(v Variant) error {
    if bound, ok := reg.variants[v.Tag()]; ok {
        return fmt.Errorf("%w: %d already bound to %q", ErrDuplicateTag, v.Tag(), bound.Name())
    }
    reg.variants[v.Tag()] = v
    return nil
}

// Lookup returns the variant bound to tag or fails with ErrUnknownTag.
func (reg *Registry) Lookup(tag Tag) (Variant, error) {
    v, ok := reg.variants[tag]
    if !ok {
        return nil, fmt.Errorf("%w: %d", ErrUnknownTag, tag)
    }
    return v, nil
}

// Tags returns the registered tags in unspecified order.
func (reg *Registry) Tags() []Tag {
    tags := make([]Tag, 0, len(reg.variants))
    for tag := range reg.variants {
        tags = append(tags, tag)
    }
    return tags
}

// StandardRegistry returns a registry for the illustrated protocol: tag 0 is
// a fixed uint32 record, tag 1 a text record, tag 2 a list record.
func StandardRegistry() *Registry {
    reg := NewRegistry()
    for _, v := range []Variant{DecodeUint, DecodeText, DecodeList} {
        if err := reg.Register(v); err != nil {
            panic(err)
        }
    }
    return reg
}
