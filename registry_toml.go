package tlvtree

import (
    "fmt"
    "io"

    "github.com/BurntSushi/toml"
)

// A registry file declares one protocol family as data, one [[variant]] table
// per tag:
//
//  [[variant]]
//  tag = 0
//  kind = "uint32"
//  name = "fixed integer"
//
// Kinds map onto the built-in payload shapes: "uint32", "text" and "list".
type registryFile struct {
    Variant []variantDecl `toml:"variant"`
}

type variantDecl struct {
    Tag uint8 `toml:"tag"`
    Kind string `toml:"kind"`
    Name string `toml:"name"`
}

// LoadRegistry parses a TOML registry file into a fresh Registry.
func LoadRegistry(r io.Reader) (*Registry, error) {
    var file registryFile
    if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
        return nil, err
    }
    reg := NewRegistry()
    for _, decl := range file.Variant {
        name := decl.Name
        if name == "" {
            name = decl.Kind
        }
        var v Variant
        switch decl.Kind {
        case "uint32":
            v = UintVariant(Tag(decl.Tag), name)
        case "text":
            v = TextVariant(Tag(decl.Tag), name)
        case "list":
            v = ListVariant(Tag(decl.Tag), name)
        default:
            return nil, fmt.Errorf("unknown variant kind %q for tag %d", decl.Kind, decl.Tag)
        }
        if err := reg.Register(v); err != nil {
            return nil, err
        }
    }
    return reg, nil
}
