package tlvtree

import (
    "io"
    "github.com/rs/zerolog"
)

var logger = zerolog.New(io.Discard)

// SetLogger installs a logger for diagnostic output. The engine logs nothing
// by default.
func SetLogger(l zerolog.Logger) {
    logger = l
}
