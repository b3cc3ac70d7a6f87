package badger

import (
    "testing"

    "github.com/dgraph-io/badger"
    "github.com/dgraph-io/badger/options"
    "github.com/stretchr/testify/require"

    "github.com/hansonkd/tlvtree/store"
)

func getTestOptions(dir string) badger.Options {
    opt := badger.DefaultOptions(dir)
    opt.SyncWrites = false
    opt.TableLoadingMode = options.LoadToRAM
    opt.Logger = nil
    return opt
}

// Opens a badger db in a temp dir and runs a test on it.
func RunBadgerTest(t *testing.T, opts *badger.Options, test func(t *testing.T, db store.IDB)) {
    dir := t.TempDir()
    if opts == nil {
        opts = new(badger.Options)
        *opts = getTestOptions(dir)
    }
    db, err := badger.Open(*opts)
    require.NoError(t, err)
    defer db.Close()
    test(t, &BadgerDB{db})
}
