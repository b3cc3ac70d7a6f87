package source

import (
    "fmt"
    "io"
    "os"
)

// File is a file-backed Source. The expected discipline is scoped: open, read
// fully or by range during one decode pass, then Close. A File is not held
// open across mutation.
type File struct {
    f *os.File
    size int64
    buf []byte
}

func Open(path string) (*File, error) {
    f, err := os.Open(path)
    if err != nil {
        return nil, err
    }
    st, err := f.Stat()
    if err != nil {
        f.Close()
        return nil, err
    }
    return &File{f: f, size: st.Size()}, nil
}

func (s *File) Close() error {
    return s.f.Close()
}

func (s *File) Size() int64 {
    return s.size
}

func (s *File) ReadAt(off int64, n int) ([]byte, error) {
    if off < 0 || n < 0 || off+int64(n) > s.size {
        return nil, fmt.Errorf("%w: [%d:%d) of %d", ErrOutOfRange, off, off+int64(n), s.size)
    }
    if cap(s.buf) < n {
        s.buf = make([]byte, n)
    }
    buf := s.buf[:n]
    if _, err := s.f.ReadAt(buf, off); err != nil && err != io.EOF {
        return nil, fmt.Errorf("%w: %v", ErrOutOfRange, err)
    }
    return buf, nil
}
