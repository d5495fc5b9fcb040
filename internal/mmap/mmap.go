package mmap

import (
	"fmt"

	"github.com/arloliu/rlepack/errs"
)

// File is an open byte range bound to a file. A read range is valid until
// Close; a write range is flushed to disk by Close.
type File struct {
	data     []byte
	writable bool
	closer   func() error
}

// Bytes returns the mapped byte range. The slice is invalidated by Close.
func (f *File) Bytes() []byte { return f.data }

// Size returns the byte length of the range.
func (f *File) Size() uint64 { return uint64(len(f.data)) }

// Close flushes a writable range to its file and releases the mapping.
func (f *File) Close() error {
	if f.closer == nil {
		return nil
	}
	err := f.closer()
	f.closer = nil
	f.data = nil

	return err
}

// Open opens an existing file for reading and returns its full byte range.
func Open(path string) (*File, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %s", errs.ErrIO, path, err)
	}

	return f, nil
}

// Create creates a file of exactly the given length and returns a writable
// byte range covering it. The file must not already exist.
func Create(path string, length uint64) (*File, error) {
	f, err := createFile(path, length)
	if err != nil {
		return nil, fmt.Errorf("%w: create %s: %s", errs.ErrIO, path, err)
	}

	return f, nil
}
