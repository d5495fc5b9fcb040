//go:build unix

package mmap

import (
	"os"

	"golang.org/x/sys/unix"
)

func openFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := info.Size()
	if size == 0 {
		// zero-length mappings are invalid; an empty file is an empty range
		return &File{data: nil, closer: f.Close}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		data: data,
		closer: func() error {
			merr := unix.Munmap(data)
			cerr := f.Close()
			if merr != nil {
				return merr
			}
			return cerr
		},
	}, nil
}

func createFile(path string, length uint64) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}

	if err := f.Truncate(int64(length)); err != nil {
		f.Close()
		return nil, err
	}

	if length == 0 {
		return &File{writable: true, closer: f.Close}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{
		data:     data,
		writable: true,
		closer: func() error {
			ferr := unix.Msync(data, unix.MS_SYNC)
			if merr := unix.Munmap(data); ferr == nil {
				ferr = merr
			}
			if cerr := f.Close(); ferr == nil {
				ferr = cerr
			}
			return ferr
		},
	}, nil
}
