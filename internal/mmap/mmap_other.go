//go:build !unix

package mmap

import "os"

func openFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return &File{data: data}, nil
}

func createFile(path string, length uint64) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}

	data := make([]byte, length)

	return &File{
		data:     data,
		writable: true,
		closer: func() error {
			_, werr := f.Write(data)
			if cerr := f.Close(); werr == nil {
				werr = cerr
			}
			return werr
		},
	}, nil
}
