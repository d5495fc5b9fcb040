// Package mmap is the byte-range provider backing file-level deflate and
// inflate: it yields a contiguous readable range for an existing file and a
// contiguous writable range of a pre-declared length for a new one.
//
// On unix platforms the ranges are memory mappings; elsewhere they are heap
// buffers read from and flushed to the file on Close. The codec depends only
// on this contract, never on the mapping mechanics.
package mmap
