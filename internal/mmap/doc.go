// Package mmap provides read-only memory-mapped file access.
//
// The local blob store maps stored encodings instead of reading them through
// kernel buffers.
//
//	m, err := mmap.Open("trees/catalog.flt")
//	if err != nil { ... }
//	defer m.Close()
//
//	m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// Unix platforms use mmap(2) and madvise(2) through golang.org/x/sys/unix.
// Windows uses CreateFileMapping/MapViewOfFile and ignores access hints.
//
// Bytes must not be used after Close.
package mmap
