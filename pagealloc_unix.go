// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package stringpool

import "golang.org/x/sys/unix"

// MmapPageAllocator backs pages with anonymous private mappings rather than
// heap allocations. Pages are advised MADV_DONTNEED on Free, letting the
// kernel reclaim the physical memory immediately instead of waiting on GC.
type MmapPageAllocator struct{}

func (MmapPageAllocator) Alloc() ([]byte, error) {
	data, err := unix.Mmap(-1, 0, PageSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, &unixMmapError{op: "mmap", err: err}
	}
	return data, nil
}

func (MmapPageAllocator) Free(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	_ = unix.Madvise(mem, unix.MADV_DONTNEED)
	if err := unix.Munmap(mem); err != nil {
		return &unixMmapError{op: "munmap", err: err}
	}
	return nil
}

type unixMmapError struct {
	op  string
	err error
}

func (e *unixMmapError) Error() string { return "stringpool: " + e.op + ": " + e.err.Error() }
func (e *unixMmapError) Unwrap() error { return e.err }
