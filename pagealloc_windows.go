// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package stringpool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// MmapPageAllocator backs pages with anonymous memory obtained through
// VirtualAlloc. Unlike the unix implementation there is no page-cache to
// advise away; Free simply decommits and releases the region.
type MmapPageAllocator struct{}

func (MmapPageAllocator) Alloc() ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, PageSize, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, &windowsMmapError{op: "VirtualAlloc", err: err}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), PageSize), nil
}

func (MmapPageAllocator) Free(mem []byte) error {
	if len(mem) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&mem[0]))
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		return &windowsMmapError{op: "VirtualFree", err: err}
	}
	return nil
}

type windowsMmapError struct {
	op  string
	err error
}

func (e *windowsMmapError) Error() string { return "stringpool: " + e.op + ": " + e.err.Error() }
func (e *windowsMmapError) Unwrap() error { return e.err }
