// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix && !windows

package stringpool

// MmapPageAllocator has no anonymous-mapping implementation on this
// platform; use HeapPageAllocator instead.
type MmapPageAllocator struct{}

func (MmapPageAllocator) Alloc() ([]byte, error) {
	return nil, &errUnsupportedPlatform{op: "MmapPageAllocator.Alloc"}
}

func (MmapPageAllocator) Free([]byte) error {
	return &errUnsupportedPlatform{op: "MmapPageAllocator.Free"}
}
