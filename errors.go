// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import "fmt"

// ErrOutOfPages is returned by Create and Clone when every page up to
// MaxPages (or PoolOptions.MaxPages) is full and no further page can be grown.
type ErrOutOfPages struct {
	// Requested is the number of sections the failed allocation needed.
	Requested int
}

func (e *ErrOutOfPages) Error() string {
	return fmt.Sprintf("stringpool: out of pages (need %d free sections)", e.Requested)
}

// ErrStringTooLarge is returned by Create when a string's encoded length
// would need more sections than a single page can ever provide.
type ErrStringTooLarge struct {
	Size int
}

func (e *ErrStringTooLarge) Error() string {
	return fmt.Sprintf("stringpool: string of %d bytes exceeds per-string capacity", e.Size)
}

// ErrInvalidHandle is returned when an ID names a page outside the pool's
// current bounds. An ID whose section is on the free list is not detected.
type ErrInvalidHandle struct {
	ID ID
}

func (e *ErrInvalidHandle) Error() string {
	return fmt.Sprintf("stringpool: invalid handle %#08x", uint32(e.ID))
}

// ErrCorruptSection is returned when a chain's terminal section carries a
// tail byte that is neither TagExact nor TagPadding where one of those two
// is structurally required, and by Verify for any other structural fault it
// finds in a page's free list or in a live chain.
type ErrCorruptSection struct {
	Page    int
	Section uint16
}

func (e *ErrCorruptSection) Error() string {
	return fmt.Sprintf("stringpool: corrupt section page %d section %d", e.Page, e.Section)
}
