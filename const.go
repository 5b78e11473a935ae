// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

// Section and page geometry. These are fixed by the page layout; changing
// them changes the meaning of every existing ID.
const (
	// SectionSize is the size in bytes of one data section.
	SectionSize = 14

	// SectionsPerPage is the number of sections (and header entries) in
	// a single page.
	SectionsPerPage = 1 << 16

	// MaxPages bounds how many pages a Pool will ever allocate. A page
	// index must fit in the top 16 bits of an ID.
	MaxPages = 256

	// headerSize is the byte size of a page's header array: one uint16
	// next-section link per section.
	headerSize = SectionsPerPage * 2

	// PageSize is the total byte size backing a single page: header
	// array plus data array.
	PageSize = headerSize + SectionsPerPage*SectionSize

	// headCapacity is the number of payload bytes a head section holds
	// before its own terminator/refcount overhead: 14 - 2 (refcount) = 12.
	headCapacity = SectionSize - 2

	// headShortMax is the largest payload that fits entirely within a
	// head section, including its trailing NUL: 14 - 2 - 1 = 11.
	headShortMax = SectionSize - 3
)

// Section tail tags. The last byte of a chain's terminal section carries
// one of these values; Create never stores a payload byte there (see
// stringLen).
const (
	// TagExact marks a terminal section whose payload runs up to the
	// second-to-last byte, so that its NUL lands on the last byte.
	TagExact = 0x00

	// TagPadding marks a terminal section that ends in a NUL followed by
	// filler bytes.
	TagPadding = 0xFF

	// TagFree marks the tail entry of a page's free list.
	TagFree = 0xFE
)

// maxRefcount is the saturation point of the embedded refcount. Beyond this
// many references, Clone duplicates the chain instead of incrementing the
// count.
const maxRefcount = 0xFFFF
