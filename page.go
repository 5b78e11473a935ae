// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import "encoding/binary"

// page is one 1 MiB block: a header array of next-section links (also the
// free list) followed by a data array of fixed-size sections. mem is
// obtained from a PageAllocator and never reallocated for the life of the
// page.
type page struct {
	mem []byte
	idx int // index within the owning Pool, for diagnostics only

	freeSlotCount int
	freeListHead  uint16
}

func initPage(mem []byte, idx int) *page {
	p := &page{mem: mem, idx: idx}
	for i := 0; i < SectionsPerPage-1; i++ {
		p.setHeaderAt(uint16(i), uint16(i+1))
	}
	last := uint16(SectionsPerPage - 1)
	p.setHeaderAt(last, last)
	p.sectionBytes(last)[SectionSize-1] = TagFree
	p.freeListHead = 0
	p.freeSlotCount = SectionsPerPage
	return p
}

func (p *page) headerAt(sec uint16) uint16 {
	return binary.LittleEndian.Uint16(p.mem[int(sec)*2:])
}

func (p *page) setHeaderAt(sec uint16, v uint16) {
	binary.LittleEndian.PutUint16(p.mem[int(sec)*2:], v)
}

// sectionBytes returns a live view into section sec's 14 bytes. Writes
// through the returned slice are writes to the page.
func (p *page) sectionBytes(sec uint16) []byte {
	off := headerSize + int(sec)*SectionSize
	return p.mem[off : off+SectionSize]
}

// popFree removes and returns one section from the free list. The caller
// must have already checked freeSlotCount > 0.
func (p *page) popFree() uint16 {
	sec := p.freeListHead
	p.freeListHead = p.headerAt(sec)
	p.freeSlotCount--
	return sec
}

// pushFree returns sec to the free list. Payload bytes of sec are left
// untouched except when sec becomes the sole free section, in which case
// it must carry TagFree as the new list's self-pointing tail.
func (p *page) pushFree(sec uint16) {
	if p.freeSlotCount == 0 {
		p.setHeaderAt(sec, sec)
		p.sectionBytes(sec)[SectionSize-1] = TagFree
	} else {
		p.setHeaderAt(sec, p.freeListHead)
	}
	p.freeListHead = sec
	p.freeSlotCount++
}
