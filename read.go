// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import "bytes"

// stringLen decodes the byte length of the chain rooted at head.
//
// A single-section chain (head is its own terminator) always ends in a NUL:
// Create never leaves data[head][2:14] without one, so the length is simply
// the position of that NUL.
//
// A multi-section chain's terminal section either runs payload to its very
// last byte (TagExact, used only when the terminal holds exactly
// SectionSize-1 real bytes and its NUL lands on the final byte) or ends
// with a NUL followed by TagPadding filler. In the TagPadding case the
// terminator is found by scanning from the top of the section downward:
// every byte above the real NUL is TagPadding filler (0xFF, never zero),
// so the first zero encountered scanning top-down is always the true
// separator even if the payload itself contains embedded NUL bytes
// further down.
func stringLen(pg *page, head uint16) (int, error) {
	cur := head
	sections := 1
	for pg.headerAt(cur) != cur {
		cur = pg.headerAt(cur)
		sections++
	}
	tail := pg.sectionBytes(cur)

	if sections == 1 {
		if tail[SectionSize-1] == TagFree {
			return 0, &ErrCorruptSection{Page: pg.idx, Section: cur}
		}
		for i := 2; i < SectionSize; i++ {
			if tail[i] == 0 {
				return i - 2, nil
			}
		}
		return 0, &ErrCorruptSection{Page: pg.idx, Section: cur}
	}

	switch tail[SectionSize-1] {
	case TagExact:
		return headCapacity + SectionSize*(sections-2) + (SectionSize - 1), nil
	case TagPadding:
		p := SectionSize - 2
		for ; p >= 0; p-- {
			if tail[p] == 0 {
				break
			}
		}
		if p < 0 {
			return 0, &ErrCorruptSection{Page: pg.idx, Section: cur}
		}
		return headCapacity + SectionSize*(sections-2) + p, nil
	default:
		return 0, &ErrCorruptSection{Page: pg.idx, Section: cur}
	}
}

// isContiguous reports whether every section of the chain rooted at head
// follows the previous one by exactly one section index, letting Str
// return a slice straight into the page's backing array.
func isContiguous(pg *page, head uint16) bool {
	sec := head
	for {
		next := pg.headerAt(sec)
		if next == sec {
			return true
		}
		if next != sec+1 {
			return false
		}
		sec = next
	}
}

// stringCopy copies l payload bytes of the chain rooted at head into dst.
func stringCopy(pg *page, head uint16, dst []byte, l int) {
	hdata := pg.sectionBytes(head)
	if l <= headCapacity {
		copy(dst[:l], hdata[2:2+l])
		return
	}
	copy(dst[:headCapacity], hdata[2:SectionSize])
	rem := l - headCapacity
	off := headCapacity
	sec := head
	for {
		sec = pg.headerAt(sec)
		if rem < SectionSize {
			break
		}
		copy(dst[off:off+SectionSize], pg.sectionBytes(sec))
		rem -= SectionSize
		off += SectionSize
	}
	copy(dst[off:off+rem], pg.sectionBytes(sec)[:rem])
}

// stringEq reports whether the chain rooted at head holds exactly data,
// given that it is already known to have len(data) bytes.
func stringEq(pg *page, head uint16, data []byte) bool {
	l := len(data)
	hdata := pg.sectionBytes(head)
	if l <= headCapacity {
		return bytes.Equal(data, hdata[2:2+l])
	}
	if !bytes.Equal(data[:headCapacity], hdata[2:SectionSize]) {
		return false
	}
	rem := l - headCapacity
	off := headCapacity
	sec := head
	for {
		sec = pg.headerAt(sec)
		if rem < SectionSize {
			break
		}
		if !bytes.Equal(data[off:off+SectionSize], pg.sectionBytes(sec)) {
			return false
		}
		rem -= SectionSize
		off += SectionSize
	}
	return bytes.Equal(data[off:off+rem], pg.sectionBytes(sec)[:rem])
}

// Str returns the bytes interned as id. When the chain's sections are
// contiguous in page index, the returned slice aliases the pool's backing
// storage directly and buf is untouched; otherwise the bytes are copied into
// buf (grown if its capacity is too small) and the grown-or-reused buf is
// returned. A nil buf is fine; Str allocates one only when a copy is
// actually needed. Callers must not mutate a returned slice, and must not
// retain a zero-copy result past the next Release of id (it stops being
// valid once the chain is freed).
func (p *Pool) Str(id ID, buf []byte) ([]byte, error) {
	pg, err := p.pageAt(id)
	if err != nil {
		return nil, err
	}
	head := id.section()
	l, err := stringLen(pg, head)
	if err != nil {
		return nil, err
	}
	if isContiguous(pg, head) {
		off := headerSize + int(head)*SectionSize + 2
		return pg.mem[off : off+l : off+l], nil
	}
	if cap(buf) < l {
		buf = make([]byte, l)
	}
	buf = buf[:l]
	stringCopy(pg, head, buf, l)
	return buf, nil
}

// Eq reports whether id names a string equal to data, without materializing
// a copy of id's bytes.
func (p *Pool) Eq(id ID, data []byte) (bool, error) {
	pg, err := p.pageAt(id)
	if err != nil {
		return false, err
	}
	head := id.section()
	l, err := stringLen(pg, head)
	if err != nil {
		return false, err
	}
	if l != len(data) {
		return false, nil
	}
	return stringEq(pg, head, data), nil
}
