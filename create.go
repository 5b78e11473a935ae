// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

// sectionsForLength returns the number of sections a chain needs to encode
// a payload of n bytes, mirroring the section-by-section layout Create
// actually writes (see the loop below): every full 14-byte continuation
// section consumes its own slot, and the terminal section always keeps one
// byte free for its NUL even when that means reserving a section purely to
// hold it.
func sectionsForLength(n int) int {
	if n <= headShortMax {
		return 1
	}
	remaining := n - headCapacity
	sections := 1
	for {
		sections++
		if remaining < SectionSize {
			return sections
		}
		remaining -= SectionSize
	}
}

// Create interns data, returning a new ID with a single reference. The
// returned ID is independent of data: the pool never retains the slice.
func (p *Pool) Create(data []byte) (ID, error) {
	n := len(data)
	need := sectionsForLength(n)
	if need > SectionsPerPage {
		return 0, &ErrStringTooLarge{Size: n}
	}

	pageIdx, pg, err := p.findPage(need)
	if err != nil {
		return 0, err
	}

	head := pg.popFree()
	id := newID(pageIdx, head)
	hdata := pg.sectionBytes(head)
	hdata[0], hdata[1] = 0, 0 // refcount 0 means 1 reference

	if n <= headShortMax {
		copy(hdata[2:2+n], data)
		hdata[2+n] = 0
		for i := 2 + n + 1; i < SectionSize; i++ {
			hdata[i] = TagExact
		}
		pg.setHeaderAt(head, head)
		return id, nil
	}

	copy(hdata[2:SectionSize], data[:headCapacity])
	remaining := n - headCapacity
	offset := headCapacity
	prev := head
	for {
		sec := pg.popFree()
		pg.setHeaderAt(prev, sec)
		prev = sec
		sdata := pg.sectionBytes(sec)
		if remaining < SectionSize {
			copy(sdata[:remaining], data[offset:offset+remaining])
			sdata[remaining] = 0
			for i := remaining + 1; i < SectionSize; i++ {
				sdata[i] = TagPadding
			}
			pg.setHeaderAt(sec, sec)
			return id, nil
		}
		copy(sdata, data[offset:offset+SectionSize])
		remaining -= SectionSize
		offset += SectionSize
	}
}
