// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import "encoding/binary"

func countSections(pg *page, head uint16) int {
	count := 1
	cur := head
	for pg.headerAt(cur) != cur {
		cur = pg.headerAt(cur)
		count++
	}
	return count
}

func refcountAt(pg *page, head uint16) uint16 {
	return binary.LittleEndian.Uint16(pg.sectionBytes(head)[0:2])
}

func setRefcountAt(pg *page, head uint16, v uint16) {
	binary.LittleEndian.PutUint16(pg.sectionBytes(head)[0:2], v)
}

// Clone adds a reference to id and returns a handle for it. The returned ID
// is id itself while the embedded refcount has room to grow; once it
// saturates at maxRefcount, Clone physically duplicates the chain instead
// and returns a new ID with a fresh count of zero (one reference).
func (p *Pool) Clone(id ID) (ID, error) {
	pg, err := p.pageAt(id)
	if err != nil {
		return 0, err
	}
	head := id.section()
	rc := refcountAt(pg, head)
	if rc < maxRefcount {
		setRefcountAt(pg, head, rc+1)
		return id, nil
	}
	return p.duplicateChain(pg, head)
}

func (p *Pool) duplicateChain(pg *page, head uint16) (ID, error) {
	n := countSections(pg, head)
	dstPageIdx, dstPg, err := p.findPage(n)
	if err != nil {
		return 0, err
	}

	dstHead := dstPg.popFree()
	dup := newID(dstPageIdx, dstHead)

	srcSec := head
	dstSec := dstHead
	for i := 0; ; i++ {
		copy(dstPg.sectionBytes(dstSec), pg.sectionBytes(srcSec))
		if pg.headerAt(srcSec) == srcSec {
			dstPg.setHeaderAt(dstSec, dstSec)
			break
		}
		srcSec = pg.headerAt(srcSec)
		nextDst := dstPg.popFree()
		dstPg.setHeaderAt(dstSec, nextDst)
		dstSec = nextDst
	}

	setRefcountAt(dstPg, dstHead, 0)
	return dup, nil
}

// Release drops a reference to id. When the last reference is dropped, the
// chain's sections are pushed onto their page's free list one at a time,
// head first, so the list then starts at the chain's last section. Payload
// bytes are left untouched until reused by a later Create or
// duplicateChain, except that the head gets TagFree in its last byte when
// the page's free list was empty.
func (p *Pool) Release(id ID) error {
	pg, err := p.pageAt(id)
	if err != nil {
		return err
	}
	head := id.section()
	rc := refcountAt(pg, head)
	if rc > 0 {
		setRefcountAt(pg, head, rc-1)
		return nil
	}

	cur := head
	for {
		next := pg.headerAt(cur)
		terminal := next == cur
		pg.pushFree(cur)
		if terminal {
			return nil
		}
		cur = next
	}
}
