// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import (
	"fmt"
	"io"
)

// Dump writes a human-readable listing of every page to w. A section is a
// chain head (live or the free list) iff no other section's header entry
// points to it; everything else is a continuation link and is skipped.
// Dump is for debugging and tests; its output format is not an API.
func (p *Pool) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "pages = %d\n", p.touched); err != nil {
		return err
	}
	for i := 0; i < p.touched; i++ {
		pg := p.pages[i]
		if pg == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "page %d: freeslot=%d freelist=%#04x\n", i, pg.freeSlotCount, pg.freeListHead); err != nil {
			return err
		}

		pointedTo := make([]bool, SectionsPerPage)
		for sec := 0; sec < SectionsPerPage; sec++ {
			if next := pg.headerAt(uint16(sec)); next != uint16(sec) {
				pointedTo[next] = true
			}
		}

		for sec := 0; sec < SectionsPerPage; sec++ {
			head := uint16(sec)
			if pointedTo[head] {
				continue
			}
			isFreeHead := pg.freeSlotCount > 0 && head == pg.freeListHead
			if err := dumpChain(w, pg, head, isFreeHead); err != nil {
				return err
			}
			if isFreeHead {
				continue
			}
			str, err := p.Str(newID(i, head), nil)
			if err != nil {
				if _, err := fmt.Fprintf(w, "  corrupt: %v\n", err); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "  (%d) %q\n", len(str), str); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpChain(w io.Writer, pg *page, head uint16, isFree bool) error {
	if _, err := fmt.Fprintf(w, "  [%#04x]", head); err != nil {
		return err
	}
	cur := head
	for pg.headerAt(cur) != cur {
		cur = pg.headerAt(cur)
		if !isFree {
			if _, err := fmt.Fprintf(w, " %#04x", cur); err != nil {
				return err
			}
		}
	}
	var err error
	switch pg.sectionBytes(cur)[SectionSize-1] {
	case TagExact, TagPadding:
		_, err = fmt.Fprintf(w, " refcount=%d\n", refcountAt(pg, head))
	case TagFree:
		_, err = fmt.Fprintf(w, " FREE\n")
	default:
		_, err = fmt.Fprintf(w, " INVALID\n")
	}
	return err
}
