// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import "fmt"

// ID is an opaque handle to an interned string: a page index and a head
// section index packed into 32 bits. ID(0) is an ordinary handle (page 0,
// section 0) once a pool has created its first string in a fresh page; it
// carries no sentinel meaning.
type ID uint32

func newID(page int, section uint16) ID {
	return ID(uint32(page)<<16 | uint32(section))
}

func (id ID) page() int {
	return int(id >> 16)
}

func (id ID) section() uint16 {
	return uint16(id)
}

// String renders the ID as a hex pageIndex:sectionIndex pair, for log lines
// and test failures.
func (id ID) String() string {
	return fmt.Sprintf("%#04x:%#04x", id.page(), id.section())
}
