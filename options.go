// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import (
	"fmt"
	"log"

	"modernc.org/mathutil"
)

// PoolOptions amend the behavior of NewPool. The zero value is valid and
// selects a heap-backed pool bounded by MaxPages.
//
// The compatibility promise is the same as for struct types elsewhere in
// the standard library: new fields may be added, so client code should
// always use field names when building a PoolOptions literal.
type PoolOptions struct {
	// MaxPages bounds how many pages the pool will grow to. Zero selects
	// MaxPages (the package constant). Values above the package constant
	// are clamped down to it, since a Pool's page table has MaxPages slots.
	MaxPages int

	// Allocator supplies page-sized buffers. A nil Allocator selects
	// HeapPageAllocator{}.
	Allocator PageAllocator

	// Logger, if non-nil, receives a line each time the pool grows by a
	// page. A nil Logger disables this logging.
	Logger *log.Logger

	checked bool
}

func (o *PoolOptions) check() error {
	if o.checked {
		return nil
	}
	if o.MaxPages < 0 {
		return fmt.Errorf("stringpool: PoolOptions.MaxPages must not be negative, got %d", o.MaxPages)
	}
	if o.MaxPages == 0 {
		o.MaxPages = MaxPages
	}
	o.MaxPages = mathutil.Min(o.MaxPages, MaxPages)
	if o.Allocator == nil {
		o.Allocator = HeapPageAllocator{}
	}
	o.checked = true
	return nil
}
