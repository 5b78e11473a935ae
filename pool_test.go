// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import "testing"

func TestNewPoolDefaults(t *testing.T) {
	p, err := NewPool(nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.opts.MaxPages != MaxPages {
		t.Fatalf("MaxPages = %d, want %d", p.opts.MaxPages, MaxPages)
	}
	if _, ok := p.opts.Allocator.(HeapPageAllocator); !ok {
		t.Fatalf("Allocator = %T, want HeapPageAllocator", p.opts.Allocator)
	}
}

func TestNewPoolRejectsNegativeMaxPages(t *testing.T) {
	_, err := NewPool(&PoolOptions{MaxPages: -1})
	if err == nil {
		t.Fatal("expected error for negative MaxPages")
	}
}

func TestNewPoolClampsMaxPages(t *testing.T) {
	p, err := NewPool(&PoolOptions{MaxPages: MaxPages + 10})
	if err != nil {
		t.Fatal(err)
	}
	if p.opts.MaxPages != MaxPages {
		t.Fatalf("MaxPages = %d, want %d", p.opts.MaxPages, MaxPages)
	}
}

func TestPoolGrowsOnePageAtATime(t *testing.T) {
	p, err := NewPool(&PoolOptions{MaxPages: 2})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	if p.touched != 0 {
		t.Fatalf("touched = %d, want 0", p.touched)
	}

	if _, err := p.Create([]byte("a")); err != nil {
		t.Fatal(err)
	}
	if p.touched != 1 {
		t.Fatalf("touched = %d, want 1", p.touched)
	}
}

func TestCreateStringTooLarge(t *testing.T) {
	p, err := NewPool(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	big := make([]byte, 14*SectionsPerPage-2) // one byte past what any single page can hold
	if _, err := p.Create(big); err == nil {
		t.Fatal("expected ErrStringTooLarge")
	} else if _, ok := err.(*ErrStringTooLarge); !ok {
		t.Fatalf("err = %T, want *ErrStringTooLarge", err)
	}
}

func TestPoolOutOfPages(t *testing.T) {
	p, err := NewPool(&PoolOptions{MaxPages: 1})
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	// fills the one allowed page exactly: 14*SectionsPerPage-3 is the
	// largest payload that fits in SectionsPerPage sections.
	big := make([]byte, 14*SectionsPerPage-3)
	if _, err := p.Create(big); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Create([]byte("x")); err == nil {
		t.Fatal("expected ErrOutOfPages")
	} else if _, ok := err.(*ErrOutOfPages); !ok {
		t.Fatalf("err = %T, want *ErrOutOfPages", err)
	}
}

func TestPoolCloseFreesPages(t *testing.T) {
	alloc := &countingAllocator{}
	p, err := NewPool(&PoolOptions{Allocator: alloc})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Create([]byte("hello")); err != nil {
		t.Fatal(err)
	}
	if alloc.allocs != 1 {
		t.Fatalf("allocs = %d, want 1", alloc.allocs)
	}
	if err := p.Close(); err != nil {
		t.Fatal(err)
	}
	if alloc.frees != 1 {
		t.Fatalf("frees = %d, want 1", alloc.frees)
	}
}

type countingAllocator struct {
	allocs, frees int
}

func (a *countingAllocator) Alloc() ([]byte, error) {
	a.allocs++
	return make([]byte, PageSize), nil
}

func (a *countingAllocator) Free([]byte) error {
	a.frees++
	return nil
}
