// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

import (
	"bytes"
	"testing"
)

func TestStrZeroCopyForContiguousChain(t *testing.T) {
	p := newTestPool(t)

	data := bytes.Repeat([]byte("0123456789ab"), 5) // 60 bytes, several sections
	id, err := p.Create(data)
	if err != nil {
		t.Fatal(err)
	}

	pg, err := p.pageAt(id)
	if err != nil {
		t.Fatal(err)
	}
	if !isContiguous(pg, id.section()) {
		t.Fatal("a freshly created chain on an empty page should be contiguous")
	}

	got, err := p.Str(id, nil)
	if err != nil {
		t.Fatal(err)
	}
	off := headerSize + int(id.section())*SectionSize + 2
	if &got[0] != &pg.mem[off] {
		t.Fatal("Str did not alias the page's backing array for a contiguous chain")
	}

	// The zero-copy branch must ignore a caller-supplied buffer entirely.
	buf := make([]byte, 3, 3)
	again, err := p.Str(id, buf)
	if err != nil {
		t.Fatal(err)
	}
	if &again[0] != &pg.mem[off] {
		t.Fatal("Str copied into buf for a contiguous chain instead of aliasing page memory")
	}
}

func TestStrCopiesForNonContiguousChain(t *testing.T) {
	p := newTestPool(t)

	long, err := p.Create(bytes.Repeat([]byte("x"), 100))
	if err != nil {
		t.Fatal(err)
	}
	// Release pushes long's sections onto the free list head first, so the
	// next Create takes them back in reverse order and its chain is not
	// contiguous. other stays live and is read back at the end.
	other, err := p.Create(bytes.Repeat([]byte("y"), 100))
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Release(long); err != nil {
		t.Fatal(err)
	}

	want := bytes.Repeat([]byte("z"), 40)
	id, err := p.Create(want)
	if err != nil {
		t.Fatal(err)
	}

	pg, err := p.pageAt(id)
	if err != nil {
		t.Fatal(err)
	}
	if isContiguous(pg, id.section()) {
		t.Skip("free-list reuse happened to stay contiguous; nothing to assert")
	}

	// A too-small buffer must be grown, not overrun.
	buf := make([]byte, 1)
	got, err := p.Str(id, buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Str() = %q, want %q", got, want)
	}

	// A big-enough buffer must be reused in place.
	buf = make([]byte, 0, len(want)+8)
	reused, err := p.Str(id, buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(reused, want) {
		t.Fatalf("Str(buf) = %q, want %q", reused, want)
	}
	if cap(reused) != cap(buf) {
		t.Fatal("Str allocated a fresh slice despite a big-enough buffer")
	}

	if _, err := p.Str(other, nil); err != nil {
		t.Fatal(err)
	}
}

func TestEqRejectsWrongLength(t *testing.T) {
	p := newTestPool(t)

	id, err := p.Create([]byte("fixed"))
	if err != nil {
		t.Fatal(err)
	}
	if eq, err := p.Eq(id, []byte("fixed!")); err != nil || eq {
		t.Fatalf("Eq = %v, %v, want false, nil", eq, err)
	}
	if eq, err := p.Eq(id, []byte("fixe")); err != nil || eq {
		t.Fatalf("Eq = %v, %v, want false, nil", eq, err)
	}
}

func TestStrInvalidHandle(t *testing.T) {
	p := newTestPool(t)

	if _, err := p.Str(ID(0xFFFFFFFF), nil); err == nil {
		t.Fatal("expected ErrInvalidHandle for an unused page index")
	} else if _, ok := err.(*ErrInvalidHandle); !ok {
		t.Fatalf("err = %T, want *ErrInvalidHandle", err)
	}
}
