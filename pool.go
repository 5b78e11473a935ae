// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stringpool

// Pool interns byte strings into a bounded set of fixed-size pages. The
// zero value is not usable; construct with NewPool.
type Pool struct {
	opts    PoolOptions
	pages   [MaxPages]*page
	touched int // one past the highest-ever-initialized page index
}

// NewPool creates an empty pool. opts may be nil, selecting the defaults
// documented on PoolOptions.
func NewPool(opts *PoolOptions) (*Pool, error) {
	var o PoolOptions
	if opts != nil {
		o = *opts
	}
	if err := o.check(); err != nil {
		return nil, err
	}
	return &Pool{opts: o}, nil
}

// Close releases every page's backing storage back to the pool's
// PageAllocator. The Pool must not be used afterward.
func (p *Pool) Close() error {
	var firstErr error
	for i := 0; i < p.touched; i++ {
		pg := p.pages[i]
		if pg == nil {
			continue
		}
		if err := p.opts.Allocator.Free(pg.mem); err != nil && firstErr == nil {
			firstErr = err
		}
		p.pages[i] = nil
	}
	p.touched = 0
	return firstErr
}

// findPage returns a page with at least n free sections, initializing a new
// page if necessary. Create computes n with sectionsForLength (create.go) and
// duplicateChain with countSections, so the returned page always has enough
// room to finish the chain it's for.
func (p *Pool) findPage(n int) (int, *page, error) {
	for i := p.touched - 1; i >= 0; i-- {
		pg := p.pages[i]
		if pg == nil {
			return p.growPage(i, n)
		}
		if pg.freeSlotCount >= n {
			return i, pg, nil
		}
	}
	if p.touched >= p.opts.MaxPages {
		return 0, nil, &ErrOutOfPages{Requested: n}
	}
	return p.growPage(p.touched, n)
}

func (p *Pool) growPage(idx int, n int) (int, *page, error) {
	mem, err := p.opts.Allocator.Alloc()
	if err != nil {
		return 0, nil, err
	}
	pg := initPage(mem, idx)
	p.pages[idx] = pg
	if idx+1 > p.touched {
		p.touched = idx + 1
	}
	if p.opts.Logger != nil {
		p.opts.Logger.Printf("stringpool: grew pool to %d page(s)", p.touched)
	}
	return idx, pg, nil
}

// pageAt returns the page backing id, or an error if id names a page
// outside the pool's current bounds.
func (p *Pool) pageAt(id ID) (*page, error) {
	idx := id.page()
	if idx < 0 || idx >= p.touched || p.pages[idx] == nil {
		return nil, &ErrInvalidHandle{ID: id}
	}
	return p.pages[idx], nil
}
