// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command stringpool is a small stress/demo driver for the stringpool
// package: it interns the string given by -s, clones it repeatedly to exercise
// refcount saturation, and dumps the resulting pool state.
package main

import (
	"flag"
	"log"
	"os"

	"modernc.org/stringpool"
)

var (
	text   = flag.String("s", "Hello World", "string to intern")
	clones = flag.Int("n", 1<<17, "number of Clone calls to issue")
	mmap   = flag.Bool("mmap", false, "back pages with anonymous mmap instead of the heap")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Lshortfile)

	opts := &stringpool.PoolOptions{Logger: log.New(os.Stderr, "", log.Lshortfile)}
	if *mmap {
		opts.Allocator = stringpool.MmapPageAllocator{}
	}

	p, err := stringpool.NewPool(opts)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	id, err := p.Create([]byte(*text))
	if err != nil {
		log.Fatal(err)
	}

	ids := []stringpool.ID{id}
	for i := 0; i < *clones; i++ {
		dup, err := p.Clone(id)
		if err != nil {
			log.Fatal(err)
		}
		ids = append(ids, dup)
	}

	if err := p.Dump(os.Stdout); err != nil {
		log.Fatal(err)
	}

	for _, id := range ids {
		if err := p.Release(id); err != nil {
			log.Fatal(err)
		}
	}
}
