// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stringpool implements a fixed-capacity, reference-counted string
// interning pool.
//
// Strings are stored in pages of fixed-size sections. A page holds a header
// array of next-section links (doubling as a free list) and a data array of
// 14-byte sections. A string is identified by an opaque 32-bit ID that packs
// a page index and a head section index; IDs remain valid until the last
// reference to the string is released.
//
// The pool never moves or compacts data once written: Create, Clone and
// Release only ever touch free-list links and the two bytes of embedded
// refcount at the head of a chain. This keeps Str a zero-copy operation for
// the common case where a string's sections are laid out contiguously.
//
// See Pool for the primary entry point.
package stringpool
