// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vbuf provides CPU-side vertex and index buffers that are
// filled by shape builders and then uploaded to the GPU as-is.
package vbuf

import (
	"fmt"
	"math"
	"unsafe"
)

// MaxVertices is the most vertices that uint16 indexes can address.
const MaxVertices = math.MaxUint16 + 1

// ArrayBuffer holds interleaved vertex data of type V together with
// the uint16 triangle indexes that refer to it.
type ArrayBuffer[V any] struct {
	Vertices []V
	Indices  []uint16
}

// RowSize returns the size in bytes of one vertex, which is the
// stride used for the vertex attribute pointers.
func (ab *ArrayBuffer[V]) RowSize() int {
	var v V
	return int(unsafe.Sizeof(v))
}

// VertexBytes returns the vertex data as a byte slice that shares
// memory with Vertices.
func (ab *ArrayBuffer[V]) VertexBytes() []byte {
	if len(ab.Vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&ab.Vertices[0])), len(ab.Vertices)*ab.RowSize())
}

// IndexBytes returns the index data as a byte slice that shares
// memory with Indices.
func (ab *ArrayBuffer[V]) IndexBytes() []byte {
	if len(ab.Indices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&ab.Indices[0])), len(ab.Indices)*2)
}

// Reset empties the buffer, keeping the allocated capacity.
func (ab *ArrayBuffer[V]) Reset() {
	ab.Vertices = ab.Vertices[:0]
	ab.Indices = ab.Indices[:0]
}

// Validate returns an error if the buffer has more vertices than
// uint16 indexes can address, if any index is out of range, or if the
// number of indexes is not a multiple of three.
func (ab *ArrayBuffer[V]) Validate() error {
	nv := len(ab.Vertices)
	if nv > MaxVertices {
		return fmt.Errorf("vbuf: %d vertices exceed the uint16 index range", nv)
	}
	if len(ab.Indices)%3 != 0 {
		return fmt.Errorf("vbuf: index count %d is not a multiple of 3", len(ab.Indices))
	}
	for i, idx := range ab.Indices {
		if int(idx) >= nv {
			return fmt.Errorf("vbuf: index %d at position %d is out of range for %d vertices", idx, i, nv)
		}
	}
	return nil
}

// Builder appends vertices and indexes to an ArrayBuffer. Indexes given
// to AddIndices are relative to the number of vertices the buffer had
// when the builder was created.
type Builder[V any] struct {
	buf  *ArrayBuffer[V]
	base int
}

// NewBuilder returns a builder that appends to buf.
func NewBuilder[V any](buf *ArrayBuffer[V]) *Builder[V] {
	return &Builder[V]{buf: buf, base: len(buf.Vertices)}
}

// ReserveVertices grows the vertex capacity by at least n.
func (b *Builder[V]) ReserveVertices(n int) *Builder[V] {
	b.buf.Vertices = grow(b.buf.Vertices, n)
	return b
}

// ReserveIndices grows the index capacity by at least n.
func (b *Builder[V]) ReserveIndices(n int) *Builder[V] {
	b.buf.Indices = grow(b.buf.Indices, n)
	return b
}

// AddVertex appends a vertex.
func (b *Builder[V]) AddVertex(v V) *Builder[V] {
	b.buf.Vertices = append(b.buf.Vertices, v)
	return b
}

// AddIndices appends one triangle. The indexes are relative to the
// first vertex added through this builder.
func (b *Builder[V]) AddIndices(i0, i1, i2 int) *Builder[V] {
	b.buf.Indices = append(b.buf.Indices,
		uint16(b.base+i0), uint16(b.base+i1), uint16(b.base+i2))
	return b
}

// Base returns the vertex offset applied by AddIndices.
func (b *Builder[V]) Base() int {
	return b.base
}

func grow[T any](s []T, n int) []T {
	if cap(s)-len(s) >= n {
		return s
	}
	ns := make([]T, len(s), len(s)+n)
	copy(ns, s)
	return ns
}
