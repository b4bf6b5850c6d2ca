// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glx

import (
	"unsafe"

	"cogentcore.org/gldemos/vbuf"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is a vertex array object.
type VertexArray uint32

// NewVertexArray generates a vertex array object and binds it.
func NewVertexArray() VertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	va := VertexArray(id)
	va.Bind()
	return va
}

// Bind binds the vertex array.
func (va VertexArray) Bind() {
	gl.BindVertexArray(uint32(va))
}

// Delete releases the vertex array.
func (va VertexArray) Delete() {
	id := uint32(va)
	gl.DeleteVertexArrays(1, &id)
}

// Buffer is a buffer object bound to a fixed target, which
// remembers the size of its data store.
type Buffer struct {
	ID     uint32
	Target uint32
	Size   int
}

// NewBuffer generates a buffer object for the given target
// (gl.ARRAY_BUFFER or gl.ELEMENT_ARRAY_BUFFER).
func NewBuffer(target uint32) *Buffer {
	b := &Buffer{Target: target}
	gl.GenBuffers(1, &b.ID)
	return b
}

// Bind binds the buffer to its target.
func (b *Buffer) Bind() {
	gl.BindBuffer(b.Target, b.ID)
}

// Upload binds the buffer and replaces its data store with data,
// using the given usage hint (gl.STATIC_DRAW, gl.DYNAMIC_DRAW).
func (b *Buffer) Upload(data []byte, usage uint32) {
	b.Bind()
	gl.BufferData(b.Target, len(data), ptr(data), usage)
	b.Size = len(data)
}

// Update binds the buffer and writes data to the start of it. The data
// store is reallocated as dynamic draw when data does not fit.
func (b *Buffer) Update(data []byte) {
	if len(data) > b.Size {
		b.Upload(data, gl.DYNAMIC_DRAW)
		return
	}
	b.Bind()
	gl.BufferSubData(b.Target, 0, len(data), ptr(data))
}

// Delete releases the buffer.
func (b *Buffer) Delete() {
	gl.DeleteBuffers(1, &b.ID)
	b.ID, b.Size = 0, 0
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// ElementBuffers is a vertex buffer and an index buffer of uint16
// triangle indexes, drawn together.
type ElementBuffers struct {
	Vertices *Buffer
	Indices  *Buffer

	// Count is the number of indexes to draw.
	Count int32
}

// NewElementBuffers generates a vertex and an index buffer.
func NewElementBuffers() *ElementBuffers {
	return &ElementBuffers{
		Vertices: NewBuffer(gl.ARRAY_BUFFER),
		Indices:  NewBuffer(gl.ELEMENT_ARRAY_BUFFER),
	}
}

// UploadArrayBuffer replaces the contents of eb with buf. The vertex
// array that eb is drawn with must be bound.
func UploadArrayBuffer[V any](eb *ElementBuffers, buf *vbuf.ArrayBuffer[V], usage uint32) {
	eb.Vertices.Upload(buf.VertexBytes(), usage)
	eb.Indices.Upload(buf.IndexBytes(), usage)
	eb.Count = int32(len(buf.Indices))
}

// UpdateArrayBuffer writes buf to eb, growing the buffers if needed.
// The vertex array that eb is drawn with must be bound.
func UpdateArrayBuffer[V any](eb *ElementBuffers, buf *vbuf.ArrayBuffer[V]) {
	eb.Vertices.Update(buf.VertexBytes())
	eb.Indices.Update(buf.IndexBytes())
	eb.Count = int32(len(buf.Indices))
}

// Draw draws the indexed triangles.
func (eb *ElementBuffers) Draw() {
	gl.DrawElements(gl.TRIANGLES, eb.Count, gl.UNSIGNED_SHORT, nil)
}

// Delete releases both buffers.
func (eb *ElementBuffers) Delete() {
	eb.Vertices.Delete()
	eb.Indices.Delete()
	eb.Count = 0
}

// Attribute describes a float vector vertex attribute at a byte
// offset within a vertex.
type Attribute struct {
	Loc    uint32
	Size   int32
	Offset int
}

// EnableAttributes enables the given attributes and points them
// into the currently bound vertex buffer, with stride bytes per vertex.
func EnableAttributes(stride int, attrs ...Attribute) {
	for _, a := range attrs {
		gl.EnableVertexAttribArray(a.Loc)
		gl.VertexAttribPointerWithOffset(a.Loc, a.Size, gl.FLOAT, false, int32(stride), uintptr(a.Offset))
	}
}
