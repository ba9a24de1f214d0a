// Copyright 2020 Fugue, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package format

import (
	"errors"
	"io"
)

// ErrFull is returned by FixedBuffer when a write does not fit
var ErrFull = errors.New("format: buffer full")

// Sink is a text target that Write renders into. *strings.Builder,
// *bytes.Buffer and *FixedBuffer all satisfy it.
type Sink interface {
	io.Writer
	io.ByteWriter
}

// FixedBuffer is a Sink with room for exactly one MaxLen timestamp. It never
// allocates. Writes that do not fit store as much as fits and return ErrFull.
type FixedBuffer struct {
	buf [MaxLen]byte
	n   int
}

func (b *FixedBuffer) Write(p []byte) (int, error) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		return n, ErrFull
	}
	return n, nil
}

// WriteByte appends c if there is room
func (b *FixedBuffer) WriteByte(c byte) error {
	if b.n == len(b.buf) {
		return ErrFull
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// Len returns the number of bytes written
func (b *FixedBuffer) Len() int { return b.n }

// Bytes returns the written bytes. The slice aliases the buffer.
func (b *FixedBuffer) Bytes() []byte { return b.buf[:b.n] }

func (b *FixedBuffer) String() string { return string(b.buf[:b.n]) }

// Reset empties the buffer
func (b *FixedBuffer) Reset() { b.n = 0 }
