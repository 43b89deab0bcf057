// Copyright 2015 Google Inc.
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

package elcl

import (
	"bufio"
	"crypto/sha256"
	"hash"
	"io"
	"unicode/utf8"
)

// ByteSource is the C1 layer: anything that can hand the decoder raw bytes,
// one at a time, with no look-ahead of its own. File and in-memory text
// sources both reduce to this.
type ByteSource interface {
	// ReadByte returns the next byte, or io.EOF once the source is
	// exhausted. Any other error is reported with CategoryIO.
	ReadByte() (byte, error)
}

// NewByteSliceSource wraps an in-memory document.
func NewByteSliceSource(data []byte) ByteSource {
	return &sliceSource{data: data}
}

type sliceSource struct {
	data []byte
	pos  int
}

func (s *sliceSource) ReadByte() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, io.EOF
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// NewReaderSource wraps any io.Reader (a file, stdin, a network stream).
func NewReaderSource(r io.Reader) ByteSource {
	return &readerSource{r: bufio.NewReader(r)}
}

type readerSource struct {
	r *bufio.Reader
}

func (s *readerSource) ReadByte() (byte, error) {
	return s.r.ReadByte()
}

// Utf8Decoder is the C2 layer: it turns a ByteSource into a stream of
// Unicode code points, validating UTF-8 as it goes, and incrementally
// feeding every consumed byte into the document digest.
type Utf8Decoder struct {
	src    ByteSource
	digest hash.Hash
	eof    bool
}

// NewUtf8Decoder wraps src.
func NewUtf8Decoder(src ByteSource) *Utf8Decoder {
	return &Utf8Decoder{src: src, digest: sha256.New()}
}

// Digest returns the SHA-256 digest of every byte read so far. Before the
// end of the data is reached it covers only the bytes consumed up to that
// point; the lexer façade passes it on unchanged at any time.
func (d *Utf8Decoder) Digest() []byte {
	return d.digest.Sum(nil)
}

// NextRune decodes and returns the next code point. It returns ok=false
// once the source is exhausted, with err nil. A malformed byte sequence is
// reported as a CategoryEncoding error; an I/O failure from the underlying
// source is reported as CategoryIO.
func (d *Utf8Decoder) NextRune() (r rune, ok bool, err error) {
	if d.eof {
		return 0, false, nil
	}
	var buf [utf8.UTFMax]byte
	n := 0
	first, readErr := d.src.ReadByte()
	if readErr == io.EOF {
		d.eof = true
		return 0, false, nil
	}
	if readErr != nil {
		return 0, false, NewError(CategoryIO, readErr.Error())
	}
	d.digest.Write([]byte{first})
	buf[0] = first
	n = 1
	want := utf8SequenceLength(first)
	if want == 0 {
		return 0, false, NewError(CategoryEncoding, "invalid UTF-8 start byte")
	}
	for n < want {
		b, readErr := d.src.ReadByte()
		if readErr == io.EOF {
			return 0, false, NewError(CategoryEncoding, "truncated UTF-8 sequence at end of data")
		}
		if readErr != nil {
			return 0, false, NewError(CategoryIO, readErr.Error())
		}
		if b&0xC0 != 0x80 {
			return 0, false, NewError(CategoryEncoding, "invalid UTF-8 continuation byte")
		}
		d.digest.Write([]byte{b})
		buf[n] = b
		n++
	}
	decoded, size := utf8.DecodeRune(buf[:n])
	if decoded == utf8.RuneError && size <= 1 {
		return 0, false, NewError(CategoryEncoding, "invalid UTF-8 sequence")
	}
	return decoded, true, nil
}

// utf8SequenceLength returns the total byte length of the UTF-8 sequence
// starting with the given lead byte, or 0 if it cannot start a sequence.
func utf8SequenceLength(lead byte) int {
	switch {
	case lead&0x80 == 0x00:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}
