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

// maxLineLength bounds how many code points a single physical line may
// contain before the lexer gives up with CategoryLimitExceeded. Streaming
// parsing past this limit is explicitly out of scope.
const maxLineLength = 4096

// DecodedChar is one character as it travels through the pipeline above the
// UTF-8 decoder: a classified Char together with its position and its
// offset into the CharStream's current line buffer. The offset is what
// lets CaptureTo/CaptureToEndOfLine hand back exact substrings of the raw
// line text for a token without re-decoding anything.
type DecodedChar struct {
	Char  Char
	Pos   Position
	Index int
}

// CharStream is the C3 layer. It buffers one physical line of decoded
// characters at a time (so capture-to and capture-to-end-of-line can hand
// back exact raw text slices of the current line) and tracks the 1-based
// line/column of every character it produces.
type CharStream struct {
	dec    *Utf8Decoder
	source *SourceIdentifier

	line        []rune // decoded runes of the current physical line, including its terminator
	captureMark int    // index into line where the next capture starts

	lineNo int
	colNo  int

	atEOF bool
}

// NewCharStream wraps dec, attaching src for Location reporting.
func NewCharStream(dec *Utf8Decoder, src *SourceIdentifier) *CharStream {
	return &CharStream{dec: dec, source: src, lineNo: 1, colNo: 1}
}

// Next decodes and returns the next character. Malformed UTF-8, disallowed
// control characters and an over-long line are returned as err, together
// with a DecodedChar whose Char is ErrChar; the caller (TokenDecoder) holds
// the error back until any already-completed token has been emitted.
func (cs *CharStream) Next() (DecodedChar, error) {
	if cs.atEOF {
		return DecodedChar{Char: EndOfDataChar, Pos: NewPosition(cs.lineNo, cs.colNo)}, nil
	}
	r, ok, err := cs.dec.NextRune()
	pos := NewPosition(cs.lineNo, cs.colNo)
	if err != nil {
		return DecodedChar{Char: ErrChar, Pos: pos, Index: len(cs.line)}, err
	}
	if !ok {
		cs.atEOF = true
		return DecodedChar{Char: EndOfDataChar, Pos: pos, Index: len(cs.line)}, nil
	}
	if r == 0 || (r < 0x20 && r != '\t' && r != '\n' && r != '\r') {
		return DecodedChar{Char: ErrChar, Pos: pos, Index: len(cs.line)},
			NewErrorAt(CategoryCharacter, "control character is not allowed here", Location{Source: cs.source, Position: pos})
	}
	idx := len(cs.line)
	cs.line = append(cs.line, r)
	if len(cs.line) > maxLineLength {
		return DecodedChar{Char: ErrChar, Pos: pos, Index: idx},
			NewErrorAt(CategoryLimitExceeded, "line exceeds the maximum permitted length", Location{Source: cs.source, Position: pos})
	}
	dc := DecodedChar{Char: Char(r), Pos: pos, Index: idx}
	if r == '\n' {
		cs.lineNo++
		cs.colNo = 1
		cs.line = cs.line[:0]
		cs.captureMark = 0
	} else if r == '\r' {
		// column still advances; the line buffer is only reset on '\n'.
		cs.colNo++
	} else {
		cs.colNo++
	}
	return dc, nil
}

// CaptureTo returns the raw text of the current line from the last capture
// mark up to (excluding) index, and advances the mark to index.
func (cs *CharStream) CaptureTo(index int) string {
	if index > len(cs.line) {
		index = len(cs.line)
	}
	if cs.captureMark > index {
		return ""
	}
	s := string(cs.line[cs.captureMark:index])
	cs.captureMark = index
	return s
}

// CaptureToEndOfLine returns the raw text from the last capture mark to the
// end of the buffered line, and resets the mark.
func (cs *CharStream) CaptureToEndOfLine() string {
	s := cs.CaptureTo(len(cs.line))
	cs.line = cs.line[:0]
	cs.captureMark = 0
	return s
}

// Digest returns the running SHA-256 digest of every byte consumed so far.
func (cs *CharStream) Digest() []byte { return cs.dec.Digest() }

// Source returns the source identifier this stream reads from.
func (cs *CharStream) Source() *SourceIdentifier { return cs.source }
