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

// Lexer is the top-level line-oriented state machine: given a
// TokenDecoder, it drives the scanner library over the whole document
// and hands out LexerTokens one at a time through NextToken. Internally
// it produces one logical line's worth of tokens per refill, queuing
// them for NextToken to drain; this plays the role the original's
// coroutine-based token generator filled, without requiring Go
// coroutines.
type Lexer struct {
	decoder *TokenDecoder
	queue   []LexerToken
	closed  bool
	digest  []byte
}

// NewLexer wraps a TokenDecoder into a Lexer ready to produce tokens.
func NewLexer(td *TokenDecoder) *Lexer {
	return &Lexer{decoder: td}
}

// SourceIdentifier reports the source the underlying decoder reads from,
// or nil once the lexer has been closed.
func (lx *Lexer) SourceIdentifier() *SourceIdentifier {
	if lx.decoder == nil {
		return nil
	}
	return lx.decoder.SourceIdentifier()
}

// Digest returns the SHA-256 digest of every byte read so far. Before the
// lexer is closed (normally right after the EndOfData token is read) this
// reflects only the bytes consumed up to that point.
func (lx *Lexer) Digest() []byte {
	if lx.decoder != nil {
		return lx.decoder.Digest()
	}
	return lx.digest
}

func (lx *Lexer) close() {
	if lx.decoder != nil {
		lx.digest = lx.decoder.Digest()
		lx.decoder = nil
	}
}

// NextToken returns the next token in the document. Once the EndOfData
// token has been returned, the lexer is closed and every subsequent call
// returns an Internal error, matching a read from a closed lexer.
func (lx *Lexer) NextToken() (LexerToken, error) {
	if len(lx.queue) == 0 {
		if lx.decoder == nil {
			return LexerToken{}, NewError(CategoryInternal, "you cannot read from a closed lexer")
		}
		if err := lx.fill(); err != nil {
			lx.close()
			return LexerToken{}, err
		}
	}
	tok := lx.queue[0]
	lx.queue = lx.queue[1:]
	if tok.Type == EndOfData {
		lx.close()
	}
	return tok, nil
}

// fill produces the next batch of tokens: either the handling of one
// logical line (spacing/empty line, name/value line, or section header),
// or, at the end of the document, the closing EndOfData token.
func (lx *Lexer) fill() error {
	td := lx.decoder
	if td.Character().IsEndOfData() {
		lx.queue = append(lx.queue, td.CreateEndOfDataToken())
		return nil
	}

	if td.Character().Is(ClassSpacing) {
		tok, err := expectSpacing(td)
		if err != nil {
			return err
		}
		lx.queue = append(lx.queue, tok)
		switch {
		case td.Character().Is(ClassEndOfLineStart):
			tokens, err := expectEndOfLine(td, NoMoreExpected)
			if err != nil {
				return err
			}
			lx.queue = append(lx.queue, tokens...)
		case td.Character().Is(ClassNameStart):
			return td.syntaxError("value names must appear at the beginning of a line without leading spaces")
		case td.Character().Is(ClassSectionStart):
			return td.syntaxError("section declarations must start at the beginning of a line without any indentation")
		default:
			return td.syntaxOrUnexpectedEndError("unexpected content after indentation: only a comment or an empty line was expected at this point")
		}
		return nil
	}

	switch {
	case td.Character().Is(ClassEndOfLineStart):
		tokens, err := expectEndOfLine(td, NoMoreExpected)
		if err != nil {
			return err
		}
		lx.queue = append(lx.queue, tokens...)
	case td.Character().Is(ClassNameStart):
		tokens, err := expectNameAndValue(td)
		if err != nil {
			return err
		}
		lx.queue = append(lx.queue, tokens...)
	case td.Character().Is(ClassSectionStart):
		tokens, err := expectSection(td)
		if err != nil {
			return err
		}
		lx.queue = append(lx.queue, tokens...)
	default:
		return td.syntaxError("expected a section, name or empty line, but got something else")
	}
	return nil
}
