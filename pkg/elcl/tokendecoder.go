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

import "strings"

// TokenDecoder is the C5 layer: a cursor over the character stream with
// pushback (for transaction rollback), a transaction stack, delayed
// encoding/character errors, and the indentation-pattern state the
// multi-line scanners need to share across lines.
//
// Every blocking operation here is synchronous; the pipeline never needs
// a context.Context because it never does network or disk I/O itself
// (that lives behind ByteSource).
type TokenDecoder struct {
	stream *CharStream

	current     DecodedChar
	pushback    []DecodedChar // LIFO stack, refilled by rollback
	txBuffer    []DecodedChar // flat capture buffer, sliced per transaction
	transactions []*Transaction

	tokenStart Position

	indentationPattern string

	hasUpcomingError bool
	pendingErr       *Error
}

// NewTokenDecoder wraps stream and reads the first character.
func NewTokenDecoder(stream *CharStream) (*TokenDecoder, error) {
	td := &TokenDecoder{stream: stream}
	if err := td.nextRaw(); err != nil {
		return nil, err
	}
	td.resetTokenStartPosition()
	return td, nil
}

// Character returns the current character.
func (td *TokenDecoder) Character() Char { return td.current.Char }

// Location returns the location of the current character.
func (td *TokenDecoder) Location() Location {
	return Location{Source: td.stream.Source(), Position: td.current.Pos}
}

// SourceIdentifier returns the source this decoder reads from.
func (td *TokenDecoder) SourceIdentifier() *SourceIdentifier { return td.stream.Source() }

// Digest returns the document digest. Only meaningful after EndOfData.
func (td *TokenDecoder) Digest() []byte { return td.stream.Digest() }

// nextRaw captures/stores the current character (if a transaction is open)
// and advances the cursor by one character, consulting the pushback stack
// before pulling a fresh one from the CharStream.
func (td *TokenDecoder) nextRaw() error {
	if td.current.Char == ErrChar {
		return td.internalError("an error was not correctly handled")
	}
	if len(td.transactions) > 0 {
		if td.current.Char.IsChar('\n') || td.current.Char.IsEndOfData() {
			return td.internalError("there is an open transaction at the end of the line")
		}
		td.txBuffer = append(td.txBuffer, td.current)
	}
	if n := len(td.pushback); n > 0 {
		td.current = td.pushback[n-1]
		td.pushback = td.pushback[:n-1]
		return nil
	}
	dc, err := td.stream.Next()
	if err != nil {
		if elclErr, ok := err.(*Error); ok &&
			(elclErr.Category == CategoryEncoding || elclErr.Category == CategoryCharacter) {
			// Delay encoding/character errors: record them and surface an
			// Error-marked character so any token already completed can
			// still be produced before the caller asks for the error.
			td.hasUpcomingError = true
			td.pendingErr = elclErr
			td.current = DecodedChar{Char: ErrChar, Pos: dc.Pos, Index: dc.Index}
			return nil
		}
		return err
	}
	td.current = dc
	return nil
}

// Next advances the cursor. Use CheckForErrorAndThrowIt after calling this
// if the caller is about to consume/rely on the new current character.
func (td *TokenDecoder) Next() error { return td.nextRaw() }

// NextToken advances the cursor and resets the token start position, the
// same combined step the original performs at initialization and after
// every emitted token.
func (td *TokenDecoder) NextToken() error {
	if err := td.nextRaw(); err != nil {
		return err
	}
	td.resetTokenStartPosition()
	return nil
}

// CheckForErrorAndThrowIt returns the delayed error, if one is pending.
func (td *TokenDecoder) CheckForErrorAndThrowIt() error {
	if td.hasUpcomingError {
		return td.pendingErr
	}
	return nil
}

// TokenStartPosition returns the position recorded for the token currently
// being assembled.
func (td *TokenDecoder) TokenStartPosition() Position { return td.tokenStart }

func (td *TokenDecoder) resetTokenStartPosition() { td.tokenStart = td.current.Pos }

// TokenSize returns the current token's length in code points. Only valid
// for single-line tokens.
func (td *TokenDecoder) TokenSize() int {
	return td.current.Pos.Column() - td.tokenStart.Column()
}

// --- error construction -----------------------------------------------

func (td *TokenDecoder) errorAt(category ErrorCategory, message string) *Error {
	if err := td.CheckForErrorAndThrowIt(); err != nil {
		return err.(*Error)
	}
	return NewErrorAt(category, message, td.Location())
}

func (td *TokenDecoder) syntaxError(message string) error {
	return td.errorAt(CategorySyntax, message)
}

func (td *TokenDecoder) limitExceededError(message string) error {
	return td.errorAt(CategoryLimitExceeded, message)
}

func (td *TokenDecoder) numberLimitExceededError() error {
	return td.limitExceededError("the number exceeds the 64-bit limit")
}

func (td *TokenDecoder) unexpectedEndError(message string) error {
	return td.errorAt(CategoryUnexpectedEnd, message)
}

func (td *TokenDecoder) syntaxOrUnexpectedEndError(message string) error {
	if td.current.Char.IsEndOfData() {
		return td.unexpectedEndError(message)
	}
	return td.syntaxError(message)
}

func (td *TokenDecoder) internalError(message string) error {
	return td.errorAt(CategoryInternal, message)
}

// expect reports an error unless the current character satisfies pred.
func (td *TokenDecoder) expect(ok bool, message string) error {
	if ok {
		return nil
	}
	if td.current.Char.IsEndOfData() {
		return td.unexpectedEndError(message)
	}
	return td.syntaxError(message)
}

func (td *TokenDecoder) expectAndNext(ok bool, message string) error {
	if err := td.expect(ok, message); err != nil {
		return err
	}
	return td.Next()
}

// ExpectMore reports an error if the document has ended.
func (td *TokenDecoder) ExpectMore(message string) error {
	if td.current.Char.IsEndOfData() {
		return td.unexpectedEndError(message)
	}
	return nil
}

// ExpectMoreInLine reports an error if the document has ended or the
// current line has, without crossing into the next line the way ExpectMore
// would allow. Used by scanners whose grammar forbids spanning a
// line-break (single-line bytes blocks).
func (td *TokenDecoder) ExpectMoreInLine(message string) error {
	if td.current.Char.Is(ClassLineBreak) {
		return td.syntaxError(message)
	}
	if td.current.Char.IsEndOfData() {
		return td.unexpectedEndError(message)
	}
	return nil
}

// --- token construction -------------------------------------------------

// CreateToken captures all text up to the current character (or, at
// end-of-data, the rest of the line) and bundles it with content into a
// token, then starts a fresh token at the current position.
func (td *TokenDecoder) CreateToken(tt TokenType, content Content) LexerToken {
	var raw string
	if td.current.Char.IsEndOfData() {
		raw = td.stream.CaptureToEndOfLine()
	} else {
		raw = td.stream.CaptureTo(td.current.Index)
	}
	tok := LexerToken{
		Type:    tt,
		Begin:   td.tokenStart,
		End:     td.current.Pos,
		RawText: raw,
		Content: content,
	}
	td.resetTokenStartPosition()
	return tok
}

// CreateSimpleToken is CreateToken with no payload.
func (td *TokenDecoder) CreateSimpleToken(tt TokenType) LexerToken {
	return td.CreateToken(tt, Content{})
}

// CreateEndOfLineToken captures the rest of the line as a LineBreak token
// and advances past it, starting the next token.
func (td *TokenDecoder) CreateEndOfLineToken() (LexerToken, error) {
	tok := LexerToken{
		Type:    LineBreak,
		Begin:   td.tokenStart,
		End:     td.current.Pos,
		RawText: td.stream.CaptureToEndOfLine(),
	}
	if err := td.NextToken(); err != nil {
		return LexerToken{}, err
	}
	return tok, nil
}

// CreateEndOfDataToken returns the sentinel final token.
func (td *TokenDecoder) CreateEndOfDataToken() LexerToken {
	return LexerToken{Type: EndOfData}
}

// --- indentation pattern -------------------------------------------------

func (td *TokenDecoder) HasIndentationPattern() bool { return td.indentationPattern != "" }
func (td *TokenDecoder) IndentationPattern() string  { return td.indentationPattern }
func (td *TokenDecoder) SetIndentationPattern(pattern string) {
	td.indentationPattern = pattern
}
func (td *TokenDecoder) ClearIndentationPattern() { td.indentationPattern = "" }

// --- transaction handling (implements transactionHandler) ---------------

// BeginTransaction opens a transaction scope. Callers must immediately
// `defer tx.RollbackIfOpen()`.
func (td *TokenDecoder) BeginTransaction() *Transaction {
	return beginTransaction(td)
}

func (td *TokenDecoder) startTransaction(t *Transaction) int {
	td.transactions = append(td.transactions, t)
	return len(td.txBuffer)
}

func (td *TokenDecoder) commitTransaction(t *Transaction) {
	td.popTransaction(t)
	// Committed characters simply remain in txBuffer: if an enclosing
	// transaction exists, they are already part of its capture range
	// (nested commit transfers to the outer transaction for free, since
	// the buffer is flat and shared).
}

func (td *TokenDecoder) rollbackTransaction(t *Transaction) {
	td.popTransaction(t)
	start := t.transactionBufferStartIndex()
	// Push the current character back first...
	td.pushback = append(td.pushback, td.current)
	// ...then every character captured since the transaction began, in
	// reverse, so popping the pushback stack replays them in order.
	for i := len(td.txBuffer); i > start; i-- {
		td.pushback = append(td.pushback, td.txBuffer[i-1])
	}
	td.txBuffer = td.txBuffer[:start]
	n := len(td.pushback)
	td.current = td.pushback[n-1]
	td.pushback = td.pushback[:n-1]
}

func (td *TokenDecoder) popTransaction(t *Transaction) {
	n := len(td.transactions)
	if n == 0 || td.transactions[n-1] != t {
		panic("elcl: transaction stack out of order")
	}
	td.transactions = td.transactions[:n-1]
}

func (td *TokenDecoder) transactionCapturedSize(t *Transaction) int {
	return len(td.txBuffer) - t.transactionBufferStartIndex()
}

func (td *TokenDecoder) captureTransactionContent(t *Transaction, lowerCase bool) string {
	start := t.transactionBufferStartIndex()
	var b strings.Builder
	for _, dc := range td.txBuffer[start:] {
		r := dc.Char.Rune()
		if lowerCase {
			r = FoldASCII(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
