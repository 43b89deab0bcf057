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

// ExpectMoreOnNextLine tells expectEndOfLine whether the grammar still
// expects content after this line (e.g. a name/value line with no value
// yet) or whether this is the true end of a logical line.
type ExpectMoreOnNextLine bool

const (
	NoMoreExpected  ExpectMoreOnNextLine = false
	MoreExpected    ExpectMoreOnNextLine = true
)

// scanForSpacing returns a Spacing token for a run of space/tab characters
// starting at the current position, or ok=false if there is none.
func scanForSpacing(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	if !td.Character().Is(ClassSpacing) {
		return LexerToken{}, false, nil
	}
	for td.Character().Is(ClassSpacing) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
	}
	return td.CreateSimpleToken(Spacing), true, nil
}

// expectSpacing requires at least one spacing character.
func expectSpacing(td *TokenDecoder) (LexerToken, error) {
	if err := td.expect(td.Character().Is(ClassSpacing), "expected spacing"); err != nil {
		return LexerToken{}, err
	}
	tok, _, err := scanForSpacing(td)
	return tok, err
}

// skipSpacing consumes spacing without producing a token.
func skipSpacing(td *TokenDecoder) error {
	for td.Character().Is(ClassSpacing) {
		if err := td.Next(); err != nil {
			return err
		}
	}
	return nil
}

// expectComment requires and consumes a `#` comment running to the end of
// the physical line (exclusive of the line-break itself).
func expectComment(td *TokenDecoder) (LexerToken, error) {
	if err := td.expect(td.Character().IsChar('#'), "expected a comment"); err != nil {
		return LexerToken{}, err
	}
	for !td.Character().Is(ClassLineBreak) && !td.Character().IsEndOfData() {
		if err := td.Next(); err != nil {
			return LexerToken{}, err
		}
	}
	return td.CreateSimpleToken(Comment), nil
}

// expectLinebreak requires and consumes a line-break, returning the
// LineBreak token for it.
func expectLinebreak(td *TokenDecoder) (LexerToken, error) {
	if err := td.expect(td.Character().Is(ClassLineBreak), "expected a line-break"); err != nil {
		return LexerToken{}, err
	}
	// A CRLF pair is a single line-break token.
	if td.Character().IsChar('\r') {
		if err := td.Next(); err != nil {
			return LexerToken{}, err
		}
		if td.Character().IsChar('\n') {
			if err := td.Next(); err != nil {
				return LexerToken{}, err
			}
		}
	} else {
		if err := td.Next(); err != nil {
			return LexerToken{}, err
		}
	}
	return td.CreateSimpleToken(LineBreak), nil
}

// expectEndOfLine handles spacing, an optional trailing comment, and
// finally either the line-break or the end of the document. expectMore
// tells it whether a following continuation line is still expected by the
// caller's grammar; when it is, reaching the end of the document here is an
// unexpected-end error.
func expectEndOfLine(td *TokenDecoder, expectMore ExpectMoreOnNextLine) ([]LexerToken, error) {
	var tokens []LexerToken
	if tok, ok, err := scanForSpacing(td); err != nil {
		return nil, err
	} else if ok {
		tokens = append(tokens, tok)
	}
	if td.Character().IsChar('#') {
		tok, err := expectComment(td)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	if td.Character().IsEndOfData() {
		if expectMore {
			return nil, td.unexpectedEndError("expected a value to continue on the next line")
		}
		tokens = append(tokens, td.CreateEndOfDataToken())
		return tokens, nil
	}
	tok, err := expectLinebreak(td)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, tok)
	return tokens, nil
}

// expectAndCheckIndentation consumes leading spacing on a continuation
// line. The first call for a multi-line block records that spacing as the
// block's indentation pattern; every later call requires the spacing to
// equal the recorded pattern exactly.
func expectAndCheckIndentation(td *TokenDecoder) (LexerToken, error) {
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()
	for td.Character().Is(ClassSpacing) {
		if err := td.Next(); err != nil {
			return LexerToken{}, err
		}
	}
	got := tx.CapturedString()
	pattern := td.IndentationPattern()
	if !td.HasIndentationPattern() {
		td.SetIndentationPattern(got)
	} else if got != pattern {
		return LexerToken{}, td.errorAt(CategoryIndentation, "indentation does not match the opening line")
	}
	tx.Commit()
	return td.CreateSimpleToken(Indentation), nil
}

// scanFormatOrLanguageIdentifier reads a sequence of letters, digits,
// hyphens and underscores starting with a letter (used after `<`/`<<<` for
// a bytes format, and after a multi-line code open for a language tag). It
// never creates a token and never opens a transaction of its own: callers
// that may need to backtrack wrap this call in their own transaction.
func scanFormatOrLanguageIdentifier(td *TokenDecoder, throwOnLength bool) (string, error) {
	if !td.Character().Is(ClassLetter) {
		return "", nil
	}
	const maxLen = 16
	var buf []rune
	for td.Character().Is(ClassFormatIdentifierChar) {
		if len(buf) >= maxLen {
			if throwOnLength {
				return "", td.limitExceededError("identifier is longer than 16 characters")
			}
			return "", nil
		}
		buf = append(buf, td.Character().Rune())
		if err := td.Next(); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}
