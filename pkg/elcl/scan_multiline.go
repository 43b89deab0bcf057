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

// scanRepeatingCharacters matches exactly three repetitions of
// expectedChar, producing a multi-line open or close token for it. Fewer
// than three is not a match at all: no error is raised, and the deferred
// rollback returns the cursor to the first of the repeated characters.
func scanRepeatingCharacters(td *TokenDecoder, expectedChar rune, isOpen bool) (tok LexerToken, ok bool, err error) {
	if !td.Character().IsChar(expectedChar) {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	count := 0
	for td.Character().IsChar(expectedChar) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		count++
		if count == 3 {
			tx.Commit()
			if isOpen {
				return td.CreateSimpleToken(FromMultiLineOpen(expectedChar)), true, nil
			}
			return td.CreateSimpleToken(FromMultiLineClose(expectedChar)), true, nil
		}
	}
	return LexerToken{}, false, nil
}

func scanMultiLineOpen(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	return scanRepeatingCharacters(td, td.Character().Rune(), true)
}

func multiLineCloseChar(openTokenType TokenType) rune {
	switch openTokenType {
	case MultiLineTextOpen:
		return '"'
	case MultiLineCodeOpen:
		return '`'
	case MultiLineRegexOpen:
		return '/'
	case MultiLineBytesOpen:
		return '>'
	default:
		return 0
	}
}

func scanMultiLineClose(td *TokenDecoder, openTokenType TokenType) (tok LexerToken, ok bool, err error) {
	return scanRepeatingCharacters(td, multiLineCloseChar(openTokenType), false)
}

// expectMultiLineAfterOpen consumes the rest of the opening line (spacing,
// an optional comment, the line-break) and, if the continuation line
// starts with spacing, establishes or checks the block's indentation
// pattern. An empty first continuation line is deliberately left
// untouched here: its line-break is consumed by the multi-line content
// loop instead.
func expectMultiLineAfterOpen(td *TokenDecoder) ([]LexerToken, error) {
	tokens, err := expectEndOfLine(td, MoreExpected)
	if err != nil {
		return nil, err
	}
	if err := td.ExpectMore("unexpected end in multi-line expression"); err != nil {
		return nil, err
	}
	if td.Character().Is(ClassSpacing) {
		tok, err := expectAndCheckIndentation(td)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	} else if !td.Character().Is(ClassLineBreak) {
		return nil, td.syntaxError("expected continued text or data, but got something else")
	}
	return tokens, nil
}

// isAtMultiLineEnd reports whether the cursor sits at the end of the
// current content line: either the physical end of line/data, or (for
// regex and bytes values only, which permit trailing comments) a comment
// start.
func isAtMultiLineEnd(td *TokenDecoder, tokenType TokenType) bool {
	commentsAllowed := tokenType == MultiLineRegex || tokenType == MultiLineBytes
	return td.Character().Is(ClassLineBreakOrEnd) || (commentsAllowed && td.Character().IsChar('#'))
}

// parseMultiLineString reads one content line of a multi-line text, code
// or regex value, trimming trailing spacing from the captured text (it is
// not part of the value, only indentation up to the next marker is), then
// consumes the rest of the physical line (a possible comment and the
// line-break, or the end of data).
func parseMultiLineString(td *TokenDecoder, escapeChar rune, fn escapeFn, tokenType TokenType) ([]LexerToken, error) {
	var tokens []LexerToken
	if !isAtMultiLineEnd(td, tokenType) {
		var decoded strings.Builder
		for !isAtMultiLineEnd(td, tokenType) {
			for !td.Character().Is(ClassSpacing) && !td.Character().Is(ClassLineBreakOrEnd) {
				if err := td.CheckForErrorAndThrowIt(); err != nil {
					return nil, err
				}
				if fn != nil && td.Character().IsChar(escapeChar) {
					if err := td.Next(); err != nil {
						return nil, err
					}
					if err := fn(td, &decoded); err != nil {
						return nil, err
					}
					continue
				}
				decoded.WriteRune(td.Character().Rune())
				if err := td.Next(); err != nil {
					return nil, err
				}
			}
			if td.Character().Is(ClassLineBreakOrEnd) {
				break
			}
			tx := td.BeginTransaction()
			for td.Character().Is(ClassSpacing) {
				if err := td.Next(); err != nil {
					tx.RollbackIfOpen()
					return nil, err
				}
			}
			if isAtMultiLineEnd(td, tokenType) {
				tx.Rollback()
				break
			}
			decoded.WriteString(tx.CapturedString())
			tx.Commit()
		}
		tokens = append(tokens, td.CreateToken(tokenType, Content{Str: decoded.String()}))
	}
	eolTokens, err := expectEndOfLine(td, NoMoreExpected)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, eolTokens...)
	if err := td.ExpectMore("unexpected end in a multi-line text, code-block or regular expression"); err != nil {
		return nil, err
	}
	return tokens, nil
}

// expectMultiLineText drives the body of a multi-line text, code or regex
// value after its opening triple quote, triple backtick or triple slash
// has already been consumed and yielded, until the matching closing
// sequence is found.
func expectMultiLineText(td *TokenDecoder, openTokenType TokenType) ([]LexerToken, error) {
	var tokens []LexerToken

	if openTokenType == MultiLineCodeOpen {
		identifier, err := scanFormatOrLanguageIdentifier(td, true)
		if err != nil {
			return nil, err
		}
		if identifier != "" {
			tokens = append(tokens, td.CreateToken(MultiLineCodeLanguage, Content{Str: identifier}))
			if err := td.ExpectMore("unexpected end in multi-line code block"); err != nil {
				return nil, err
			}
		}
	}

	openTokens, err := expectMultiLineAfterOpen(td)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, openTokens...)

	for !td.Character().IsEndOfData() {
		if closeTok, ok, err := scanMultiLineClose(td, openTokenType); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, closeTok)
			return tokens, nil
		}

		var contentToks []LexerToken
		switch openTokenType {
		case MultiLineTextOpen:
			contentToks, err = parseMultiLineString(td, '\\', parseTextEscapeSequence, MultiLineText)
		case MultiLineCodeOpen:
			contentToks, err = parseMultiLineString(td, 0, nil, MultiLineCode)
		case MultiLineRegexOpen:
			contentToks, err = parseMultiLineString(td, '\\', parseRegularExpressionEscapeSequence, MultiLineRegex)
		default:
			return nil, td.internalError("unexpected multi-line open token type")
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, contentToks...)

		if td.Character().Is(ClassSpacing) {
			tok, err := expectAndCheckIndentation(td)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			if err := td.ExpectMore("unexpected end in multi-line text, code-block or regular expression"); err != nil {
				return nil, err
			}
		} else if !td.Character().Is(ClassLineBreak) {
			return nil, td.syntaxError("missing indentation in multi-line text")
		}
	}
	return nil, td.unexpectedEndError("unexpected end of data")
}
