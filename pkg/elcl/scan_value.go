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

// NextLine tells expectValueOrValueList whether the value starts on a
// line of its own, following a name/value line whose value was deferred
// (the only context in which a leading '*' multi-line value list is
// legal).
type NextLine bool

const (
	NextLineNo  NextLine = false
	NextLineYes NextLine = true
)

// MultiLineAllowed gates whether a `"""`/```` ```` ````/`///`/`<<<`
// opening sequence may start a multi-line value here.
type MultiLineAllowed bool

const (
	MultiLineNotAllowed MultiLineAllowed = false
	MultiLineIsAllowed  MultiLineAllowed = true
)

// valueScanners lists the value-scanning functions in the exact order
// the grammar requires them to be tried: each returns ok=false (with the
// cursor untouched) when its shape does not match, letting the next
// scanner have a turn.
var valueScanners = []func(*TokenDecoder) (LexerToken, bool, error){
	scanLiteralFloat,
	scanLiteral,
	scanDateOrDateTime,
	scanTime,
	scanFloatFractionOnly,
	scanFloatWithWholePart,
	scanIntegerOrTimeDelta,
	scanSingleLineText,
	scanBytes,
}

// expectSingleLineValue tries every value scanner in the contractually
// fixed order above and returns the first match.
func expectSingleLineValue(td *TokenDecoder) (LexerToken, error) {
	for _, scan := range valueScanners {
		tok, ok, err := scan(td)
		if err != nil {
			return LexerToken{}, err
		}
		if ok {
			return tok, nil
		}
	}
	return LexerToken{}, td.syntaxOrUnexpectedEndError("expected a value, but got something else")
}

// expectSingleLineValueOrValueList reads one value, then as many more as
// are separated by ','.
func expectSingleLineValueOrValueList(td *TokenDecoder) ([]LexerToken, error) {
	var tokens []LexerToken
	valueTok, err := expectSingleLineValue(td)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, valueTok)
	if tok, ok, err := scanForSpacing(td); err != nil {
		return nil, err
	} else if ok {
		tokens = append(tokens, tok)
	}
	for td.Character().IsChar(',') {
		if err := td.Next(); err != nil {
			return nil, err
		}
		tokens = append(tokens, td.CreateSimpleToken(ValueListSeparator))
		if tok, ok, err := scanForSpacing(td); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
		}
		if td.Character().Is(ClassLineBreakOrEnd) {
			return nil, td.syntaxOrUnexpectedEndError("expected another value after the value list separator")
		}
		valueTok, err := expectSingleLineValue(td)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, valueTok)
		if tok, ok, err := scanForSpacing(td); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
		}
	}
	if err := td.expect(td.Character().Is(ClassEndOfLineStart), "expected end of line or a value separator, but got something else"); err != nil {
		return nil, err
	}
	eolTokens, err := expectEndOfLine(td, NoMoreExpected)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, eolTokens...)
	return tokens, nil
}

// expectMultiLineValueList reads a `*`-introduced value-list item on its
// own line, then as many further `*`-prefixed continuation lines (at the
// same indentation) as follow.
func expectMultiLineValueList(td *TokenDecoder) ([]LexerToken, error) {
	if !td.Character().IsChar('*') {
		return nil, td.internalError("called expectMultiLineValueList in the wrong state")
	}
	var tokens []LexerToken
	if err := td.Next(); err != nil {
		return nil, err
	}
	tokens = append(tokens, td.CreateSimpleToken(MultiLineValueListSeparator))
	if tok, ok, err := scanForSpacing(td); err != nil {
		return nil, err
	} else if ok {
		tokens = append(tokens, tok)
	}
	if err := td.ExpectMore("unexpected end in multi-line value list, expected a value"); err != nil {
		return nil, err
	}
	itemTokens, err := expectSingleLineValueOrValueList(td)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, itemTokens...)

	for td.Character().Is(ClassSpacing) {
		tx := td.BeginTransaction()
		for td.Character().Is(ClassSpacing) {
			if err := td.Next(); err != nil {
				tx.RollbackIfOpen()
				return nil, err
			}
		}
		if td.Character().Is(ClassEndOfLineStart) {
			tx.Rollback()
			return tokens, nil
		}
		if tx.CapturedString() != td.IndentationPattern() {
			tokens = append(tokens, td.CreateSimpleToken(Indentation))
			tx.Commit()
			return nil, td.errorAt(CategoryIndentation, "the indentation pattern does not match the one on the previous line")
		}
		if !td.Character().IsChar('*') {
			tokens = append(tokens, td.CreateSimpleToken(Indentation))
			tx.Commit()
			return nil, td.syntaxError("expected the asterisk for a value list continuation, but got something else")
		}
		tx.Commit()
		tokens = append(tokens, td.CreateSimpleToken(Indentation))
		if err := td.Next(); err != nil {
			return nil, err
		}
		tokens = append(tokens, td.CreateSimpleToken(MultiLineValueListSeparator))
		if tok, ok, err := scanForSpacing(td); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
		}
		if err := td.ExpectMore("unexpected end in multi-line value list, expected a value"); err != nil {
			return nil, err
		}
		itemTokens, err := expectSingleLineValueOrValueList(td)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, itemTokens...)
	}
	return tokens, nil
}

// expectValueOrValueList is the entry point for a value position: on the
// continuation line after a deferred name/value separator, a leading '*'
// starts a multi-line value list; otherwise an opening multi-line
// bracket sequence, if allowed here, starts a multi-line value; failing
// both, it falls through to a single-line value (or value list).
func expectValueOrValueList(td *TokenDecoder, nextLine NextLine, multiLineAllowed MultiLineAllowed) ([]LexerToken, error) {
	if nextLine == NextLineYes && td.Character().IsChar('*') {
		return expectMultiLineValueList(td)
	}
	if multiLineAllowed == MultiLineIsAllowed && td.Character().Is(ClassOpeningBracket) {
		if openTok, ok, err := scanMultiLineOpen(td); err != nil {
			return nil, err
		} else if ok {
			tokens := []LexerToken{openTok}
			var bodyTokens []LexerToken
			switch openTok.Type {
			case MultiLineTextOpen, MultiLineCodeOpen, MultiLineRegexOpen:
				bodyTokens, err = expectMultiLineText(td, openTok.Type)
			case MultiLineBytesOpen:
				bodyTokens, err = expectMultiLineBytes(td)
			default:
				return nil, td.internalError("unexpected token type after opening bracket")
			}
			if err != nil {
				return nil, err
			}
			return append(tokens, bodyTokens...), nil
		}
	}
	return expectSingleLineValueOrValueList(td)
}

// expectNameAndValue scans a full name/value line: the name, the `:`
// separator, and then either the value on this same line or (if the rest
// of the line is empty, possibly with a comment) the value deferred to
// the indented continuation line.
func expectNameAndValue(td *TokenDecoder) ([]LexerToken, error) {
	td.ClearIndentationPattern()
	var tokens []LexerToken

	var nameTok LexerToken
	var err error
	if td.Character().Is(ClassLetter) || td.Character().IsChar('@') {
		nameTok, err = expectRegularOrMetaNameToken(td)
	} else {
		if err := td.expect(td.Character().IsChar('"'), "expectNameAndValue called from the wrong context"); err != nil {
			return nil, err
		}
		nameTok, err = expectTextName(td)
	}
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, nameTok)

	if tok, ok, err := scanForSpacing(td); err != nil {
		return nil, err
	} else if ok {
		tokens = append(tokens, tok)
	}
	if err := td.expectAndNext(td.Character().Is(ClassNameValueSeparator), "expected a value separator after the name, but got something else"); err != nil {
		return nil, err
	}
	tokens = append(tokens, td.CreateSimpleToken(NameValueSeparator))
	if tok, ok, err := scanForSpacing(td); err != nil {
		return nil, err
	} else if ok {
		tokens = append(tokens, tok)
	}

	switch {
	case td.Character().IsChar('#') || td.Character().Is(ClassLineBreak):
		eolTokens, err := expectEndOfLine(td, MoreExpected)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, eolTokens...)
		if err := td.ExpectMore("expected a value on the next line"); err != nil {
			return nil, err
		}
		indentTok, err := expectAndCheckIndentation(td)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, indentTok)
		valueTokens, err := expectValueOrValueList(td, NextLineYes, MultiLineIsAllowed)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, valueTokens...)
	case td.Character().IsEndOfData():
		return nil, td.unexpectedEndError("expected a value after the name separator")
	default:
		valueTokens, err := expectValueOrValueList(td, NextLineNo, MultiLineIsAllowed)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, valueTokens...)
	}
	return tokens, nil
}
