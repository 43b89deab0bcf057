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

// escapeFn decodes one escape sequence (the character right after the
// escape character is already current) and appends the result to target.
type escapeFn func(td *TokenDecoder, target *strings.Builder) error

// parseString is the shared engine behind text, code and regex scanning:
// read characters up to (not including) terminator, expanding escapeChar
// sequences through escapeFn, and consume the terminator itself. A nil
// escapeFn (used for code spans) means no escaping is recognised at all.
func parseString(td *TokenDecoder, target *strings.Builder, terminator rune, escapeChar rune, fn escapeFn) error {
	for !td.Character().IsEndOfData() {
		if err := td.CheckForErrorAndThrowIt(); err != nil {
			return err
		}
		if td.Character().Is(ClassLineBreak) {
			return td.syntaxError("unexpected line break in text or code-block")
		}
		if td.Character().IsChar(terminator) {
			return td.Next()
		}
		if fn != nil && td.Character().IsChar(escapeChar) {
			if err := td.Next(); err != nil {
				return err
			}
			if err := td.ExpectMore("unexpected end in an escape sequence"); err != nil {
				return err
			}
			if err := fn(td, target); err != nil {
				return err
			}
			continue
		}
		target.WriteRune(td.Character().Rune())
		if err := td.Next(); err != nil {
			return err
		}
	}
	return td.unexpectedEndError("unexpected end of data")
}

func parseText(td *TokenDecoder, target *strings.Builder) error {
	return parseString(td, target, '"', '\\', parseTextEscapeSequence)
}

func parseRegularExpression(td *TokenDecoder, target *strings.Builder) error {
	return parseString(td, target, '/', '\\', parseRegularExpressionEscapeSequence)
}

func parseCode(td *TokenDecoder, target *strings.Builder) error {
	return parseString(td, target, '`', 0, nil)
}

func parseTextEscapeSequence(td *TokenDecoder, target *strings.Builder) error {
	if td.Character().Is(ClassLineBreak) {
		return td.syntaxError("unexpected line break in escape sequence")
	}
	escaped := td.Character()
	if err := td.CheckForErrorAndThrowIt(); err != nil {
		return err
	}
	if err := td.Next(); err != nil {
		return err
	}
	switch {
	case escaped.IsChar('\\'):
		target.WriteByte('\\')
	case escaped.IsChar('"'):
		target.WriteByte('"')
	case escaped.IsChar('$'):
		target.WriteByte('$')
	case escaped.IsChar('t') || escaped.IsChar('T'):
		target.WriteByte('\t')
	case escaped.IsChar('n') || escaped.IsChar('N'):
		target.WriteByte('\n')
	case escaped.IsChar('r') || escaped.IsChar('R'):
		target.WriteByte('\r')
	case escaped.IsChar('u') || escaped.IsChar('U'):
		return parseUnicodeEscapeSequence(td, target)
	default:
		return td.syntaxError("unexpected character in escape sequence")
	}
	return nil
}

func parseUnicodeEscapeSequence(td *TokenDecoder, target *strings.Builder) error {
	if err := td.ExpectMore("unexpected end in a Unicode escape sequence"); err != nil {
		return err
	}
	var value int64
	if td.Character().IsChar('{') {
		if err := td.Next(); err != nil {
			return err
		}
		if err := td.expect(td.Character().Is(ClassHexDigit), "expected a hex digit after the opening bracket"); err != nil {
			return err
		}
		result, err := parseNumber(td, BaseHex, SignPositive, SeparatorsNo, 0)
		if err != nil {
			return err
		}
		if err := td.ExpectMore("unexpected end in a Unicode escape sequence"); err != nil {
			return err
		}
		if result.DigitCount > 8 {
			return td.syntaxError("hex escape sequence is too long")
		}
		if err := td.expectAndNext(td.Character().IsChar('}'), "expected a closing bracket after the hexadecimal number"); err != nil {
			return err
		}
		value = result.Value
	} else if td.Character().Is(ClassHexDigit) {
		result, err := parseNumber(td, BaseHex, SignPositive, SeparatorsNo, 4)
		if err != nil {
			return err
		}
		if err := td.ExpectMore("unexpected end in a Unicode escape sequence"); err != nil {
			return err
		}
		if result.Value < 0 {
			return td.syntaxError("hex escape sequence requires four digits")
		}
		value = result.Value
	} else {
		return td.syntaxError("expected a hex digit or an opening bracket")
	}
	if !isValidEscapeUnicode(rune(value)) {
		return td.syntaxError("invalid unicode value in escape sequence")
	}
	target.WriteRune(rune(value))
	return nil
}

// isValidEscapeUnicode rejects surrogate halves and values outside the
// Unicode range; everything else (including non-characters) is accepted,
// matching Char::isValidEscapeUnicode in the original.
func isValidEscapeUnicode(r rune) bool {
	if r < 0 || r > 0x10FFFF {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	return true
}

func parseRegularExpressionEscapeSequence(td *TokenDecoder, target *strings.Builder) error {
	switch {
	case td.Character().IsChar('/'):
		target.WriteByte('/')
	case !td.Character().IsError():
		target.WriteByte('\\')
		target.WriteRune(td.Character().Rune())
	default:
		return td.syntaxError("unexpected character in escape sequence")
	}
	return td.Next()
}

// scanSingleLineText dispatches on the opening delimiter for a single-line
// Text ("..."), RegEx (/.../) or Code (`...`) value. It returns ok=false
// (with the cursor untouched) if the current character opens none of them.
func scanSingleLineText(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	c := td.Character()
	if !c.IsChar('"') && !c.IsChar('`') && !c.IsChar('/') {
		return LexerToken{}, false, nil
	}
	terminator := c.Rune()
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	var sb strings.Builder
	switch terminator {
	case '"':
		if err := parseText(td, &sb); err != nil {
			return LexerToken{}, false, err
		}
		return td.CreateToken(Text, Content{Str: sb.String()}), true, nil
	case '/':
		if err := parseRegularExpression(td, &sb); err != nil {
			return LexerToken{}, false, err
		}
		return td.CreateToken(RegEx, Content{Str: sb.String()}), true, nil
	default: // '`'
		if err := parseCode(td, &sb); err != nil {
			return LexerToken{}, false, err
		}
		return td.CreateToken(Code, Content{Str: sb.String()}), true, nil
	}
}
