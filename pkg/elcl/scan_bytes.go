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

// bytesHexDigitValue converts a hex-digit rune (already validated via
// ClassHexDigit) into its numeric value.
func bytesHexDigitValue(r rune) byte {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0')
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10
	default:
		return 0
	}
}

// scanSingleLineFormatIdentifier reads an optional "format:" prefix right
// after the opening '<'. With no colon following, the whole prefix is
// rolled back and the format defaults to "hex".
func scanSingleLineFormatIdentifier(td *TokenDecoder) (string, error) {
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	identifier, err := scanFormatOrLanguageIdentifier(td, false)
	if err != nil {
		return "", err
	}
	if identifier != "" && td.Character().IsChar(':') {
		if err := td.Next(); err != nil {
			return "", err
		}
		tx.Commit()
		return identifier, nil
	}
	tx.Rollback()
	return "hex", nil
}

// scanBytes matches a single-line `<...>` bytes value (hex pairs,
// optionally space-separated, with an optional "hex:" format prefix; no
// other format is currently supported).
func scanBytes(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	if !td.Character().IsChar('<') {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	if err := td.ExpectMoreInLine("unexpected end in bytes value"); err != nil {
		return LexerToken{}, false, err
	}
	format, err := scanSingleLineFormatIdentifier(td)
	if err != nil {
		return LexerToken{}, false, err
	}
	if format != "hex" {
		return LexerToken{}, false, td.errorAt(CategoryUnsupported, "unknown bytes-data format")
	}
	if err := td.ExpectMoreInLine("unexpected end in bytes value"); err != nil {
		return LexerToken{}, false, err
	}

	var bytes []byte
	for !td.Character().IsChar('>') {
		if err := td.ExpectMoreInLine("unexpected end in bytes value"); err != nil {
			return LexerToken{}, false, err
		}
		if err := skipSpacing(td); err != nil {
			return LexerToken{}, false, err
		}
		if td.Character().IsChar('>') {
			break
		}
		if err := td.ExpectMoreInLine("unexpected end in bytes value"); err != nil {
			return LexerToken{}, false, err
		}
		if !td.Character().Is(ClassHexDigit) {
			return LexerToken{}, false, td.syntaxError("expected first hex digit of a byte, got something else")
		}
		value := bytesHexDigitValue(td.Character().Rune()) << 4
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		if err := td.ExpectMoreInLine("unexpected end in bytes value"); err != nil {
			return LexerToken{}, false, err
		}
		if !td.Character().Is(ClassHexDigit) {
			return LexerToken{}, false, td.syntaxError("expected second hex digit of a byte, got something else")
		}
		value |= bytesHexDigitValue(td.Character().Rune())
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		bytes = append(bytes, value)
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	return td.CreateToken(Bytes, Content{Bytes: bytes}), true, nil
}

// parseMultiLineBytesHexLine reads one content line of a multi-line bytes
// value, then the rest of the physical line (comment/line-break or end of
// data), mirroring parseMultiLineString's shape for text values.
func parseMultiLineBytesHexLine(td *TokenDecoder) ([]LexerToken, error) {
	var tokens []LexerToken
	if !isAtMultiLineEnd(td, MultiLineBytes) {
		var bytes []byte
		for !isAtMultiLineEnd(td, MultiLineBytes) {
			if err := skipSpacing(td); err != nil {
				return nil, err
			}
			if isAtMultiLineEnd(td, MultiLineBytes) {
				break
			}
			if !td.Character().Is(ClassHexDigit) {
				return nil, td.syntaxError("expected first hex digit of a byte, got something else")
			}
			value := bytesHexDigitValue(td.Character().Rune()) << 4
			if err := td.Next(); err != nil {
				return nil, err
			}
			if isAtMultiLineEnd(td, MultiLineBytes) {
				return nil, td.syntaxError("expected second hex digit of a byte, not the end of the line")
			}
			if !td.Character().Is(ClassHexDigit) {
				return nil, td.syntaxError("expected second hex digit of a byte, got something else")
			}
			value |= bytesHexDigitValue(td.Character().Rune())
			if err := td.Next(); err != nil {
				return nil, err
			}
			bytes = append(bytes, value)
		}
		tokens = append(tokens, td.CreateToken(MultiLineBytes, Content{Bytes: bytes}))
	}
	eolTokens, err := expectEndOfLine(td, NoMoreExpected)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, eolTokens...)
	if err := td.ExpectMore("unexpected end in a multi-line bytes-data"); err != nil {
		return nil, err
	}
	return tokens, nil
}

// expectMultiLineBytes drives the body of a multi-line `<<<`/`>>>` bytes
// value after its opening sequence has already been consumed and yielded.
// The cursor starts just after the opening angle-bracket sequence.
func expectMultiLineBytes(td *TokenDecoder) ([]LexerToken, error) {
	var tokens []LexerToken

	if err := td.ExpectMore("unexpected end in bytes value"); err != nil {
		return nil, err
	}
	identifier, err := scanFormatOrLanguageIdentifier(td, true)
	if err != nil {
		return nil, err
	}
	if identifier != "" {
		if !td.Character().Is(ClassEndOfLineStart) {
			return nil, td.syntaxError("unexpected characters in bytes-data format identifier")
		}
		if identifier != "hex" {
			return nil, td.errorAt(CategoryUnsupported, "unknown bytes-data format")
		}
		tokens = append(tokens, td.CreateToken(MultiLineBytesFormat, Content{Str: identifier}))
	}
	if !td.Character().Is(ClassEndOfLineStart) {
		return nil, td.syntaxError("unexpected characters in bytes-data format identifier")
	}

	openTokens, err := expectMultiLineAfterOpen(td)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, openTokens...)

	for !td.Character().IsEndOfData() {
		if closeTok, ok, err := scanMultiLineClose(td, MultiLineBytesOpen); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, closeTok)
			return tokens, nil
		}

		lineTokens, err := parseMultiLineBytesHexLine(td)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)

		if td.Character().Is(ClassSpacing) {
			tok, err := expectAndCheckIndentation(td)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			if err := td.ExpectMore("unexpected end in multi-line byte-data"); err != nil {
				return nil, err
			}
		} else if !td.Character().Is(ClassLineBreak) {
			return nil, td.syntaxError("missing indentation in multi-line byte-data")
		}
	}
	return nil, td.unexpectedEndError("unexpected end in multi-line byte-data")
}
