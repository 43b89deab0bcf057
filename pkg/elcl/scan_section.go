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

// expectSection scans a full section header line: the opening
// `[`/`*[`/`---[` bracket sequence, an optional leading name-path
// separator, the dotted chain of names, the closing bracket sequence
// (with a trailing `*` allowed only on list sections), and the rest of
// the line. The decoder must be positioned at the first '-', '*' or '['
// of the header.
func expectSection(td *TokenDecoder) ([]LexerToken, error) {
	var tokens []LexerToken
	isListSection := false

	for td.Character().IsChar('-') {
		if err := td.Next(); err != nil {
			return nil, err
		}
	}
	if td.Character().IsChar('*') {
		if err := td.Next(); err != nil {
			return nil, err
		}
		isListSection = true
	}
	if err := td.expectAndNext(td.Character().IsChar('['), "expected an opening square bracket, but got something else"); err != nil {
		return nil, err
	}
	if isListSection {
		tokens = append(tokens, td.CreateSimpleToken(SectionListOpen))
	} else {
		tokens = append(tokens, td.CreateSimpleToken(SectionMapOpen))
	}

	if tok, ok, err := scanForSpacing(td); err != nil {
		return nil, err
	} else if ok {
		tokens = append(tokens, tok)
	}
	if td.Character().IsChar('.') {
		if err := td.Next(); err != nil {
			return nil, err
		}
		tokens = append(tokens, td.CreateSimpleToken(NamePathSeparator))
		if tok, ok, err := scanForSpacing(td); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
		}
	}

	for td.Character().Is(ClassSectionNameStart) {
		var nameTok LexerToken
		var err error
		if td.Character().IsChar('"') {
			nameTok, err = expectTextName(td)
		} else {
			nameTok, err = expectRegularOrMetaNameToken(td)
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
		if !td.Character().IsChar('.') {
			break
		}
		if err := td.Next(); err != nil {
			return nil, err
		}
		tokens = append(tokens, td.CreateSimpleToken(NamePathSeparator))
		if tok, ok, err := scanForSpacing(td); err != nil {
			return nil, err
		} else if ok {
			tokens = append(tokens, tok)
		}
	}

	if err := td.expectAndNext(td.Character().IsChar(']'), "expected a closing square bracket, but got something else"); err != nil {
		return nil, err
	}
	if td.Character().IsChar('*') {
		if !isListSection {
			return nil, td.syntaxError("a map section cannot have an asterisk after the closing square bracket")
		}
		if err := td.Next(); err != nil {
			return nil, err
		}
	}
	for td.Character().IsChar('-') {
		if err := td.Next(); err != nil {
			return nil, err
		}
	}
	if isListSection {
		tokens = append(tokens, td.CreateSimpleToken(SectionListClose))
	} else {
		tokens = append(tokens, td.CreateSimpleToken(SectionMapClose))
	}

	if err := td.expect(td.Character().Is(ClassEndOfLineStart), "expected end of line after section, but got something else"); err != nil {
		return nil, err
	}
	eolTokens, err := expectEndOfLine(td, NoMoreExpected)
	if err != nil {
		return nil, err
	}
	tokens = append(tokens, eolTokens...)
	return tokens, nil
}
