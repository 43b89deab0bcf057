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

// maxNameLength is the longest a single name element may be, in code
// points, after normalization.
const maxNameLength = 100

// AcceptedNameEnd selects which characters legally terminate a regular or
// meta name, depending on whether it is read as part of a dotted name-path
// (`name.sub[2]`) or inside a section header (`[name]`).
type AcceptedNameEnd uint8

const (
	AcceptedNameEndNamePath AcceptedNameEnd = iota
	AcceptedNameEndSection
)

// nameResult is the outcome of expectRegularOrMetaName.
type nameResult struct {
	isMetaName bool
	name       string
}

// expectRegularOrMetaName reads a name, normalizing it to lower case with
// internal word-separating spaces folded to underscores. A leading `@`
// marks a meta name.
func expectRegularOrMetaName(td *TokenDecoder, accepted AcceptedNameEnd) (nameResult, error) {
	isMeta := false
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	if td.Character().IsChar('@') {
		if err := td.Next(); err != nil {
			return nameResult{}, err
		}
		isMeta = true
		if err := td.expect(td.Character().Is(ClassLetter), "unexpected character in meta name after at-character"); err != nil {
			return nameResult{}, err
		}
	}

	for tx.CapturedSize() <= maxNameLength {
		switch {
		case td.Character().IsChar(' '):
			spaceTx := td.BeginTransaction()
			if err := td.Next(); err != nil {
				spaceTx.RollbackIfOpen()
				return nameResult{}, err
			}
			if !td.Character().Is(ClassLetterOrDigit) {
				spaceTx.Rollback()
				goto done
			}
			spaceTx.Commit()
		case td.Character().IsChar('\t'):
			goto done
		case td.Character().IsChar('_'):
			if err := td.Next(); err != nil {
				return nameResult{}, err
			}
			if tx.CapturedSize() > maxNameLength {
				goto done
			}
			if !td.Character().Is(ClassLetterOrDigit) {
				switch {
				case td.Character().Is(ClassLineBreakOrEnd) || td.Character().Is(ClassNameValueSeparator) || td.Character().Is(ClassSpacing):
					return nameResult{}, td.syntaxError("a name must not end with an underscore")
				case td.Character().IsChar('_'):
					return nameResult{}, td.syntaxError("a name must not contain two or more subsequent word separators")
				default:
					return nameResult{}, td.syntaxError("unexpected character in this name")
				}
			}
		default:
			if accepted == AcceptedNameEndNamePath {
				if td.Character().IsEndOfData() || td.Character().IsChar('.') || td.Character().IsChar('[') {
					goto done
				}
			}
			if accepted == AcceptedNameEndSection {
				if td.Character().Is(ClassNameValueSeparator) || td.Character().IsChar('.') || td.Character().IsChar(']') {
					goto done
				}
			}
		}
		if err := td.expect(td.Character().Is(ClassLetterOrDigit), "unexpected character following a regular name"); err != nil {
			return nameResult{}, err
		}
		for td.Character().Is(ClassLetterOrDigit) {
			if err := td.Next(); err != nil {
				return nameResult{}, err
			}
			if tx.CapturedSize() > maxNameLength {
				break
			}
		}
	}
done:
	if tx.CapturedSize() > maxNameLength {
		return nameResult{}, td.limitExceededError("a name must not exceed 100 characters")
	}
	name := normalizeCapturedName(td, tx)
	tx.Commit()
	return nameResult{isMetaName: isMeta, name: name}, nil
}

// normalizeCapturedName folds a captured name to its canonical form: ASCII
// lower case, with single spaces between word-runs replaced by
// underscores. This mirrors Transaction::captured with a custom append
// function in the original.
func normalizeCapturedName(td *TokenDecoder, tx *Transaction) string {
	raw := tx.CapturedString()
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r == ' ' {
			b.WriteByte('_')
		} else {
			b.WriteRune(FoldASCII(r))
		}
	}
	return b.String()
}

// expectRegularOrMetaNameToken wraps expectRegularOrMetaName into a token.
func expectRegularOrMetaNameToken(td *TokenDecoder) (LexerToken, error) {
	result, err := expectRegularOrMetaName(td, AcceptedNameEndSection)
	if err != nil {
		return LexerToken{}, err
	}
	if result.isMetaName {
		return td.CreateToken(MetaName, Content{Str: result.name}), nil
	}
	return td.CreateToken(RegularName, Content{Str: result.name}), nil
}

// expectTextName reads a `"quoted name"`: a single-line text value used in
// place of a regular name, e.g. `"My Name": 1`.
func expectTextName(td *TokenDecoder) (LexerToken, error) {
	if err := td.Next(); err != nil { // consume the opening quote
		return LexerToken{}, err
	}
	var sb strings.Builder
	if err := parseText(td, &sb); err != nil {
		return LexerToken{}, err
	}
	name := sb.String()
	if name == "" {
		if td.Character().IsChar('"') {
			return LexerToken{}, td.syntaxError("a text name must not be a multi-line text")
		}
		return LexerToken{}, td.syntaxError("a text name must not be empty")
	}
	return td.CreateToken(TextName, Content{Str: name}), nil
}
