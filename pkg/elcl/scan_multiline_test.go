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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/openconfig/gnmi/errdiff"
)

func TestLexerMultiLineText(t *testing.T) {
	in := "name: \"\"\"\n  hello\n  \"\"\"\n"
	toks, err := lexAll(t, in)
	if err != nil {
		t.Fatalf("lexAll(%q) error = %v", in, err)
	}
	wantTypes := []TokenType{
		RegularName, NameValueSeparator, Spacing,
		MultiLineTextOpen, LineBreak, Indentation,
		MultiLineText, LineBreak, Indentation,
		MultiLineTextClose, LineBreak, EndOfData,
	}
	if diff := cmp.Diff(wantTypes, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
	var content string
	for _, tok := range toks {
		if tok.Type == MultiLineText {
			content = tok.Content.Str
		}
	}
	if content != "hello" {
		t.Errorf("multi-line text content = %q, want %q", content, "hello")
	}
}

func TestLexerMultiLineCodeWithLanguage(t *testing.T) {
	in := "name: ```go\n  fmt.Println()\n  ```\n"
	toks, err := lexAll(t, in)
	if err != nil {
		t.Fatalf("lexAll(%q) error = %v", in, err)
	}
	wantTypes := []TokenType{
		RegularName, NameValueSeparator, Spacing,
		MultiLineCodeOpen, MultiLineCodeLanguage, LineBreak, Indentation,
		MultiLineCode, LineBreak, Indentation,
		MultiLineCodeClose, LineBreak, EndOfData,
	}
	if diff := cmp.Diff(wantTypes, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
}

func TestLexerMultiLineRegex(t *testing.T) {
	in := "name: ///\n  ^abc$\n  ///\n"
	toks, err := lexAll(t, in)
	if err != nil {
		t.Fatalf("lexAll(%q) error = %v", in, err)
	}
	wantTypes := []TokenType{
		RegularName, NameValueSeparator, Spacing,
		MultiLineRegexOpen, LineBreak, Indentation,
		MultiLineRegex, LineBreak, Indentation,
		MultiLineRegexClose, LineBreak, EndOfData,
	}
	if diff := cmp.Diff(wantTypes, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
}

func TestLexerMultiLineIndentationMismatch(t *testing.T) {
	in := "name: \"\"\"\n  hello\n    \"\"\"\n"
	_, err := lexAll(t, in)
	if diff := errdiff.Substring(err, "indentation"); diff != "" {
		t.Errorf("lexAll(%q) error mismatch: %s", in, diff)
	}
}
