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

	"github.com/openconfig/gnmi/errdiff"
)

func textContent(toks []LexerToken) (string, bool) {
	for _, tok := range toks {
		if tok.Type == Text {
			return tok.Content.Str, true
		}
	}
	return "", false
}

func TestLexerTextEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`name: "plain"` + "\n", "plain"},
		{`name: "a\\b"` + "\n", `a\b`},
		{`name: "a\"b"` + "\n", `a"b`},
		{`name: "a\tb"` + "\n", "a\tb"},
		{`name: "a\nb"` + "\n", "a\nb"},
		{`name: "a\rb"` + "\n", "a\rb"},
		{`name: "A"` + "\n", "A"},
		{`name: "\u{41}"` + "\n", "A"},
	}
	for _, tt := range tests {
		toks, err := lexAll(t, tt.in)
		if err != nil {
			t.Errorf("lexAll(%q) error = %v", tt.in, err)
			continue
		}
		got, ok := textContent(toks)
		if !ok || got != tt.want {
			t.Errorf("lexAll(%q) text content = %q found=%v, want %q", tt.in, got, ok, tt.want)
		}
	}
}

func TestLexerCodeAndRegex(t *testing.T) {
	toks, err := lexAll(t, "name: `raw \\ text`\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	var got string
	var found bool
	for _, tok := range toks {
		if tok.Type == Code {
			got, found = tok.Content.Str, true
		}
	}
	if !found || got != `raw \ text` {
		t.Errorf("code content = %q found=%v, want %q", got, found, `raw \ text`)
	}

	toks, err = lexAll(t, `name: /^[a-z]+$/`+"\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	found = false
	for _, tok := range toks {
		if tok.Type == RegEx {
			got, found = tok.Content.Str, true
		}
	}
	if !found || got != `^[a-z]+$` {
		t.Errorf("regex content = %q found=%v, want %q", got, found, `^[a-z]+$`)
	}
}

func TestLexerTextErrors(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{"name: \"unterminated\n", "line break"},
		{`name: "\uD800"` + "\n", "invalid unicode"},
		{`name: "\x"` + "\n", "escape sequence"},
	}
	for _, tt := range tests {
		_, err := lexAll(t, tt.in)
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("lexAll(%q) error mismatch: %s", tt.in, diff)
		}
	}
}
