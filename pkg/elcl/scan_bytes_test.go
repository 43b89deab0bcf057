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

func TestLexerBytesSingleLine(t *testing.T) {
	toks, err := lexAll(t, "name: <AB CD>\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	want := []TokenType{RegularName, NameValueSeparator, Spacing, Bytes, LineBreak, EndOfData}
	if diff := cmp.Diff(want, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
	var got []byte
	for _, tok := range toks {
		if tok.Type == Bytes {
			got = tok.Content.Bytes
		}
	}
	if diff := cmp.Diff([]byte{0xAB, 0xCD}, got); diff != "" {
		t.Errorf("bytes content mismatch (-want +got):\n%s", diff)
	}
}

func TestLexerBytesMultiLine(t *testing.T) {
	toks, err := lexAll(t, "name: <<<\n  AB CD\n  >>>\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	want := []TokenType{
		RegularName, NameValueSeparator, Spacing,
		MultiLineBytesOpen, LineBreak, Indentation,
		MultiLineBytes, LineBreak, Indentation,
		MultiLineBytesClose, LineBreak, EndOfData,
	}
	if diff := cmp.Diff(want, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
}

func TestLexerBytesErrors(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{"name: <A>\n", "second hex digit"},
		{"name: <AG>\n", "second hex digit"},
	}
	for _, tt := range tests {
		_, err := lexAll(t, tt.in)
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("lexAll(%q) error mismatch: %s", tt.in, diff)
		}
	}
}
