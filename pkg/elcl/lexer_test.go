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

func TestLexerNameAndValue(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{
			"name: 42\n",
			[]TokenType{RegularName, NameValueSeparator, Spacing, Integer, LineBreak, EndOfData},
		},
		{
			"name: true\n",
			[]TokenType{RegularName, NameValueSeparator, Spacing, Boolean, LineBreak, EndOfData},
		},
		{
			"name: \"text value\"\n",
			[]TokenType{RegularName, NameValueSeparator, Spacing, Text, LineBreak, EndOfData},
		},
		{
			"@version: \"1.0\"\n",
			[]TokenType{MetaName, NameValueSeparator, Spacing, Text, LineBreak, EndOfData},
		},
		{
			"count: 1, 2, 3\n",
			[]TokenType{
				RegularName, NameValueSeparator, Spacing,
				Integer, ValueListSeparator, Spacing,
				Integer, ValueListSeparator, Spacing,
				Integer, LineBreak, EndOfData,
			},
		},
	}
	for _, tt := range tests {
		toks, err := lexAll(t, tt.in)
		if err != nil {
			t.Errorf("lexAll(%q) error = %v", tt.in, err)
			continue
		}
		got := tokenTypes(toks)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("lexAll(%q) token types mismatch (-want +got):\n%s\n%s", tt.in, diff, dumpTokens(toks))
		}
	}
}

func TestLexerSection(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{
			"[main]\n",
			[]TokenType{SectionMapOpen, RegularName, SectionMapClose, LineBreak, EndOfData},
		},
		{
			"[main.sub]\n",
			[]TokenType{
				SectionMapOpen, RegularName, NamePathSeparator, RegularName,
				SectionMapClose, LineBreak, EndOfData,
			},
		},
		{
			"*[server]\n",
			[]TokenType{SectionListOpen, RegularName, SectionListClose, LineBreak, EndOfData},
		},
		{
			"*[server]*\n",
			[]TokenType{SectionListOpen, RegularName, SectionListClose, LineBreak, EndOfData},
		},
	}
	for _, tt := range tests {
		toks, err := lexAll(t, tt.in)
		if err != nil {
			t.Errorf("lexAll(%q) error = %v", tt.in, err)
			continue
		}
		got := tokenTypes(toks)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("lexAll(%q) token types mismatch (-want +got):\n%s\n%s", tt.in, diff, dumpTokens(toks))
		}
	}
}

func TestLexerCommentsAndBlankLines(t *testing.T) {
	toks, err := lexAll(t, "# a comment\n\nname: 1 # trailing\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	got := tokenTypes(toks)
	want := []TokenType{
		Comment, LineBreak,
		LineBreak,
		RegularName, NameValueSeparator, Spacing, Integer, Spacing, Comment, LineBreak,
		EndOfData,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
}

func TestLexerValueOnContinuationLine(t *testing.T) {
	toks, err := lexAll(t, "name:\n  42\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	got := tokenTypes(toks)
	want := []TokenType{
		RegularName, NameValueSeparator, LineBreak,
		Indentation, Integer, LineBreak,
		EndOfData,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{"1name: 1\n", "expected"},
		{"\"My Name\" 1\n", "value separator"},
		{"name:\n", "value"},
		{"[server]*\n", "map section"},
	}
	for _, tt := range tests {
		_, err := lexAll(t, tt.in)
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("lexAll(%q) error mismatch: %s", tt.in, diff)
		}
	}
}

func TestLexerDigest(t *testing.T) {
	source := NewSourceIdentifier("test", "")
	data := []byte("name: 1\n")
	stream := NewCharStream(NewUtf8Decoder(NewByteSliceSource(data)), source)
	td, err := NewTokenDecoder(stream)
	if err != nil {
		t.Fatalf("NewTokenDecoder: %v", err)
	}
	lx := NewLexer(td)
	for {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("NextToken: %v", err)
		}
		if tok.Type == EndOfData {
			break
		}
	}
	digest := lx.Digest()
	if len(digest) != 32 {
		t.Errorf("len(Digest()) = %d, want 32 (SHA-256)", len(digest))
	}
	if hex := DigestHex(digest); len(hex) != 64 {
		t.Errorf("len(DigestHex(...)) = %d, want 64", len(hex))
	}
}
