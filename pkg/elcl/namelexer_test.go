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

func readAllNameElements(t *testing.T, path string) ([]NameElement, error) {
	t.Helper()
	nl, err := NewNameLexer([]byte(path))
	if err != nil {
		t.Fatalf("NewNameLexer(%q): %v", path, err)
	}
	var elems []NameElement
	for nl.HasNext() {
		elem, err := nl.Next()
		if err != nil {
			return elems, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

func TestNameLexerPath(t *testing.T) {
	elems, err := readAllNameElements(t, "server.listener[2].port")
	if err != nil {
		t.Fatalf("readAllNameElements error = %v", err)
	}
	want := []NameElement{
		{Type: NameTypeRegular, Text: "server"},
		{Type: NameTypeRegular, Text: "listener"},
		{Type: NameTypeIndex, Index: 2},
		{Type: NameTypeRegular, Text: "port"},
	}
	if diff := cmp.Diff(want, elems); diff != "" {
		t.Errorf("name path elements mismatch (-want +got):\n%s", diff)
	}
}

func TestNameLexerMetaAndTextElements(t *testing.T) {
	elems, err := readAllNameElements(t, `@version`)
	if err != nil {
		t.Fatalf("readAllNameElements error = %v", err)
	}
	want := []NameElement{{Type: NameTypeRegular, Text: "@version", IsMetaName: true}}
	if diff := cmp.Diff(want, elems); diff != "" {
		t.Errorf("meta name element mismatch (-want +got):\n%s", diff)
	}

	elems, err = readAllNameElements(t, `"My Name".value`)
	if err != nil {
		t.Fatalf("readAllNameElements error = %v", err)
	}
	want = []NameElement{
		{Type: NameTypeText, Text: "My Name"},
		{Type: NameTypeRegular, Text: "value"},
	}
	if diff := cmp.Diff(want, elems); diff != "" {
		t.Errorf("text name element mismatch (-want +got):\n%s", diff)
	}
}

func TestNameLexerTextIndex(t *testing.T) {
	elems, err := readAllNameElements(t, `""[3]`)
	if err != nil {
		t.Fatalf("readAllNameElements error = %v", err)
	}
	want := []NameElement{{Type: NameTypeTextIndex, Index: 3}}
	if diff := cmp.Diff(want, elems); diff != "" {
		t.Errorf("text-index element mismatch (-want +got):\n%s", diff)
	}
}

func TestNameLexerErrors(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{".foo", "must not start with a separator"},
		{"foo.", "must not end with a separator"},
		{"foo..bar", "multiple subsequent separators"},
		{"[99999999999999999999]", "exceeds"},
		{"1foo", "must not start with a digit"},
	}
	for _, tt := range tests {
		_, err := readAllNameElements(t, tt.in)
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("readAllNameElements(%q) error mismatch: %s", tt.in, diff)
		}
	}
}
