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

func TestLexerDate(t *testing.T) {
	toks, err := lexAll(t, "name: 2024-03-05\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	want := []TokenType{RegularName, NameValueSeparator, Spacing, Date, LineBreak, EndOfData}
	if diff := cmp.Diff(want, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
	for _, tok := range toks {
		if tok.Type == Date {
			if got, want := tok.Content.Date, (CivilDate{Year: 2024, Month: 3, Day: 5}); got != want {
				t.Errorf("date content = %+v, want %+v", got, want)
			}
		}
	}
}

func TestLexerDateTimeWithOffset(t *testing.T) {
	toks, err := lexAll(t, "name: 2024-03-05T10:30:00Z\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	want := []TokenType{RegularName, NameValueSeparator, Spacing, DateTime, LineBreak, EndOfData}
	if diff := cmp.Diff(want, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
	for _, tok := range toks {
		if tok.Type == DateTime {
			dt := tok.Content.DateTime
			if !dt.Time.IsUTC || !dt.Time.HasOffset {
				t.Errorf("date-time offset = %+v, want IsUTC=true HasOffset=true", dt.Time)
			}
			if dt.Time.Hour != 10 || dt.Time.Minute != 30 || dt.Time.Second != 0 {
				t.Errorf("date-time = %+v, want 10:30:00", dt.Time)
			}
		}
	}
}

func TestLexerBareTime(t *testing.T) {
	toks, err := lexAll(t, "name: 14:30:00\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	want := []TokenType{RegularName, NameValueSeparator, Spacing, Time, LineBreak, EndOfData}
	if diff := cmp.Diff(want, tokenTypes(toks)); diff != "" {
		t.Fatalf("token types mismatch (-want +got):\n%s\n%s", diff, dumpTokens(toks))
	}
}

func TestLexerDateErrors(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{"name: 2024-02-30\n", "does not exist"},
		{"name: 2024-13-01\n", "range 01-12"},
	}
	for _, tt := range tests {
		_, err := lexAll(t, tt.in)
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("lexAll(%q) error mismatch: %s", tt.in, diff)
		}
	}
}
