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

import "testing"

func TestCharIs(t *testing.T) {
	tests := []struct {
		r     rune
		class CharClass
		want  bool
	}{
		{'a', ClassLetter, true},
		{'Z', ClassLetter, true},
		{'5', ClassLetter, false},
		{'5', ClassDecimalDigit, true},
		{'f', ClassHexDigit, true},
		{'g', ClassHexDigit, false},
		{' ', ClassSpacing, true},
		{'\t', ClassSpacing, true},
		{'\n', ClassLineBreak, true},
		{'#', ClassEndOfLineStart, true},
		{'[', ClassSectionStart, true},
		{'[', ClassOpeningBracket, false},
		{'"', ClassOpeningBracket, true},
		{'`', ClassOpeningBracket, true},
		{'/', ClassOpeningBracket, true},
		{'<', ClassOpeningBracket, true},
		{':', ClassNameValueSeparator, true},
		{'=', ClassNameValueSeparator, true},
		{'_', ClassNameStart, true},
		{'@', ClassNameStart, true},
		{'\'', ClassDigitSeparator, true},
	}
	for _, tt := range tests {
		c := Char(tt.r)
		if got := c.Is(tt.class); got != tt.want {
			t.Errorf("Char(%q).Is(class=%d) = %v, want %v", tt.r, tt.class, got, tt.want)
		}
	}
}

func TestCharSentinels(t *testing.T) {
	if !EndOfDataChar.IsEndOfData() {
		t.Errorf("EndOfDataChar.IsEndOfData() = false, want true")
	}
	if EndOfDataChar.Is(ClassLetter) {
		t.Errorf("EndOfDataChar.Is(ClassLetter) = true, want false")
	}
	if !ErrChar.IsError() {
		t.Errorf("ErrChar.IsError() = false, want true")
	}
	if ErrChar.Is(ClassSpacing) {
		t.Errorf("ErrChar.Is(ClassSpacing) = true, want false")
	}
}

func TestFoldASCII(t *testing.T) {
	tests := []struct {
		r    rune
		want rune
	}{
		{'A', 'a'},
		{'Z', 'z'},
		{'a', 'a'},
		{'5', '5'},
		{'_', '_'},
	}
	for _, tt := range tests {
		if got := FoldASCII(tt.r); got != tt.want {
			t.Errorf("FoldASCII(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
