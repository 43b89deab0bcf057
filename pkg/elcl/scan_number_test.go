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
	"math"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestLexerIntegerForms(t *testing.T) {
	tests := []struct {
		in       string
		wantType TokenType
	}{
		{"name: 42\n", Integer},
		{"name: -3\n", Integer},
		{"name: 0x1F\n", Integer},
		{"name: 0b101\n", Integer},
		{"name: 10kb\n", Integer},
		{"name: 5m\n", TimeDelta},
	}
	for _, tt := range tests {
		toks, err := lexAll(t, tt.in)
		if err != nil {
			t.Errorf("lexAll(%q) error = %v", tt.in, err)
			continue
		}
		var got TokenType
		for _, tok := range toks {
			if tok.Type == Integer || tok.Type == TimeDelta {
				got = tok.Type
			}
		}
		if got != tt.wantType {
			t.Errorf("lexAll(%q) value token type = %v, want %v\n%s", tt.in, got, tt.wantType, dumpTokens(toks))
		}
	}
}

func TestLexerIntegerValues(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"name: 42\n", 42},
		{"name: -3\n", -3},
		{"name: 0x1F\n", 31},
		{"name: 0b101\n", 5},
		{"name: 10kb\n", 10000},
	}
	for _, tt := range tests {
		toks, err := lexAll(t, tt.in)
		if err != nil {
			t.Errorf("lexAll(%q) error = %v", tt.in, err)
			continue
		}
		var got int64
		for _, tok := range toks {
			if tok.Type == Integer {
				got = tok.Content.Int
			}
		}
		if got != tt.want {
			t.Errorf("lexAll(%q) integer value = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLexerTimeDeltaValue(t *testing.T) {
	toks, err := lexAll(t, "name: 5m\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	for _, tok := range toks {
		if tok.Type == TimeDelta {
			if tok.Content.Delta.Count != 5 || tok.Content.Delta.Unit != UnitMinutes {
				t.Errorf("time delta = %+v, want {Count:5 Unit:UnitMinutes}", tok.Content.Delta)
			}
		}
	}
}

func TestLexerFloatForms(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"name: 3.14\n", 3.14},
		{"name: .5\n", 0.5},
		{"name: 1.5e10\n", 1.5e10},
	}
	for _, tt := range tests {
		toks, err := lexAll(t, tt.in)
		if err != nil {
			t.Errorf("lexAll(%q) error = %v", tt.in, err)
			continue
		}
		var got float64
		var found bool
		for _, tok := range toks {
			if tok.Type == Float {
				got = tok.Content.Float
				found = true
			}
		}
		if !found || got != tt.want {
			t.Errorf("lexAll(%q) float value = %v found=%v, want %v", tt.in, got, found, tt.want)
		}
	}
}

func TestLexerFloatSpecials(t *testing.T) {
	toks, err := lexAll(t, "name: nan\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	for _, tok := range toks {
		if tok.Type == Float && !math.IsNaN(tok.Content.Float) {
			t.Errorf("nan literal decoded to %v, want NaN", tok.Content.Float)
		}
	}

	toks, err = lexAll(t, "name: -inf\n")
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	for _, tok := range toks {
		if tok.Type == Float && tok.Content.Float != math.Inf(-1) {
			t.Errorf("-inf literal decoded to %v, want -Inf", tok.Content.Float)
		}
	}
}

func TestLexerNumberErrors(t *testing.T) {
	tests := []struct {
		in            string
		wantErrSubstr string
	}{
		{"name: 0123\n", "leading zero"},
		{"name: 99999999999999999999999\n", "exceeds"},
	}
	for _, tt := range tests {
		_, err := lexAll(t, tt.in)
		if diff := errdiff.Substring(err, tt.wantErrSubstr); diff != "" {
			t.Errorf("lexAll(%q) error mismatch: %s", tt.in, diff)
		}
	}
}
