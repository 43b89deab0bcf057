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

func TestPosition(t *testing.T) {
	p := NewPosition(3, 7)
	if p.Line() != 3 || p.Column() != 7 {
		t.Fatalf("NewPosition(3, 7) = %v, want line=3 column=7", p)
	}
	if p.IsUndefined() {
		t.Fatalf("NewPosition(3, 7).IsUndefined() = true, want false")
	}
	if got, want := p.String(), "3:7"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var zero Position
	if !zero.IsUndefined() {
		t.Errorf("zero value Position.IsUndefined() = false, want true")
	}
}

func TestSourceIdentifier(t *testing.T) {
	src := NewSourceIdentifier("config.elcl", "/etc/app/config.elcl")
	if got, want := src.Name(), "config.elcl"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
	if got, want := src.Path(), "/etc/app/config.elcl"; got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestLocation(t *testing.T) {
	src := NewSourceIdentifier("", "config.elcl")
	loc := Location{Source: src, Position: NewPosition(1, 1)}
	if loc.IsUndefined() {
		t.Fatalf("Location.IsUndefined() = true, want false")
	}
	if got, want := loc.String(), "config.elcl:1:1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
