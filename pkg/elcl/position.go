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

import "fmt"

// Position is a 1-based line and column pair. Column counts Unicode code
// points, not bytes. The zero value is the undefined position.
type Position struct {
	line   int
	column int
}

// NewPosition returns the position (line, column). Both are 1-based.
func NewPosition(line, column int) Position {
	return Position{line: line, column: column}
}

// IsUndefined reports whether p carries no location information.
func (p Position) IsUndefined() bool {
	return p.line == 0 && p.column == 0
}

// Line returns the 1-based line number, or 0 if undefined.
func (p Position) Line() int { return p.line }

// Column returns the 1-based column number (code points), or 0 if undefined.
func (p Position) Column() int { return p.column }

func (p Position) String() string {
	if p.IsUndefined() {
		return "undefined"
	}
	return fmt.Sprintf("%d:%d", p.line, p.column)
}

// SourceIdentifier names the origin of a document. Instances are shared by
// reference between every Location that refers to the same document and
// must never be mutated after creation.
type SourceIdentifier struct {
	name string // e.g. "file", "text", "stdin"
	path string // e.g. a file path, or a descriptive label
}

// NewSourceIdentifier creates a shared, immutable source identifier.
func NewSourceIdentifier(name, path string) *SourceIdentifier {
	return &SourceIdentifier{name: name, path: path}
}

// Name returns the kind of source ("file", "text", ...).
func (s *SourceIdentifier) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Path returns the path or descriptive label of the source.
func (s *SourceIdentifier) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

func (s *SourceIdentifier) String() string {
	if s == nil {
		return ""
	}
	if s.name == "" {
		return s.path
	}
	return s.name + ":" + s.path
}

// Location ties a Position to the SourceIdentifier it was read from.
type Location struct {
	Source   *SourceIdentifier
	Position Position
}

// IsUndefined reports whether neither the source nor the position carry
// information.
func (l Location) IsUndefined() bool {
	return l.Source == nil && l.Position.IsUndefined()
}

func (l Location) String() string {
	if l.IsUndefined() {
		return "undefined"
	}
	if l.Source == nil {
		return l.Position.String()
	}
	return fmt.Sprintf("%s:%s", l.Source, l.Position)
}
