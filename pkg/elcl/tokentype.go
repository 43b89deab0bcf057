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
	"fmt"
	"time"
)

// TokenType enumerates every lexical token the scanner library can produce.
type TokenType uint8

const (
	EndOfData TokenType = iota
	LineBreak
	Spacing
	Indentation
	Comment
	RegularName
	TextName
	MetaName
	NameValueSeparator
	ValueListSeparator
	MultiLineValueListSeparator
	NamePathSeparator
	Integer
	Boolean
	Float
	Text
	MultiLineTextOpen
	MultiLineTextClose
	MultiLineText
	Code
	MultiLineCodeOpen
	MultiLineCodeLanguage
	MultiLineCodeClose
	MultiLineCode
	RegEx
	MultiLineRegexOpen
	MultiLineRegexClose
	MultiLineRegex
	Bytes
	MultiLineBytesOpen
	MultiLineBytesFormat
	MultiLineBytesClose
	MultiLineBytes
	Date
	Time
	DateTime
	TimeDelta
	SectionMapOpen
	SectionMapClose
	SectionListOpen
	SectionListClose
	TokenError
)

var tokenTypeNames = [...]string{
	"EndOfData", "LineBreak", "Spacing", "Indentation", "Comment",
	"RegularName", "TextName", "MetaName", "NameValueSeparator",
	"ValueListSeparator", "MultiLineValueListSeparator", "NamePathSeparator",
	"Integer", "Boolean", "Float", "Text", "MultiLineTextOpen",
	"MultiLineTextClose", "MultiLineText", "Code", "MultiLineCodeOpen",
	"MultiLineCodeLanguage", "MultiLineCodeClose", "MultiLineCode", "RegEx",
	"MultiLineRegexOpen", "MultiLineRegexClose", "MultiLineRegex", "Bytes",
	"MultiLineBytesOpen", "MultiLineBytesFormat", "MultiLineBytesClose",
	"MultiLineBytes", "Date", "Time", "DateTime", "TimeDelta",
	"SectionMapOpen", "SectionMapClose", "SectionListOpen",
	"SectionListClose", "Error",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", uint8(t))
}

// FromMultiLineOpen maps an opening delimiter rune to its *Open token type,
// or EndOfData if r does not open a multi-line value.
func FromMultiLineOpen(r rune) TokenType {
	switch r {
	case '"':
		return MultiLineTextOpen
	case '`':
		return MultiLineCodeOpen
	case '/':
		return MultiLineRegexOpen
	case '<':
		return MultiLineBytesOpen
	default:
		return EndOfData
	}
}

// FromMultiLineClose maps a closing delimiter rune to its *Close token
// type, or EndOfData if r does not close a multi-line value.
func FromMultiLineClose(r rune) TokenType {
	switch r {
	case '"':
		return MultiLineTextClose
	case '`':
		return MultiLineCodeClose
	case '/':
		return MultiLineRegexClose
	case '>':
		return MultiLineBytesClose
	default:
		return EndOfData
	}
}

// Content is the tagged payload carried by a token. Exactly one of the
// fields is meaningful; which one is determined by the token's Type, never
// by inspecting Content itself. Go has no tagged union, so this stands in
// for the original's std::variant: every scanner sets only the one field
// its TokenType calls for and leaves the rest zero.
type Content struct {
	Int      int64
	Float    float64
	Bool     bool
	Str      string
	Bytes    []byte
	Date     CivilDate
	Time     CivilTime
	DateTime CivilDateTime
	Delta    TimeDeltaValue
}

// CivilDate is a calendar date with no associated time or zone.
type CivilDate struct {
	Year  int
	Month int
	Day   int
}

// CivilTime is a time of day with optional UTC offset.
//
// OffsetMinutes is the offset from UTC in minutes, HasOffset reports
// whether an offset was specified at all (absent means "local", per the
// language's optional-offset rule), and IsUTC distinguishes an explicit
// "z" suffix from a "+00:00" offset for round-tripping.
type CivilTime struct {
	Hour          int
	Minute        int
	Second        int
	Nanosecond    int
	HasOffset     bool
	IsUTC         bool
	OffsetMinutes int
}

// CivilDateTime combines CivilDate and CivilTime.
type CivilDateTime struct {
	Date CivilDate
	Time CivilTime
}

// TimeDeltaValue is a signed count of a single calendar or clock unit (e.g.
// "5 days", "-2 months"), the payload of a TimeDelta token. Units are never
// mixed in a single literal.
type TimeDeltaValue struct {
	Count int64
	Unit  TimeUnit
}

// TimeUnit enumerates the unit suffixes recognised after an integer in a
// time-delta literal.
type TimeUnit uint8

const (
	UnitNanoseconds TimeUnit = iota
	UnitMicroseconds
	UnitMilliseconds
	UnitSeconds
	UnitMinutes
	UnitHours
	UnitDays
	UnitWeeks
	UnitMonths
	UnitYears
)

func (u TimeUnit) AsDuration() time.Duration {
	switch u {
	case UnitNanoseconds:
		return time.Nanosecond
	case UnitMicroseconds:
		return time.Microsecond
	case UnitMilliseconds:
		return time.Millisecond
	case UnitSeconds:
		return time.Second
	case UnitMinutes:
		return time.Minute
	case UnitHours:
		return time.Hour
	case UnitDays:
		return 24 * time.Hour
	case UnitWeeks:
		return 7 * 24 * time.Hour
	default:
		// Months and years have no fixed duration; callers that need a
		// calendar-aware result must apply Count to a time.Time instead.
		return 0
	}
}

// LexerToken is the single token type produced by every scanner. Begin and
// End bracket the raw text; RawText is exactly that slice of the source
// document (decoded, not re-escaped), as captured by the TokenDecoder.
type LexerToken struct {
	Type    TokenType
	Begin   Position
	End     Position
	RawText string
	Content Content
}

func (t LexerToken) String() string {
	return fmt.Sprintf("%s[%s-%s] %q", t.Type, t.Begin, t.End, t.RawText)
}
