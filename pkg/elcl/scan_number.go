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

import "math"

// NumberBase is the radix a digit run is parsed in.
type NumberBase struct {
	factor  uint64
	maxDigs int
	isDigit func(r rune) bool
	digit   func(r rune) uint64
}

var (
	BaseDecimal = NumberBase{factor: 10, maxDigs: 19, isDigit: isDecimalDigit, digit: decimalDigitValue}
	BaseHex     = NumberBase{factor: 16, maxDigs: 16, isDigit: isHexDigit, digit: hexDigitValue}
	BaseOctal   = NumberBase{factor: 8, maxDigs: 22, isDigit: isOctalDigit, digit: octalDigitValue}
	BaseBinary  = NumberBase{factor: 2, maxDigs: 64, isDigit: isBinaryDigit, digit: binaryDigitValue}
)

func isDecimalDigit(r rune) bool { return r >= '0' && r <= '9' }
func decimalDigitValue(r rune) uint64 { return uint64(r - '0') }

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
func hexDigitValue(r rune) uint64 {
	switch {
	case r >= '0' && r <= '9':
		return uint64(r - '0')
	case r >= 'a' && r <= 'f':
		return uint64(r-'a') + 10
	default:
		return uint64(r-'A') + 10
	}
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }
func octalDigitValue(r rune) uint64 { return uint64(r - '0') }

func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }
func binaryDigitValue(r rune) uint64 { return uint64(r - '0') }

// NumberSeparators controls whether apostrophe digit-separators are
// accepted within the run.
type NumberSeparators bool

const (
	SeparatorsNo  NumberSeparators = false
	SeparatorsYes NumberSeparators = true
)

// Sign is the sign to apply to the parsed magnitude.
type Sign bool

const (
	SignPositive Sign = false
	SignNegative Sign = true
)

// ParseNumberResult is the outcome of parseNumber: the signed value and how
// many digits were actually consumed.
type ParseNumberResult struct {
	Value      int64
	DigitCount int
}

func handleDigitSeparator(td *TokenDecoder, base NumberBase, digitCount int) error {
	if !td.Character().Is(ClassDigitSeparator) {
		return nil
	}
	if digitCount == 0 {
		return td.syntaxError("number cannot start with a digit separator")
	}
	if err := td.Next(); err != nil {
		return err
	}
	if td.Character().Is(ClassDigitSeparator) {
		return td.syntaxError("number cannot contain two consecutive digit separators")
	}
	if !td.Character().IsEndOfData() && !td.Character().IsError() && base.isDigit(td.Character().Rune()) {
		return nil
	}
	return td.syntaxOrUnexpectedEndError("expected another digit after the digit separator")
}

// parseNumber consumes a run of digits of the given base and returns the
// parsed magnitude with sign applied. If fixedDigitCount > 0 and fewer
// digits than that are found, it returns {-1, digitCount} instead of an
// error: callers (date/time scanners) use that sentinel to backtrack.
func parseNumber(
	td *TokenDecoder,
	base NumberBase,
	sign Sign,
	separators NumberSeparators,
	fixedDigitCount int,
) (ParseNumberResult, error) {
	if td.Character().IsEndOfData() {
		return ParseNumberResult{}, td.unexpectedEndError("expected a number, but the document ended at this point")
	}
	var value uint64
	digitCount := 0
	for !td.Character().IsEndOfData() {
		if fixedDigitCount > 0 && digitCount >= fixedDigitCount {
			break
		}
		if digitCount > base.maxDigs {
			return ParseNumberResult{}, td.numberLimitExceededError()
		}
		if separators == SeparatorsYes {
			if err := handleDigitSeparator(td, base, digitCount); err != nil {
				return ParseNumberResult{}, err
			}
		}
		if td.Character().IsError() {
			break
		}
		r := td.Character().Rune()
		if base.isDigit(r) {
			d := base.digit(r)
			if value > (math.MaxUint64-d)/base.factor {
				return ParseNumberResult{}, td.numberLimitExceededError()
			}
			value = value*base.factor + d
		} else {
			break
		}
		digitCount++
		if err := td.Next(); err != nil {
			return ParseNumberResult{}, err
		}
	}
	if err := td.CheckForErrorAndThrowIt(); err != nil {
		return ParseNumberResult{}, err
	}
	if fixedDigitCount > 0 && digitCount < fixedDigitCount {
		return ParseNumberResult{Value: -1, DigitCount: digitCount}, nil
	}
	const maxInt64AsUint64 = uint64(math.MaxInt64)
	if sign == SignNegative {
		if value > maxInt64AsUint64+1 {
			return ParseNumberResult{}, td.numberLimitExceededError()
		}
		if value == maxInt64AsUint64+1 {
			return ParseNumberResult{Value: math.MinInt64, DigitCount: digitCount}, nil
		}
		return ParseNumberResult{Value: -int64(value), DigitCount: digitCount}, nil
	}
	if value > maxInt64AsUint64 {
		return ParseNumberResult{}, td.numberLimitExceededError()
	}
	return ParseNumberResult{Value: int64(value), DigitCount: digitCount}, nil
}
