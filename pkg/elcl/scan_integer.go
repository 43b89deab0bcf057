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

// byteCountSuffixes maps a lower-cased byte-count unit to its decimal
// multiplier. zb/yb/zib/yib are recognised (so a typo like "1zb" reports a
// clean LimitExceeded instead of an unknown-suffix Syntax error) but carry
// a non-positive factor, matching the original's "declared but
// unrepresentable" unit handling.
var byteCountSuffixes = map[string]int64{
	"kb": 1000, "mb": 1000000, "gb": 1000000000,
	"tb": 1000000000000, "pb": 1000000000000000, "eb": 1000000000000000000,
	"zb": -1, "yb": -1,
	"kib": 1024, "mib": 1048576, "gib": 1073741824,
	"tib": 1099511627776, "pib": 1125899906842624, "eib": 1152921504606846976,
	"zib": -1, "yib": -1,
}

// timeUnitSuffixes maps every singular and plural spelling of a time-delta
// unit to its TimeUnit. "µs" (U+00B5) and "us" are both accepted for
// microseconds.
var timeUnitSuffixes = map[string]TimeUnit{
	"ns": UnitNanoseconds, "nanosecond": UnitNanoseconds, "nanoseconds": UnitNanoseconds,
	"us": UnitMicroseconds, "µs": UnitMicroseconds,
	"microsecond": UnitMicroseconds, "microseconds": UnitMicroseconds,
	"ms": UnitMilliseconds, "millisecond": UnitMilliseconds, "milliseconds": UnitMilliseconds,
	"s": UnitSeconds, "second": UnitSeconds, "seconds": UnitSeconds,
	"m": UnitMinutes, "minute": UnitMinutes, "minutes": UnitMinutes,
	"h": UnitHours, "hour": UnitHours, "hours": UnitHours,
	"d": UnitDays, "day": UnitDays, "days": UnitDays,
	"w": UnitWeeks, "week": UnitWeeks, "weeks": UnitWeeks,
	"month": UnitMonths, "months": UnitMonths,
	"year": UnitYears, "years": UnitYears,
}

// booleanLiterals maps every recognised boolean keyword to its value.
var booleanLiterals = map[string]bool{
	"true": true, "yes": true, "enabled": true, "on": true,
	"false": false, "no": false, "disabled": false, "off": false,
}

// scanDecimalSuffix is reached once a decimal integer has been parsed and
// the next character could start a byte-count or time-delta unit suffix
// (optionally preceded by exactly one space). outer is the transaction
// covering the whole literal; it is committed here once the final shape
// (plain integer vs. suffixed integer vs. time-delta) is known.
func scanDecimalSuffix(td *TokenDecoder, outer *Transaction, number int64) (LexerToken, error) {
	suffixTx := td.BeginTransaction()
	defer suffixTx.RollbackIfOpen()

	if td.Character().IsChar(' ') {
		if err := td.Next(); err != nil {
			return LexerToken{}, err
		}
		if !td.Character().Is(ClassIntegerSuffixChar) {
			// A space with nothing suffix-shaped after it just separates
			// the integer from whatever follows; leave that to the caller.
			suffixTx.Rollback()
			outer.Commit()
			return td.CreateToken(Integer, Content{Int: number}), nil
		}
	}

	var id []rune
	for td.Character().Is(ClassIntegerSuffixChar) {
		id = append(id, FoldASCII(td.Character().Rune()))
		if err := td.Next(); err != nil {
			return LexerToken{}, err
		}
		if len(id) > 12 {
			return LexerToken{}, td.syntaxError("unknown integer suffix")
		}
	}
	identifier := string(id)

	if factor, ok := byteCountSuffixes[identifier]; ok {
		if factor <= 0 || willMultiplyOverflowI64(number, factor) {
			return LexerToken{}, td.limitExceededError("the byte count exceeds a 64-bit value")
		}
		suffixTx.Commit()
		outer.Commit()
		return td.CreateToken(Integer, Content{Int: number * factor}), nil
	}
	if unit, ok := timeUnitSuffixes[identifier]; ok {
		suffixTx.Commit()
		outer.Commit()
		return td.CreateToken(TimeDelta, Content{Delta: TimeDeltaValue{Count: number, Unit: unit}}), nil
	}
	return LexerToken{}, td.syntaxError("unknown integer suffix")
}

func willMultiplyOverflowI64(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	r := a * b
	return r/b != a
}

// scanIntegerOrTimeDelta is the last numeric entry point tried by the
// value dispatcher, after the float and date/time scanners: a signed decimal, hex (0x...) or binary (0b...)
// integer, optionally followed by a byte-count or time-delta unit suffix.
func scanIntegerOrTimeDelta(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	if !td.Character().Is(ClassNumberStart) {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	sign := SignPositive
	isDecimal := false
	var number int64

	if td.Character().Is(ClassPlusOrMinus) {
		if td.Character().IsChar('-') {
			sign = SignNegative
		}
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		if err := td.expect(td.Character().Is(ClassDecimalDigit), "expected a digit after the sign"); err != nil {
			return LexerToken{}, false, err
		}
	}

	if td.Character().IsChar('0') {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		switch {
		case td.Character().Is(ClassLetterX):
			if err := td.Next(); err != nil {
				return LexerToken{}, false, err
			}
			result, err := parseNumber(td, BaseHex, sign, SeparatorsYes, 0)
			if err != nil {
				return LexerToken{}, false, err
			}
			if result.DigitCount == 0 {
				return LexerToken{}, false, td.syntaxError("hexadecimal number must contain at least one digit")
			}
			number = result.Value
		case td.Character().Is(ClassLetterB):
			if err := td.Next(); err != nil {
				return LexerToken{}, false, err
			}
			result, err := parseNumber(td, BaseBinary, sign, SeparatorsYes, 0)
			if err != nil {
				return LexerToken{}, false, err
			}
			if result.DigitCount == 0 {
				return LexerToken{}, false, td.syntaxError("binary number must contain at least one digit")
			}
			number = result.Value
		case td.Character().Is(ClassDecimalDigit):
			return LexerToken{}, false, td.syntaxError("a leading zero in an integer value is not allowed")
		default:
			number = 0
			isDecimal = true
		}
		if td.Character().IsChar('.') {
			return LexerToken{}, false, td.syntaxError("hexadecimal or binary floats are not supported by the language")
		}
	} else {
		result, err := parseNumber(td, BaseDecimal, sign, SeparatorsYes, 0)
		if err != nil {
			return LexerToken{}, false, err
		}
		number = result.Value
		isDecimal = true
	}

	if !isDecimal {
		if !td.Character().Is(ClassValidAfterValue) {
			return LexerToken{}, false, td.syntaxError("unexpected characters after integer value")
		}
		tx.Commit()
		return td.CreateToken(Integer, Content{Int: number}), true, nil
	}

	if td.Character().IsChar(' ') || td.Character().Is(ClassIntegerSuffixChar) {
		t, err := scanDecimalSuffix(td, tx, number)
		if err != nil {
			return LexerToken{}, false, err
		}
		return t, true, nil
	}

	if !td.Character().Is(ClassValidAfterValue) {
		return LexerToken{}, false, td.syntaxError("unexpected characters after integer value")
	}
	tx.Commit()
	return td.CreateToken(Integer, Content{Int: number}), true, nil
}

// scanLiteral matches a bare keyword (a boolean literal, or nan/inf handled
// separately by the float scanner): a run of letters capped at 8,
// case-folded and looked up in the keyword table.
func scanLiteral(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	if !td.Character().Is(ClassLetter) {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	for td.Character().Is(ClassLetter) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		if tx.CapturedSize() > 8 {
			return LexerToken{}, false, td.syntaxError("unknown value literal")
		}
	}
	identifier := tx.CapturedLowerCaseString()
	if identifier == "t" && td.Character().Is(ClassDecimalDigit) {
		// Looks like the start of a bare time value (`t12:00`); let the
		// time scanner have it.
		return LexerToken{}, false, nil
	}
	if !td.Character().Is(ClassValidAfterValue) {
		return LexerToken{}, false, td.syntaxError("unexpected character after literal")
	}
	value, ok := booleanLiterals[identifier]
	if !ok {
		return LexerToken{}, false, td.syntaxError("unknown value literal")
	}
	tx.Commit()
	return td.CreateToken(Boolean, Content{Bool: value}), true, nil
}
