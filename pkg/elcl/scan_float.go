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
	"strconv"
	"strings"
)

// checkAndConvertFloat converts a captured float literal (still containing
// its leading '+' and digit separators) into a float64. Out-of-range and
// malformed conversions are both reported as CategorySyntax, not
// CategoryLimitExceeded: the value's magnitude is a grammar concern here,
// matching the original's deliberate choice of error category.
func checkAndConvertFloat(td *TokenDecoder, raw string) (float64, error) {
	value := strings.TrimPrefix(raw, "+")
	value = strings.ReplaceAll(value, "'", "")
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, td.syntaxError("the floating point number is out of range")
		}
		return 0, td.syntaxError("the floating point number is invalid")
	}
	return f, nil
}

type decimalDigitsResult struct {
	digitCount   int
	zeroPrefixed bool
}

// parseDecimalDigits consumes a run of decimal digits (with apostrophe
// separators allowed) and reports whether it started with a redundant
// leading zero.
func parseDecimalDigits(td *TokenDecoder) (decimalDigitsResult, error) {
	digitCount := 0
	hasZeroPrefix := false
	for !td.Character().IsEndOfData() {
		if digitCount == 0 && td.Character().IsChar('0') {
			hasZeroPrefix = true
		}
		if td.Character().Is(ClassDigitSeparator) {
			if digitCount == 0 {
				return decimalDigitsResult{}, td.syntaxError("number cannot start with a digit separator")
			}
			if err := td.Next(); err != nil {
				return decimalDigitsResult{}, err
			}
			if td.Character().Is(ClassDigitSeparator) {
				return decimalDigitsResult{}, td.syntaxError("number cannot contain two consecutive digit separators")
			}
			if !td.Character().Is(ClassDecimalDigit) {
				return decimalDigitsResult{}, td.syntaxOrUnexpectedEndError("expected another digit after the digit separator")
			}
		}
		if !td.Character().Is(ClassDecimalDigit) {
			break
		}
		digitCount++
		if err := td.Next(); err != nil {
			return decimalDigitsResult{}, err
		}
	}
	if hasZeroPrefix && digitCount == 1 {
		hasZeroPrefix = false
	}
	return decimalDigitsResult{digitCount: digitCount, zeroPrefixed: hasZeroPrefix}, nil
}

func scanNaN(td *TokenDecoder, tx *Transaction) (LexerToken, bool, error) {
	if err := td.Next(); err != nil { // skip 'n'/'N'
		return LexerToken{}, false, err
	}
	if !td.Character().Is(ClassLetterA) {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	if !td.Character().Is(ClassLetterN) {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	if !td.Character().Is(ClassValidAfterValue) {
		return LexerToken{}, false, td.syntaxError("unexpected characters after 'NaN' literal")
	}
	tx.Commit()
	return td.CreateToken(Float, Content{Float: math.NaN()}), true, nil
}

func scanInf(td *TokenDecoder, tx *Transaction, isNegative bool) (LexerToken, bool, error) {
	if !td.Character().Is(ClassLetterI) {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	if !td.Character().Is(ClassLetterN) {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	if !td.Character().Is(ClassLetterF) {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	if !td.Character().Is(ClassValidAfterValue) {
		return LexerToken{}, false, td.syntaxError(`unexpected characters after "inf" literal`)
	}
	tx.Commit()
	v := math.Inf(1)
	if isNegative {
		v = math.Inf(-1)
	}
	return td.CreateToken(Float, Content{Float: v}), true, nil
}

// scanLiteralFloat is the first entry point tried by the value dispatcher:
// an optionally-signed "nan" or "inf" keyword.
func scanLiteralFloat(td *TokenDecoder) (LexerToken, bool, error) {
	if !td.Character().Is(ClassFloatLiteralStart) {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	isNegative := false
	if td.Character().Is(ClassPlusOrMinus) {
		isNegative = td.Character().IsChar('-')
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
	}
	if td.Character().Is(ClassLetterN) {
		if tok, ok, err := scanNaN(td, tx); ok || err != nil {
			return tok, ok, err
		}
	}
	return scanInf(td, tx, isNegative)
}

func scanFloatAfterExponent(td *TokenDecoder, tx *Transaction) (LexerToken, bool, error) {
	if td.Character().Is(ClassPlusOrMinus) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
	}
	if !td.Character().Is(ClassDecimalDigit) {
		return LexerToken{}, false, td.syntaxOrUnexpectedEndError("expected a decimal digit after the exponent")
	}
	digitCount := 0
	for td.Character().Is(ClassDecimalDigit) {
		if digitCount >= 6 {
			return LexerToken{}, false, td.limitExceededError("exponent too long: maximum 6 digits allowed")
		}
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		digitCount++
	}
	if !td.Character().Is(ClassValidAfterValue) {
		return LexerToken{}, false, td.syntaxError("unexpected trailing characters after exponent")
	}
	value, err := checkAndConvertFloat(td, tx.CapturedString())
	if err != nil {
		return LexerToken{}, false, err
	}
	tx.Commit()
	return td.CreateToken(Float, Content{Float: value}), true, nil
}

func scanFloatAfterDecimalPoint(td *TokenDecoder, tx *Transaction, totalDigits int) (LexerToken, bool, error) {
	if td.Character().Is(ClassDecimalDigit) {
		fraction, err := parseDecimalDigits(td)
		if err != nil {
			return LexerToken{}, false, err
		}
		totalDigits += fraction.digitCount
	} else if totalDigits == 0 {
		if !td.Character().Is(ClassValidAfterValue) {
			return LexerToken{}, false, td.syntaxError("unexpected character after decimal point")
		}
		return LexerToken{}, false, td.syntaxError("floating-point literal must include digits before or after the decimal point")
	}
	if totalDigits > 20 {
		return LexerToken{}, false, td.limitExceededError("literal too long: maximum 20 digits allowed (excluding sign and decimal)")
	}
	if td.Character().Is(ClassExponentStart) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		tok, ok, err := scanFloatAfterExponent(td, tx)
		if err != nil {
			return LexerToken{}, false, err
		}
		if !ok {
			return LexerToken{}, false, td.syntaxOrUnexpectedEndError("missing exponent digits: at least one digit required")
		}
		return tok, true, nil
	}
	if !td.Character().Is(ClassValidAfterValue) {
		return LexerToken{}, false, td.syntaxError("unexpected trailing characters after exponent")
	}
	value, err := checkAndConvertFloat(td, tx.CapturedString())
	if err != nil {
		return LexerToken{}, false, err
	}
	tx.Commit()
	return td.CreateToken(Float, Content{Float: value}), true, nil
}

// scanFloatFractionOnly matches a float with no whole part, e.g. `.5` or
// `+.25`.
func scanFloatFractionOnly(td *TokenDecoder) (LexerToken, bool, error) {
	if !td.Character().Is(ClassPlusOrMinus) && !td.Character().IsChar('.') {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	if td.Character().Is(ClassPlusOrMinus) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
	}
	if !td.Character().IsChar('.') {
		return LexerToken{}, false, nil
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	return scanFloatAfterDecimalPoint(td, tx, 0)
}

// scanFloatWithWholePart matches a float with digits before the decimal
// point: `1.5`, `12e10`, `-3.14e-2`.
func scanFloatWithWholePart(td *TokenDecoder) (LexerToken, bool, error) {
	if !td.Character().Is(ClassNumberStart) {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	if td.Character().Is(ClassPlusOrMinus) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
	}
	if !td.Character().Is(ClassDecimalDigit) {
		return LexerToken{}, false, nil
	}
	whole, err := parseDecimalDigits(td)
	if err != nil {
		return LexerToken{}, false, err
	}
	totalDigits := whole.digitCount
	if td.Character().Is(ClassExponentStart) {
		if err := td.Next(); err != nil {
			return LexerToken{}, false, err
		}
		if whole.zeroPrefixed {
			return LexerToken{}, false, td.syntaxError("leading zeros not allowed in floating-point literals")
		}
		if totalDigits > 20 {
			return LexerToken{}, false, td.limitExceededError("literal too long: maximum 20 digits allowed (excluding sign and decimal)")
		}
		return scanFloatAfterExponent(td, tx)
	}
	if !td.Character().IsChar('.') {
		return LexerToken{}, false, nil
	}
	if totalDigits > 1 && whole.zeroPrefixed {
		return LexerToken{}, false, td.syntaxError("leading zeros not allowed in floating-point literals")
	}
	if err := td.Next(); err != nil {
		return LexerToken{}, false, err
	}
	return scanFloatAfterDecimalPoint(td, tx, totalDigits)
}
