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

// daysInMonth reports how many days month (1-12) has in year, accounting
// for leap years.
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func isValidDate(year, month, day int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= daysInMonth(year, month)
}

// scanDate parses "YYYY-MM-DD". It returns ok=false, no error, if the input
// does not even start "YYYY-"; once past that point every further defect is
// a syntax error, not a backtrack.
func scanDate(td *TokenDecoder) (CivilDate, bool, error) {
	yearResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 4)
	if err != nil {
		return CivilDate{}, false, err
	}
	if yearResult.Value < 0 {
		return CivilDate{}, false, nil
	}
	if !td.Character().IsChar('-') {
		return CivilDate{}, false, nil
	}
	if err := td.Next(); err != nil {
		return CivilDate{}, false, err
	}
	if !td.Character().Is(ClassDecimalDigit) {
		return CivilDate{}, false, td.syntaxOrUnexpectedEndError("expected a month part after the date separator")
	}
	monthResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
	if err != nil {
		return CivilDate{}, false, err
	}
	if monthResult.Value < 0 {
		return CivilDate{}, false, td.syntaxOrUnexpectedEndError("expected two digits for the month in a date")
	}
	if monthResult.Value < 1 || monthResult.Value > 12 {
		return CivilDate{}, false, td.syntaxError("the month in a date value must be in the range 01-12")
	}
	if !td.Character().IsChar('-') {
		return CivilDate{}, false, td.syntaxOrUnexpectedEndError("expected a date separator after the month")
	}
	if err := td.Next(); err != nil {
		return CivilDate{}, false, err
	}
	if !td.Character().Is(ClassDecimalDigit) {
		return CivilDate{}, false, td.syntaxOrUnexpectedEndError("expected a day part after the date separator")
	}
	dayResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
	if err != nil {
		return CivilDate{}, false, err
	}
	if dayResult.Value < 0 {
		return CivilDate{}, false, td.syntaxOrUnexpectedEndError("expected two digits for the day in a date")
	}
	if dayResult.Value < 1 || dayResult.Value > 31 {
		return CivilDate{}, false, td.syntaxError("the day in a date value must be in the range 01-31")
	}
	year, month, day := int(yearResult.Value), int(monthResult.Value), int(dayResult.Value)
	if !isValidDate(year, month, day) {
		return CivilDate{}, false, td.syntaxError("this date does not exist")
	}
	return CivilDate{Year: year, Month: month, Day: day}, true, nil
}

// scanTimeValue parses "HH:MM[:SS[.fraction]][offset]". It returns
// ok=false, no error, if the input does not start "HH:".
func scanTimeValue(td *TokenDecoder) (CivilTime, bool, error) {
	if td.Character().Is(ClassLetterT) {
		if err := td.Next(); err != nil {
			return CivilTime{}, false, err
		}
		if !td.Character().Is(ClassDecimalDigit) {
			return CivilTime{}, false, nil
		}
	}
	hourResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
	if err != nil {
		return CivilTime{}, false, err
	}
	if hourResult.Value < 0 || !td.Character().IsChar(':') {
		return CivilTime{}, false, nil
	}
	if err := td.Next(); err != nil {
		return CivilTime{}, false, err
	}
	if hourResult.Value > 23 {
		return CivilTime{}, false, td.syntaxError("the hour in a time value must be in the range 00-23")
	}
	if !td.Character().Is(ClassDecimalDigit) {
		return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected the minute part after the colon for a time value")
	}
	minuteResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
	if err != nil {
		return CivilTime{}, false, err
	}
	if minuteResult.Value < 0 {
		return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected a two digit minute part after the colon for a time value")
	}
	if minuteResult.Value > 59 {
		return CivilTime{}, false, td.syntaxError("the minute in a time value must be in the range 00-59")
	}

	var second, fraction int64
	if td.Character().IsChar(':') {
		if err := td.Next(); err != nil {
			return CivilTime{}, false, err
		}
		if !td.Character().Is(ClassDecimalDigit) {
			return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected the second part after the second colon for a time value")
		}
		secondResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
		if err != nil {
			return CivilTime{}, false, err
		}
		if secondResult.Value < 0 {
			return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected a two digit second part after the second colon for a time value")
		}
		if secondResult.Value > 59 {
			return CivilTime{}, false, td.syntaxError("the second in a time value must be in the range 00-59")
		}
		second = secondResult.Value
		if td.Character().IsChar('.') {
			if err := td.Next(); err != nil {
				return CivilTime{}, false, err
			}
			if !td.Character().Is(ClassDecimalDigit) {
				return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected the second fraction part after the decimal point")
			}
			fractionResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 0)
			if err != nil {
				return CivilTime{}, false, err
			}
			if fractionResult.Value < 0 {
				return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected a fraction part after the decimal point")
			}
			if fractionResult.DigitCount > 9 {
				return CivilTime{}, false, td.syntaxError("the fraction part in a time must not exceed nine digits")
			}
			fraction = fractionResult.Value
			for i := 0; i < 9-fractionResult.DigitCount; i++ {
				fraction *= 10
			}
		}
	}

	hasOffset := false
	isUTC := false
	offsetSign := SignPositive
	offsetHour := int64(-1)
	var offsetMinute int64
	switch {
	case td.Character().Is(ClassLetterZ):
		if err := td.Next(); err != nil {
			return CivilTime{}, false, err
		}
		hasOffset = true
		isUTC = true
		offsetHour = 0
	case td.Character().Is(ClassPlusOrMinus):
		offsetSign = SignPositive
		if td.Character().IsChar('-') {
			offsetSign = SignNegative
		}
		if err := td.Next(); err != nil {
			return CivilTime{}, false, err
		}
		if !td.Character().Is(ClassDecimalDigit) {
			return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected an offset hour")
		}
		offHourResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
		if err != nil {
			return CivilTime{}, false, err
		}
		if offHourResult.Value < 0 {
			return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected a two digit offset hour")
		}
		if offHourResult.Value > 23 {
			return CivilTime{}, false, td.syntaxError("the offset hour must be in the range 00-23")
		}
		offsetHour = offHourResult.Value
		hasOffset = true
		if td.Character().IsChar(':') {
			if err := td.Next(); err != nil {
				return CivilTime{}, false, err
			}
			if !td.Character().Is(ClassDecimalDigit) {
				return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected an offset minute")
			}
			offMinResult, err := parseNumber(td, BaseDecimal, SignPositive, SeparatorsNo, 2)
			if err != nil {
				return CivilTime{}, false, err
			}
			if offMinResult.Value < 0 {
				return CivilTime{}, false, td.syntaxOrUnexpectedEndError("expected a two digit offset minute")
			}
			if offMinResult.Value > 59 {
				return CivilTime{}, false, td.syntaxError("the offset minute must be in the range 00-59")
			}
			offsetMinute = offMinResult.Value
		}
	}

	offsetMinutes := 0
	if hasOffset {
		offsetMinutes = int(offsetHour)*60 + int(offsetMinute)
		if offsetSign == SignNegative {
			offsetMinutes = -offsetMinutes
		}
	}
	return CivilTime{
		Hour:          int(hourResult.Value),
		Minute:        int(minuteResult.Value),
		Second:        int(second),
		Nanosecond:    int(fraction),
		HasOffset:     hasOffset,
		IsUTC:         isUTC,
		OffsetMinutes: offsetMinutes,
	}, true, nil
}

// scanDateOrDateTime matches a date, optionally followed by a space or 'T'
// and a time, producing either a Date or a DateTime token.
func scanDateOrDateTime(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	if !td.Character().Is(ClassDecimalDigit) {
		return LexerToken{}, false, nil
	}
	outer := td.BeginTransaction()
	defer outer.RollbackIfOpen()

	date, ok, err := scanDate(td)
	if err != nil {
		return LexerToken{}, false, err
	}
	if !ok {
		return LexerToken{}, false, nil
	}

	inner := td.BeginTransaction()
	if td.Character().IsChar(' ') || td.Character().Is(ClassLetterT) {
		hasLetterSeparator := td.Character().Is(ClassLetterT)
		if err := td.Next(); err != nil {
			inner.RollbackIfOpen()
			return LexerToken{}, false, err
		}
		if td.Character().Is(ClassDecimalDigit) {
			if civilTime, ok, err := scanTimeValue(td); err != nil {
				inner.RollbackIfOpen()
				return LexerToken{}, false, err
			} else if ok {
				inner.Commit()
				outer.Commit()
				return td.CreateToken(DateTime, Content{DateTime: CivilDateTime{Date: date, Time: civilTime}}), true, nil
			}
		} else if hasLetterSeparator {
			inner.RollbackIfOpen()
			return LexerToken{}, false, td.syntaxOrUnexpectedEndError("expected a time value after a time separator")
		}
	}
	inner.Rollback()
	outer.Commit()
	return td.CreateToken(Date, Content{Date: date}), true, nil
}

// scanTime matches a bare time value with no date, e.g. "14:30:00".
func scanTime(td *TokenDecoder) (tok LexerToken, ok bool, err error) {
	if !td.Character().Is(ClassTimeStart) {
		return LexerToken{}, false, nil
	}
	tx := td.BeginTransaction()
	defer tx.RollbackIfOpen()

	civilTime, ok, err := scanTimeValue(td)
	if err != nil {
		return LexerToken{}, false, err
	}
	if !ok {
		return LexerToken{}, false, nil
	}
	tx.Commit()
	return td.CreateToken(Time, Content{Time: civilTime}), true, nil
}
