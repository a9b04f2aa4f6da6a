// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

// Keypad labels that are not digits or operators.
const (
	KeyEquals     = "="
	KeyToggleSign = "±"
	KeyPercent    = "%"
	KeyClear      = "C"
)

var keypad = [][]string{
	{KeyClear, KeyToggleSign, KeyPercent, Divide.String()},
	{"7", "8", "9", Multiply.String()},
	{"4", "5", "6", Subtract.String()},
	{"1", "2", "3", Add.String()},
	{"0", decimalPoint, KeyEquals},
}

// Keys returns the keypad layout row by row. The result is a copy.
func Keys() [][]string {
	rows := make([][]string, len(keypad))
	for i, row := range keypad {
		rows[i] = append([]string(nil), row...)
	}
	return rows
}

// Press routes a keypad label to the matching operation. ASCII aliases are
// accepted for the operators and "=" ("enter"), "c" for clear and "n" for
// the sign toggle. It reports whether the label was recognised.
func (e *Evaluator) Press(label string) bool {
	switch label {
	case KeyEquals, "enter":
		e.Commit()
		return true
	case KeyToggleSign, "n":
		e.ToggleSign()
		return true
	case KeyPercent:
		e.Percent()
		return true
	case KeyClear, "c":
		e.Clear()
		return true
	}

	if op, ok := ParseOperator(label); ok {
		e.InputOperator(op)
		return true
	}
	if isDigitToken(label) {
		e.InputDigit(label)
		return true
	}
	return false
}
