// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

// Operator is one of the four binary operators on the keypad.
type Operator rune

const (
	Add      Operator = '+'
	Subtract Operator = '−'
	Multiply Operator = '×'
	Divide   Operator = '÷'
)

// ParseOperator maps a keypad label or its ASCII alias to an Operator.
func ParseOperator(label string) (Operator, bool) {
	switch label {
	case "+":
		return Add, true
	case "−", "-":
		return Subtract, true
	case "×", "*", "x":
		return Multiply, true
	case "÷", "/":
		return Divide, true
	}
	return 0, false
}

// Valid reports whether op is one of the four keypad operators.
func (op Operator) Valid() bool {
	switch op {
	case Add, Subtract, Multiply, Divide:
		return true
	}
	return false
}

func (op Operator) String() string {
	if !op.Valid() {
		return ""
	}
	return string(op)
}

// Apply computes a op b. Division by zero is deliberately left to IEEE 754
// so the display shows Infinity or NaN.
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	}
	// unknown operators pass the right-hand side through
	return b
}
