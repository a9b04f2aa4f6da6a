// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package calc

import "strings"

const (
	initialDisplay = "0"
	decimalPoint   = "."
)

// State is a read-only copy of the evaluator registers.
type State struct {
	Display            string
	PendingOperand     float64
	PendingOperator    Operator
	HasPending         bool
	AwaitingFreshEntry bool
}

// Calculation describes one committed binary operation.
type Calculation struct {
	Left     float64
	Operator Operator
	Right    float64
	Result   float64
}

func (c Calculation) String() string {
	return Format(c.Left) + " " + c.Operator.String() + " " + Format(c.Right) + " = " + Format(c.Result)
}

// Observer is notified after every binary operation the evaluator applies,
// both the chained ones triggered by an operator and the ones triggered by
// Commit.
type Observer func(calc Calculation, committed bool)

type Evaluator struct {
	display            string
	pendingOperand     float64
	pendingOperator    Operator
	hasPending         bool
	awaitingFreshEntry bool

	observer Observer
}

type NewOpt = func(e *Evaluator)

func WithObserver(observer Observer) NewOpt {
	return func(e *Evaluator) {
		e.observer = observer
	}
}

// New returns an evaluator in its initial (cleared) state.
func New(opts ...NewOpt) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	e.Clear()
	return e
}

// Display returns the text the presentation layer should show.
func (e *Evaluator) Display() string {
	return e.display
}

func (e *Evaluator) Snapshot() State {
	return State{
		Display:            e.display,
		PendingOperand:     e.pendingOperand,
		PendingOperator:    e.pendingOperator,
		HasPending:         e.hasPending,
		AwaitingFreshEntry: e.awaitingFreshEntry,
	}
}

// InputDigit enters a digit or the decimal point. Any other token, and a
// second decimal point within one entry, is ignored.
func (e *Evaluator) InputDigit(token string) {
	if !isDigitToken(token) {
		return
	}

	if e.awaitingFreshEntry {
		e.display = normalizeEntry(token)
		e.awaitingFreshEntry = false
		return
	}

	if token == decimalPoint {
		if strings.Contains(e.display, decimalPoint) {
			return
		}
		e.display += decimalPoint
		return
	}

	if e.display == initialDisplay {
		e.display = token
		return
	}
	e.display += token
}

// InputOperator captures the display as the left-hand operand, or, when an
// operator is already pending, applies it first and shows the intermediate
// result.
func (e *Evaluator) InputOperator(op Operator) {
	if !op.Valid() {
		return
	}

	v := Parse(e.display)
	if !e.hasPending {
		e.pendingOperand = v
		e.hasPending = true
	} else {
		result := e.apply(v, false)
		e.display = Format(result)
		e.pendingOperand = result
	}

	e.pendingOperator = op
	e.awaitingFreshEntry = true
}

// Commit is the "=" key. Without a pending operator it does nothing.
func (e *Evaluator) Commit() {
	if !e.hasPending {
		return
	}

	result := e.apply(Parse(e.display), true)
	e.display = Format(result)
	e.pendingOperand = 0
	e.pendingOperator = 0
	e.hasPending = false
	e.awaitingFreshEntry = true
}

// ToggleSign negates the displayed value. Pending state is untouched.
func (e *Evaluator) ToggleSign() {
	e.display = Format(Parse(e.display) * -1)
}

// Percent divides the displayed value by 100. Pending state is untouched.
func (e *Evaluator) Percent() {
	e.display = Format(Parse(e.display) / 100)
}

func (e *Evaluator) Clear() {
	e.display = initialDisplay
	e.pendingOperand = 0
	e.pendingOperator = 0
	e.hasPending = false
	e.awaitingFreshEntry = false
}

func (e *Evaluator) apply(right float64, committed bool) float64 {
	result := e.pendingOperator.Apply(e.pendingOperand, right)
	if e.observer != nil {
		e.observer(Calculation{
			Left:     e.pendingOperand,
			Operator: e.pendingOperator,
			Right:    right,
			Result:   result,
		}, committed)
	}
	return result
}

func isDigitToken(token string) bool {
	if token == decimalPoint {
		return true
	}
	return len(token) == 1 && token[0] >= '0' && token[0] <= '9'
}

func normalizeEntry(token string) string {
	if token == decimalPoint {
		return initialDisplay + decimalPoint
	}
	return token
}
