// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/studygenie/studygenie/core/calc"
	"github.com/studygenie/studygenie/internal/logging"
	"golang.org/x/term"
)

var errNoKeys = errors.New("no keys given: pass them as arguments or pipe them on stdin")

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func newCalcCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "calc [keys...]",
		Short: "Press calculator keys and print the display",
		Long: `Feeds keypad labels through the pocket calculator and prints what
its display shows afterwards. Numbers may be written in one piece ("12.5").
Operators accept the keypad symbols (÷ × − +) and their ASCII forms
(/ * - +); "=" computes, "±" or "n" toggles the sign, "%" divides by 100
and "C" clears. Evaluation is sequential: 2 + 3 × 4 = 20.

A number with a leading minus ("-5") is entered and then sign-toggled.
Put such arguments after "--" so they are not read as flags:
"studygenie calc -- -5 + 2 =".

Without arguments the keys are read from stdin, separated by whitespace.`,
		Example: `  studygenie calc 2 + 3 x 4 =
  studygenie calc -- -5 x 3 =
  echo "5 / 0 =" | studygenie calc --trace`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if stdinIsTerminal() {
					return errNoKeys
				}
				tokens, err := readTokens(cmd.InOrStdin())
				if err != nil {
					return err
				}
				args = tokens
			}
			if len(args) == 0 {
				return errNoKeys
			}
			return runCalc(cmd.OutOrStdout(), args, trace)
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print the display after every key")
	return cmd
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read keys from stdin: %w", err)
	}
	return tokens, nil
}

func runCalc(out io.Writer, tokens []string, trace bool) error {
	e := calc.New()
	for _, token := range tokens {
		if !pressToken(e, token) {
			logging.Warnf("ignoring unknown key %q", token)
			continue
		}
		if trace {
			if _, err := fmt.Fprintf(out, "%-6s %s\n", token, e.Display()); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(out, e.Display())
	return err
}

// pressToken presses a single label, or each character of a number written
// in one piece. A leading minus toggles the sign once the digits are in.
func pressToken(e *calc.Evaluator, token string) bool {
	if e.Press(token) {
		return true
	}
	digits := token
	negative := false
	for _, minus := range []string{"-", "−"} {
		if rest, ok := strings.CutPrefix(token, minus); ok {
			digits, negative = rest, true
			break
		}
	}
	if digits == "" || strings.Trim(digits, "0123456789.") != "" {
		return false
	}
	for _, r := range digits {
		e.InputDigit(string(r))
	}
	if negative {
		e.ToggleSign()
	}
	return true
}
