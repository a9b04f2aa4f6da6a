// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRunCalc(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"sequential", []string{"2", "+", "3", "x", "4", "="}, "20"},
		{"keypad symbols", []string{"9", "÷", "3", "−", "1", "="}, "2"},
		{"multi digit", []string{"12.5", "*", "2", "="}, "25"},
		{"reuse operand", []string{"5", "+", "="}, "10"},
		{"sign and percent", []string{"50", "%", "±"}, "-0.5"},
		{"division by zero", []string{"5", "/", "0", "="}, "Infinity"},
		{"clear", []string{"7", "C"}, "0"},
		{"unknown ignored", []string{"4", "sqrt", "+", "1", "="}, "5"},
		{"second point ignored", []string{"1.2.3"}, "1.23"},
		{"negative literal", []string{"-5", "+", "2", "="}, "-3"},
		{"negative operand", []string{"2", "x", "−0.5", "="}, "-1"},
		{"lone minus is subtract", []string{"8", "-", "3", "="}, "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := runCalc(&out, tt.tokens, false); err != nil {
				t.Fatalf("runCalc: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Fatalf("got %q want %q", got, tt.want)
			}
		})
	}
}

func TestRunCalc_Trace(t *testing.T) {
	var out bytes.Buffer
	if err := runCalc(&out, []string{"2", "+", "3", "="}, true); err != nil {
		t.Fatalf("runCalc: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected one line per key plus the result, got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "+") || !strings.HasSuffix(lines[1], "2") {
		t.Fatalf("unexpected trace line %q", lines[1])
	}
	if lines[4] != "5" {
		t.Fatalf("expected final display last, got %q", lines[4])
	}
}

func TestCalcCmd_Stdin(t *testing.T) {
	orig := stdinIsTerminal
	defer func() { stdinIsTerminal = orig }()
	stdinIsTerminal = func() bool { return false }

	path := writeConfig(t, "language: en\n")
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("6 ×\n7 =\n"))
	cmd.SetArgs([]string{"--config", path, "calc"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("calc: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "42" {
		t.Fatalf("got %q want 42", got)
	}
}

func TestCalcCmd_NoKeysOnTerminal(t *testing.T) {
	orig := stdinIsTerminal
	defer func() { stdinIsTerminal = orig }()
	stdinIsTerminal = func() bool { return true }

	path := writeConfig(t, "language: en\n")
	_, err := execute(t, "--config", path, "calc")
	if !errors.Is(err, errNoKeys) {
		t.Fatalf("expected errNoKeys, got %v", err)
	}
}

func TestCalcCmd_NegativeAfterDoubleDash(t *testing.T) {
	path := writeConfig(t, "language: en\n")
	out, err := execute(t, "--config", path, "calc", "--", "-5", "+", "2", "=")
	if err != nil {
		t.Fatalf("calc: %v", err)
	}
	if got := strings.TrimSpace(out); got != "-3" {
		t.Fatalf("got %q want %q", got, "-3")
	}
}
