// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package catalog

import (
	"testing"
	"time"

	"github.com/studygenie/studygenie/core/quiz"
)

func TestSampleQuestions_AreValid(t *testing.T) {
	qs := SampleQuestions()
	if len(qs) != 3 {
		t.Fatalf("expected 3 sample questions, got %d", len(qs))
	}
	for _, q := range qs {
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			t.Fatalf("question %s has correct index %d outside its options", q.ID, q.Correct)
		}
	}
	if _, err := quiz.NewSession(qs, 0); err != nil {
		t.Fatalf("sample bank rejected: %v", err)
	}
}

func TestFilterAssistants(t *testing.T) {
	if got := FilterAssistants(""); len(got) != 8 {
		t.Fatalf("expected 8 assistants, got %d", len(got))
	}
	for _, a := range FilterAssistants("writing") {
		if a.Category != "writing" {
			t.Fatalf("unexpected assistant in writing filter: %+v", a)
		}
	}
	if got := FilterAssistants("unknown"); len(got) != 0 {
		t.Fatalf("expected no assistants, got %+v", got)
	}
}

func TestSampleNotes_UseGivenTime(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	for _, n := range SampleNotes(now) {
		if !n.CreatedAt.Equal(now) {
			t.Fatalf("note %s not dated at now", n.ID)
		}
	}
}
