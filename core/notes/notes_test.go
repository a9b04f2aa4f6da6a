// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package notes

import (
	"errors"
	"testing"
	"time"
)

func sampleBook(opts ...NewOpt) *Book {
	return NewBook([]Note{
		{ID: "1", Title: "Study Plan", Content: "Review calculus chapters 1-3"},
		{ID: "2", Title: "Research Ideas", Content: "AI in education"},
	}, opts...)
}

func TestCreate_PrependsDefaultNote(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	b := sampleBook(
		WithClock(func() time.Time { return fixed }),
		WithColorPicker(func(int) int { return 3 }),
	)
	n := b.Create()
	if n.Title != DefaultTitle || n.Content != "" || n.Color != "orange" || !n.CreatedAt.Equal(fixed) {
		t.Fatalf("unexpected note: %+v", n)
	}
	if all := b.All(); all[0].ID != n.ID || len(all) != 3 {
		t.Fatalf("expected new note first, got %+v", all)
	}
}

func TestUpdateAndGet(t *testing.T) {
	b := sampleBook()
	if err := b.Update("2", "Ideas", "NLP"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	n, err := b.Get("2")
	if err != nil || n.Title != "Ideas" || n.Content != "NLP" {
		t.Fatalf("unexpected note %+v, err %v", n, err)
	}
	if err := b.Update("9", "", ""); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	b := sampleBook()
	if err := b.Delete("1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("expected one note left")
	}
	if err := b.Delete("1"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	b := sampleBook()
	cases := []struct {
		term string
		want []string
	}{
		{"", []string{"1", "2"}},
		{"CALCULUS", []string{"1"}},
		{"research", []string{"2"}},
		{"i", []string{"1", "2"}},
		{"physics", nil},
	}
	for _, tc := range cases {
		got := b.Filter(tc.term)
		if len(got) != len(tc.want) {
			t.Fatalf("Filter(%q): expected %v, got %+v", tc.term, tc.want, got)
		}
		for i := range got {
			if got[i].ID != tc.want[i] {
				t.Fatalf("Filter(%q): expected %v, got %+v", tc.term, tc.want, got)
			}
		}
	}
}
