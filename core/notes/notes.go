// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package notes keeps the in-memory note book behind the Notes screen.
package notes

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

const DefaultTitle = "New Note"

var ErrNoteNotFound = errors.New("notes: note not found")

// Palette lists the accent colours notes are tagged with.
var Palette = []string{"blue", "purple", "pink", "orange", "green"}

type Note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	Color     string
}

type Book struct {
	notes []Note
	now   func() time.Time
	pick  func(n int) int
}

type NewOpt = func(b *Book)

func WithClock(now func() time.Time) NewOpt {
	return func(b *Book) {
		b.now = now
	}
}

// WithColorPicker replaces the palette index chooser used by Create.
func WithColorPicker(pick func(n int) int) NewOpt {
	return func(b *Book) {
		b.pick = pick
	}
}

func NewBook(notes []Note, opts ...NewOpt) *Book {
	b := &Book{
		notes: slices.Clone(notes),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.pick == nil {
		// rotate through the palette
		b.pick = func(n int) int { return len(b.notes) % n }
	}
	return b
}

func (b *Book) Len() int { return len(b.notes) }

func (b *Book) All() []Note { return slices.Clone(b.notes) }

func (b *Book) Get(id string) (Note, error) {
	i := b.index(id)
	if i < 0 {
		return Note{}, fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	return b.notes[i], nil
}

// Create puts an empty note at the top of the book and returns it.
func (b *Book) Create() Note {
	now := b.now()
	note := Note{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Title:     DefaultTitle,
		CreatedAt: now,
		Color:     Palette[b.pick(len(Palette))],
	}
	b.notes = slices.Insert(b.notes, 0, note)
	return note
}

func (b *Book) Update(id, title, content string) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	b.notes[i].Title = title
	b.notes[i].Content = content
	return nil
}

func (b *Book) Delete(id string) error {
	i := b.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, id)
	}
	b.notes = slices.Delete(b.notes, i, i+1)
	return nil
}

// Filter returns the notes whose title or content contains term, ignoring
// case. An empty term matches everything.
func (b *Book) Filter(term string) []Note {
	term = strings.ToLower(term)
	if term == "" {
		return b.All()
	}
	var out []Note
	for _, n := range b.notes {
		if strings.Contains(strings.ToLower(n.Title), term) || strings.Contains(strings.ToLower(n.Content), term) {
			out = append(out, n)
		}
	}
	return out
}

func (b *Book) index(id string) int {
	return slices.IndexFunc(b.notes, func(n Note) bool { return n.ID == id })
}
