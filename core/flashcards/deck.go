// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package flashcards holds an in-memory flashcard deck with a study cursor.
package flashcards

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var (
	ErrIncompleteCard = errors.New("flashcards: front and back are required")
	ErrCardNotFound   = errors.New("flashcards: card not found")
)

// ParseDifficulty accepts easy, medium or hard in any case. Empty input is
// medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case "":
		return Medium, nil
	case Easy, Medium, Hard:
		return d, nil
	}
	return "", fmt.Errorf("flashcards: unknown difficulty %q", s)
}

type Card struct {
	ID         string
	Front      string
	Back       string
	Category   string
	Difficulty Difficulty
}

type Deck struct {
	cards   []Card
	current int
	flipped bool
	now     func() time.Time
}

type NewOpt = func(d *Deck)

// WithClock replaces time.Now as the source of new card ids.
func WithClock(now func() time.Time) NewOpt {
	return func(d *Deck) {
		d.now = now
	}
}

func NewDeck(cards []Card, opts ...NewOpt) *Deck {
	d := &Deck{
		cards: append([]Card(nil), cards...),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Deck) Len() int      { return len(d.cards) }
func (d *Deck) Index() int    { return d.current }
func (d *Deck) Flipped() bool { return d.flipped }
func (d *Deck) Cards() []Card { return slices.Clone(d.cards) }

// Current returns the card under the cursor, or false for an empty deck.
func (d *Deck) Current() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[d.current], true
}

func (d *Deck) Next() {
	if len(d.cards) == 0 {
		return
	}
	d.current = (d.current + 1) % len(d.cards)
	d.flipped = false
}

func (d *Deck) Prev() {
	if len(d.cards) == 0 {
		return
	}
	d.current = (d.current - 1 + len(d.cards)) % len(d.cards)
	d.flipped = false
}

func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

func (d *Deck) Reset() {
	d.current = 0
	d.flipped = false
}

// Jump moves the cursor to card i, used when picking a card from the list.
func (d *Deck) Jump(i int) {
	if i < 0 || i >= len(d.cards) {
		return
	}
	d.current = i
	d.flipped = false
}

// Add appends a card. Front and back must not be blank.
func (d *Deck) Add(front, back, category string, difficulty Difficulty) (Card, error) {
	front, back = strings.TrimSpace(front), strings.TrimSpace(back)
	if front == "" || back == "" {
		return Card{}, ErrIncompleteCard
	}
	if difficulty == "" {
		difficulty = Medium
	}
	card := Card{
		ID:         strconv.FormatInt(d.now().UnixMilli(), 10),
		Front:      front,
		Back:       back,
		Category:   strings.TrimSpace(category),
		Difficulty: difficulty,
	}
	d.cards = append(d.cards, card)
	return card, nil
}

// Delete removes the card with the given id. When the cursor sat on the last
// card it goes back to the first one.
func (d *Deck) Delete(id string) error {
	i := slices.IndexFunc(d.cards, func(c Card) bool { return c.ID == id })
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	last := len(d.cards) - 1
	d.cards = slices.Delete(d.cards, i, i+1)
	if d.current >= last {
		d.current = 0
	}
	d.flipped = false
	return nil
}
