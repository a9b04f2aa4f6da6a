// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cards is the flashcard screen: a study view over the deck, a list
// of all cards pushed on top of it and a popup form for new cards.
package cards

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/flashcards"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/internal/logging"
	"github.com/studygenie/studygenie/ui/tui/models/components/popup"
	"github.com/studygenie/studygenie/ui/tui/models/components/router"
	"github.com/studygenie/studygenie/ui/tui/util"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8655B1")).
			Padding(1, 3).
			Width(48).
			Align(lipgloss.Center)
	flippedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#10B981"))
	metaStyle       = lipgloss.NewStyle().Faint(true)
	difficultyStyle = map[flashcards.Difficulty]lipgloss.Style{
		flashcards.Easy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		flashcards.Medium: lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")),
		flashcards.Hard:   lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
	}
)

type Model struct {
	deck           *flashcards.Deck
	routerControll router.Controll
	size           util.Size
}

func New(deck *flashcards.Deck) *Model {
	return &Model{deck: deck}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case router.InitMsg:
		m.routerControll = msg.RouterControll
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultStudyKeyMap.Flip):
		m.deck.Flip()
	case key.Matches(msg, DefaultStudyKeyMap.Prev):
		m.deck.Prev()
	case key.Matches(msg, DefaultStudyKeyMap.Next):
		m.deck.Next()
	case key.Matches(msg, DefaultStudyKeyMap.Reset):
		m.deck.Reset()
	case key.Matches(msg, DefaultStudyKeyMap.Add):
		return popup.Open(util.ModelPointer(newCardForm(m.deck)))
	case key.Matches(msg, DefaultStudyKeyMap.Delete):
		return deleteCurrent(m.deck)
	case key.Matches(msg, DefaultStudyKeyMap.List):
		return m.routerControll.Push(util.ModelPointer(newList(m.deck, m.routerControll)))
	}
	return nil
}

func (m Model) View() string {
	card, ok := m.deck.Current()
	if !ok {
		return lipgloss.Place(
			m.size.Width, m.size.Height,
			lipgloss.Center, lipgloss.Center,
			metaStyle.Render(i18n.T("cards.empty")),
		)
	}

	style, face, side := cardStyle, card.Front, i18n.T("cards.question")
	if m.deck.Flipped() {
		style, face, side = flippedCardStyle, card.Back, i18n.T("cards.answer")
	}

	return lipgloss.Place(
		m.size.Width, m.size.Height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(
			lipgloss.Center,
			metaStyle.Render(fmt.Sprintf("%d / %d", m.deck.Index()+1, m.deck.Len())),
			style.Render(lipgloss.JoinVertical(lipgloss.Center, metaStyle.Render(side), "", face)),
			metaStyle.Render(card.Category)+"  "+difficultyStyle[card.Difficulty].Render(string(card.Difficulty)),
		),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, DefaultStudyKeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func deleteCurrent(deck *flashcards.Deck) tea.Cmd {
	card, ok := deck.Current()
	if !ok {
		return nil
	}
	return deleteCard(deck, card)
}

func deleteCard(deck *flashcards.Deck, card flashcards.Card) tea.Cmd {
	if err := deck.Delete(card.ID); err != nil {
		logging.Errorf("cards: delete %s: %v", card.ID, err)
		return util.ErrorStatusCmd(err)
	}
	return util.StatusCmd(i18n.T("cards.deleted", card.Front))
}
