// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cards

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/flashcards"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/models/components/router"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

var (
	listTitleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	listCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#8655B1"))
)

// list shows every card of the deck.
type list struct {
	deck           *flashcards.Deck
	routerControll router.Controll
	cursor         int
	size           util.Size
}

func newList(deck *flashcards.Deck, routerControll router.Controll) *list {
	return &list{
		deck:           deck,
		routerControll: routerControll,
		cursor:         deck.Index(),
	}
}

func (l list) Init() tea.Cmd {
	return nil
}

func (l *list) Update(msg tea.Msg) tea.Cmd {
	if l.size.Update(msg) {
		return nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	cards := l.deck.Cards()
	switch {
	case key.Matches(kmsg, DefaultListKeyMap.Up):
		l.cursor = max(0, l.cursor-1)
	case key.Matches(kmsg, DefaultListKeyMap.Down):
		l.cursor = max(0, min(len(cards)-1, l.cursor+1))
	case key.Matches(kmsg, DefaultListKeyMap.Study):
		if len(cards) > 0 {
			l.deck.Jump(l.cursor)
		}
		return l.routerControll.Pop(1)
	case key.Matches(kmsg, DefaultListKeyMap.Delete):
		if l.cursor >= len(cards) {
			return nil
		}
		cmd := deleteCard(l.deck, cards[l.cursor])
		l.cursor = max(0, min(l.cursor, l.deck.Len()-1))
		return cmd
	case key.Matches(kmsg, DefaultListKeyMap.Back):
		return l.routerControll.Pop(1)
	}
	return nil
}

func (l list) View() string {
	cards := l.deck.Cards()
	rows := []string{listTitleStyle.Render(i18n.T("cards.list_title", len(cards)))}
	if len(cards) == 0 {
		rows = append(rows, metaStyle.Render(i18n.T("cards.empty")))
	}
	rows = append(rows, slicest.MapI(cards, func(i int, c flashcards.Card) string {
		line := fmt.Sprintf("%-40s %s", c.Front, metaStyle.Render(c.Category))
		if i == l.cursor {
			line = listCursorStyle.Render(line)
		}
		return line + " " + difficultyStyle[c.Difficulty].Render(string(c.Difficulty))
	})...)

	return lipgloss.NewStyle().MaxWidth(l.size.Width).MaxHeight(l.size.Height).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (l *list) Focus() (tea.Cmd, help.KeyMap) {
	return nil, DefaultListKeyMap
}

func (l *list) Blur() {}

// *list implements util.Model
var _ util.Model = (*list)(nil)
