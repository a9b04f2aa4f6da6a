// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cards

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/core/flashcards"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/models/components/popup"
	"github.com/studygenie/studygenie/ui/tui/models/helpers/form"
	forminput "github.com/studygenie/studygenie/ui/tui/models/helpers/form/input"
	"github.com/studygenie/studygenie/ui/tui/util"
)

type cardInput struct {
	Front      string `mapstructure:"front"`
	Back       string `mapstructure:"back"`
	Category   string `mapstructure:"category"`
	Difficulty string `mapstructure:"difficulty"`
}

func newCardForm(deck *flashcards.Deck) *form.Form[cardInput] {
	return form.New(
		form.WithTitle[cardInput](i18n.T("cards.form.title")),
		form.WithInput[cardInput]("front", forminput.NewText(i18n.T("cards.form.front"), i18n.T("cards.form.front_placeholder"))),
		form.WithInput[cardInput]("back", forminput.NewText(i18n.T("cards.form.back"), i18n.T("cards.form.back_placeholder"))),
		form.WithInput[cardInput]("category", forminput.NewText(i18n.T("cards.form.category"), "")),
		form.WithInput[cardInput]("difficulty", forminput.NewChoice(
			i18n.T("cards.form.difficulty"),
			string(flashcards.Medium),
			string(flashcards.Easy), string(flashcards.Medium), string(flashcards.Hard),
		)),
		form.WithRow[cardInput](
			[]string{"submit", "cancel"},
			forminput.NewButton(i18n.T("cards.form.submit"), false),
			forminput.NewCancelButton(i18n.T("cards.form.cancel")),
		),
		form.WithOnSubmit(func(input cardInput, err error) tea.Cmd {
			if err != nil {
				return util.ErrorStatusCmd(err)
			}
			return addCard(deck, input)
		}),
		form.WithOnCancel[cardInput](popup.Close),
	)
}

func addCard(deck *flashcards.Deck, input cardInput) tea.Cmd {
	difficulty, err := flashcards.ParseDifficulty(input.Difficulty)
	if err != nil {
		return util.ErrorStatusCmd(err)
	}
	card, err := deck.Add(input.Front, input.Back, input.Category, difficulty)
	if err != nil {
		// keep the popup open so the input can be completed
		return util.ErrorStatusCmd(err)
	}
	return tea.Batch(
		popup.Close(),
		util.StatusCmd(i18n.T("cards.added", card.Front)),
	)
}
