// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/core/catalog"
	"github.com/studygenie/studygenie/core/flashcards"
	"github.com/studygenie/studygenie/core/notes"
	"github.com/studygenie/studygenie/core/quiz"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/internal/logging"
	"github.com/studygenie/studygenie/ui/tui/models/components/header"
	"github.com/studygenie/studygenie/ui/tui/models/components/popup"
	"github.com/studygenie/studygenie/ui/tui/models/components/router"
	"github.com/studygenie/studygenie/ui/tui/models/components/stack"
	"github.com/studygenie/studygenie/ui/tui/models/components/tabbar"
	"github.com/studygenie/studygenie/ui/tui/models/helpers/windowtitle"
	"github.com/studygenie/studygenie/ui/tui/models/views/assistants"
	"github.com/studygenie/studygenie/ui/tui/models/views/calculator"
	"github.com/studygenie/studygenie/ui/tui/models/views/cards"
	"github.com/studygenie/studygenie/ui/tui/models/views/dashboard"
	"github.com/studygenie/studygenie/ui/tui/models/views/footer"
	"github.com/studygenie/studygenie/ui/tui/models/views/home"
	notesview "github.com/studygenie/studygenie/ui/tui/models/views/notes"
	quizview "github.com/studygenie/studygenie/ui/tui/models/views/quiz"
	"github.com/studygenie/studygenie/ui/tui/util"
)

const title string = "StudyGenie"

// Tab ids in display order.
const (
	TabHome       = "home"
	TabDashboard  = "dashboard"
	TabAssistants = "assistants"
	TabCalculator = "calculator"
	TabNotes      = "notes"
	TabQuiz       = "quiz"
	TabCards      = "cards"
)

var tabOrder = []string{TabHome, TabDashboard, TabAssistants, TabCalculator, TabNotes, TabQuiz, TabCards}

// Options tune the screens. Zero values fall back to the defaults of the
// respective screen.
type Options struct {
	Version            string
	HistorySize        int
	SecondsPerQuestion int
	Markdown           bool
	Now                func() time.Time
}

type Model struct {
	stack          *stack.Model
	tabbar         *tabbar.Model
	content        *popup.Injector
	footer         *footer.Model
	routerControll router.Controll
	tabs           map[string]*util.Model
	titleHandler   *windowtitle.TitleHandler
	size           util.Size
}

func New(opts Options) (*Model, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	session, err := quiz.NewSession(catalog.SampleQuestions(), opts.SecondsPerQuestion)
	if err != nil {
		return nil, fmt.Errorf("failed to start quiz: %w", err)
	}
	deck := flashcards.NewDeck(catalog.SampleCards(), flashcards.WithClock(opts.Now))
	book := notes.NewBook(catalog.SampleNotes(opts.Now()), notes.WithClock(opts.Now))

	// every tab is created once so its state survives switching
	tabs := map[string]*util.Model{
		TabHome:       util.ModelPointer(home.New()),
		TabDashboard:  util.ModelPointer(dashboard.New()),
		TabAssistants: util.ModelPointer(assistants.New()),
		TabCalculator: util.ModelPointer(calculator.New(opts.HistorySize)),
		TabNotes:      util.ModelPointer(notesview.New(book, opts.Markdown)),
		TabQuiz:       util.ModelPointer(quizview.New(session)),
		TabCards:      util.ModelPointer(cards.New(deck)),
	}

	items := make([]tabbar.Item, len(tabOrder))
	for i, id := range tabOrder {
		items[i] = tabbar.WithItem(id, fmt.Sprintf("%d %s", i+1, i18n.T("tab."+id)))
	}
	_tabbar := tabbar.New(items...)
	_footer := footer.New(util.MergeKeyMaps(BaseKeyMap, _tabbar.KeyMap))

	routerModel, routerControll := router.New(tabs[tabOrder[0]])
	_content := popup.NewInjector(util.ModelPointer(routerModel))

	version := "unknown version"
	if len(opts.Version) > 0 {
		version = opts.Version
	}

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(2)),
			stack.WithItem(util.ModelPointer(header.New(version)), stack.StaticSize(header.Height())),
			stack.WithItem(util.ModelPointer(_tabbar), stack.StaticSize(1)),
			stack.WithItem(util.ModelPointer(_content), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(_footer), footer.SizeConfig),
		),
		tabbar:         _tabbar,
		content:        _content,
		footer:         _footer,
		routerControll: routerControll,
		tabs:           tabs,
		titleHandler:   windowtitle.NewHandler(title, " | "),
	}, nil
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tabbar.Selected:
		logging.Debugf("switching to tab %s", msg.Id)
		return m, tea.Batch(
			m.routerControll.Reset(m.tabs[msg.Id]),
			windowtitle.Set(i18n.T("tab."+msg.Id)),
		)
	case tea.WindowSizeMsg:
		m.size.Update(msg)
	}

	if cmd, handled := m.titleHandler.Handle(msg); handled {
		return m, cmd
	}

	return m, m.stack.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, BaseKeyMap.Exit) {
		return tea.Quit
	}

	// text fields and popups get every other key
	if m.content.Capturing() {
		return m.content.Update(msg)
	}

	switch {
	case key.Matches(msg, BaseKeyMap.Help):
		m.footer.ToggleExpanded()
		// footer height changed
		return m.stack.Update(m.size.ToMsg())
	case m.tabbar.KeyMap.Matches(msg):
		return m.tabbar.Update(msg)
	}

	return m.content.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)

// ActiveTab returns the id of the tab on screen.
func (m *Model) ActiveTab() string {
	return tabOrder[m.tabbar.Active()]
}
