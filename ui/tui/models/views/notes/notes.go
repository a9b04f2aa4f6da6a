// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package notes is the note taking screen: a searchable list, an editor and
// a markdown preview of the selected note.
package notes

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/notes"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/internal/logging"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

const listWidth = 30

type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeEdit
)

var (
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#8655B1"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	listStyle    = lipgloss.NewStyle().Width(listWidth).PaddingRight(1).BorderRight(true).BorderStyle(lipgloss.NormalBorder())
	previewStyle = lipgloss.NewStyle().PaddingLeft(1)
	noteColors   = map[string]lipgloss.Color{
		"blue":   lipgloss.Color("#3B82F6"),
		"purple": lipgloss.Color("#8B5CF6"),
		"pink":   lipgloss.Color("#EC4899"),
		"orange": lipgloss.Color("#F97316"),
		"green":  lipgloss.Color("#10B981"),
	}
)

type Model struct {
	book     *notes.Book
	markdown bool
	render   renderFunc

	mode    mode
	visible []notes.Note
	cursor  int
	search  textinput.Model

	editID    string
	title     textinput.Model
	content   textarea.Model
	editFocus int

	size util.Size
}

// New creates the screen over book. With markdown disabled notes are
// previewed as plain text.
func New(book *notes.Book, markdown bool) *Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = i18n.T("notes.search_placeholder")

	title := textinput.New()
	title.Placeholder = notes.DefaultTitle

	content := textarea.New()
	content.Placeholder = i18n.T("notes.content_placeholder")
	content.ShowLineNumbers = false

	m := &Model{
		book:     book,
		markdown: markdown,
		render:   plainRenderer,
		search:   search,
		title:    title,
		content:  content,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.resize()
		return nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(kmsg)
	case modeEdit:
		return m.handleEditKey(kmsg)
	default:
		return m.handleBrowseKey(kmsg)
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultBrowseKeyMap.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(msg, DefaultBrowseKeyMap.Down):
		m.cursor = max(0, min(len(m.visible)-1, m.cursor+1))
	case key.Matches(msg, DefaultBrowseKeyMap.Search):
		m.mode = modeSearch
		return tea.Batch(m.search.Focus(), util.AnnounceKeyMapCmd(DefaultSearchKeyMap))
	case key.Matches(msg, DefaultBrowseKeyMap.Clear):
		m.search.Reset()
		m.refresh()
	case key.Matches(msg, DefaultBrowseKeyMap.New):
		note := m.book.Create()
		m.search.Reset()
		m.refresh()
		m.cursor = 0
		return m.startEdit(note)
	case key.Matches(msg, DefaultBrowseKeyMap.Edit):
		if note, ok := m.Selected(); ok {
			return m.startEdit(note)
		}
	case key.Matches(msg, DefaultBrowseKeyMap.Delete):
		note, ok := m.Selected()
		if !ok {
			return nil
		}
		if err := m.book.Delete(note.ID); err != nil {
			logging.Errorf("notes: delete %s: %v", note.ID, err)
			return util.ErrorStatusCmd(err)
		}
		m.refresh()
		return util.StatusCmd(i18n.T("notes.deleted", note.Title))
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultSearchKeyMap.Done):
		return m.leaveMode()
	case key.Matches(msg, DefaultSearchKeyMap.Cancel):
		m.search.Reset()
		m.refresh()
		return m.leaveMode()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return cmd
}

func (m *Model) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultEditKeyMap.Switch):
		return m.switchEditFocus()
	case key.Matches(msg, DefaultEditKeyMap.Save):
		err := m.book.Update(m.editID, m.title.Value(), m.content.Value())
		if err != nil {
			logging.Errorf("notes: save %s: %v", m.editID, err)
			return util.ErrorStatusCmd(err)
		}
		m.refresh()
		return tea.Batch(m.leaveMode(), util.StatusCmd(i18n.T("notes.saved", m.title.Value())))
	case key.Matches(msg, DefaultEditKeyMap.Cancel):
		return m.leaveMode()
	}

	var cmd tea.Cmd
	if m.editFocus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.content, cmd = m.content.Update(msg)
	}
	return cmd
}

// updateInputs forwards non-key messages such as cursor blinks.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds [3]tea.Cmd
	m.search, cmds[0] = m.search.Update(msg)
	m.title, cmds[1] = m.title.Update(msg)
	m.content, cmds[2] = m.content.Update(msg)
	return tea.Batch(cmds[:]...)
}

func (m *Model) startEdit(note notes.Note) tea.Cmd {
	m.mode = modeEdit
	m.editID = note.ID
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	m.editFocus = 1
	return tea.Batch(m.switchEditFocus(), util.AnnounceKeyMapCmd(DefaultEditKeyMap))
}

func (m *Model) switchEditFocus() tea.Cmd {
	m.editFocus = 1 - m.editFocus
	if m.editFocus == 0 {
		m.content.Blur()
		return m.title.Focus()
	}
	m.title.Blur()
	return m.content.Focus()
}

func (m *Model) leaveMode() tea.Cmd {
	m.mode = modeBrowse
	m.editID = ""
	m.search.Blur()
	m.title.Blur()
	m.content.Blur()
	return util.AnnounceKeyMapCmd(DefaultBrowseKeyMap)
}

func (m *Model) refresh() {
	m.visible = m.book.Filter(m.search.Value())
	m.cursor = max(0, min(m.cursor, len(m.visible)-1))
}

func (m *Model) resize() {
	previewWidth := max(10, m.size.Width-listWidth-2)
	m.title.Width = previewWidth - 2
	m.content.SetWidth(previewWidth)
	m.content.SetHeight(max(3, m.size.Height-3))
	m.search.Width = listWidth - 4
	if m.markdown {
		m.render = newRenderer(previewWidth)
	}
}

func (m Model) View() string {
	list := listStyle.Height(max(1, m.size.Height)).Render(m.listView())

	var right string
	if m.mode == modeEdit {
		right = lipgloss.JoinVertical(lipgloss.Left, m.title.View(), "", m.content.View())
	} else {
		right = m.previewView()
	}

	return lipgloss.NewStyle().MaxWidth(m.size.Width).MaxHeight(m.size.Height).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, list, previewStyle.Render(right)),
	)
}

func (m Model) listView() string {
	rows := []string{m.search.View(), ""}
	if len(m.visible) == 0 {
		rows = append(rows, faintStyle.Render(i18n.T("notes.empty")))
	}
	rows = append(rows, slicest.MapI(m.visible, func(i int, n notes.Note) string {
		marker := lipgloss.NewStyle().Foreground(noteColors[n.Color]).Render("●")
		title := n.Title
		if i == m.cursor {
			title = cursorStyle.Render(title)
		}
		return marker + " " + title
	})...)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) previewView() string {
	note, ok := m.Selected()
	if !ok {
		return faintStyle.Render(i18n.T("notes.none_selected"))
	}
	body, err := m.render(note.Content)
	if err != nil {
		logging.Warnf("notes: render %s: %v", note.ID, err)
		body = note.Content
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Foreground(noteColors[note.Color]).Render(note.Title),
		faintStyle.Render(note.CreatedAt.Format("2006-01-02 15:04")),
		body,
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	switch m.mode {
	case modeSearch:
		return m.search.Focus(), DefaultSearchKeyMap
	case modeEdit:
		if m.editFocus == 0 {
			return m.title.Focus(), DefaultEditKeyMap
		}
		return m.content.Focus(), DefaultEditKeyMap
	}
	return nil, DefaultBrowseKeyMap
}

func (m *Model) Blur() {
	m.search.Blur()
	m.title.Blur()
	m.content.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Capturing is true while text is being typed.
func (m *Model) Capturing() bool {
	return m.mode != modeBrowse
}

// Selected returns the note under the cursor.
func (m *Model) Selected() (notes.Note, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return notes.Note{}, false
	}
	return m.visible[m.cursor], true
}
