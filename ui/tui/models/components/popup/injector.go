// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/studygenie/studygenie/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector draws popups centred on top of its child. While a popup is open
// it receives all input and the child is dimmed.
type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.KeyMsg:
		return (*m.activeModel()).Update(msg)
	}

	// non-input messages (ticks, status, results) still reach the child
	if len(m.popups) > 0 {
		return tea.Batch(
			(*m.activeModel()).Update(msg),
			(*m.child).Update(msg),
		)
	}
	return (*m.child).Update(msg)
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if len(m.popups) == 0 {
		return childView
	}

	popupView := lipgloss.
		NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		Margin(0, 1).
		Render((*m.activeModel()).View())

	childView = lipgloss.
		NewStyle().
		Width(m.size.Width).
		Height(m.size.Height).
		Foreground(lipgloss.AdaptiveColor{
			Light: "#DDDADA",
			Dark:  "#3C3C3C",
		}).
		Render(ansi.Strip(childView))

	return overlay(childView, popupView)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

// Open reports whether a popup is shown.
func (m *Injector) Open() bool {
	return len(m.popups) > 0
}

func (m *Injector) Capturing() bool {
	return m.Open() || util.IsCapturing(*m.child)
}

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	return tea.Batch(
		(*p.model).Init(),
		(*p.model).Update(m.popupSize()),
		m.focusActiveModel(),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}

	m.Blur()
	var onCloseCmd tea.Cmd
	if p := m.popups[len(m.popups)-1]; p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	m.popups = m.popups[:len(m.popups)-1]

	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(0, m.size.Width-reservedWidth),
		Height: max(0, m.size.Height-reservedHeight),
	}
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// overlay centres top on bottom, line by line.
func overlay(bottom, top string) string {
	bottomWidth, bottomHeight := lipgloss.Size(bottom)
	top = lipgloss.NewStyle().MaxWidth(bottomWidth).MaxHeight(bottomHeight).Render(top)
	topWidth, topHeight := lipgloss.Size(top)

	offsetLeft := (bottomWidth - topWidth) / 2
	offsetTop := (bottomHeight - topHeight) / 2

	bottomLines := strings.Split(bottom, "\n")
	topLines := strings.Split(top, "\n")

	for i, line := range topLines {
		row := i + offsetTop
		if row < 0 || row >= len(bottomLines) {
			continue
		}
		left := ansi.Truncate(bottomLines[row], offsetLeft, "")
		right := ansi.TruncateLeft(bottomLines[row], offsetLeft+topWidth, "")
		bottomLines[row] = left + line + right
	}

	return strings.Join(bottomLines, "\n")
}
