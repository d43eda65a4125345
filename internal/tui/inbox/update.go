package inbox

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

const (
	footerHeight  = 2
	statusTimeout = 5 * time.Second
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(1, msg.Height-footerHeight)
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if _, loading := m.current.(state.Loading); !loading && !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncViewport()
		return m, cmd

	case StateMsg:
		return m.applyState(msg.State)

	case StreamClosedMsg:
		m.closed = true
		return m, nil

	case ImageLoadedMsg:
		if msg.Err != nil {
			m.log.Warn("image load failed", "url", msg.URL, "error", msg.Err.Error())
			// Forget the request so the next state or refresh retries it.
			delete(m.requested, msg.URL)
			return m, nil
		}
		m.images.store(msg.URL, msg.Image)
		m.syncViewport()
		return m, nil

	case RefreshDoneMsg:
		m.refreshing = false
		var cmd tea.Cmd
		if msg.Err != nil {
			cmd = m.setStatus(fmt.Sprintf("Refresh failed: %s", msg.Err.Error()))
		}
		m.syncViewport()
		return m, cmd

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.status = ""
			m.syncViewport()
		}
		return m, nil
	}

	return m, nil
}

// applyState installs a new UI state, fires Display for every visible card
// and starts fetching images that are not cached yet.
func (m Model) applyState(st state.UIState) (tea.Model, tea.Cmd) {
	if st == nil {
		st = state.Loading{}
	}
	m.current = st
	cmds := []tea.Cmd{waitForStateCmd(m.states)}

	switch s := st.(type) {
	case state.Loading:
		cmds = append(cmds, m.spinner.Tick)
	case state.Success:
		cmds = append(cmds, m.displayVisible())
		cmds = append(cmds, m.imageCmds(s)...)
	}

	m.clampCursor()
	m.syncViewport()
	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k", "left", "h":
		m.moveCursor(-1)

	case "down", "j", "right", "l":
		m.moveCursor(1)

	case "tab":
		m.cycleButton(1)

	case "shift+tab":
		m.cycleButton(-1)

	case "enter", " ":
		if m.button >= 0 {
			cmd = m.clickButton(m.button)
		} else {
			cmd = m.clickCard()
		}

	case "1", "2", "3":
		cmd = m.clickButton(int(msg.String()[0] - '1'))

	case "d", "x":
		if card, ok := m.Selected(); ok {
			cmds := []tea.Cmd{m.dispatch(events.Dismiss{}, card)}
			m.clampCursor()
			cmds = append(cmds, m.displayVisible())
			if s, ok := m.current.(state.Success); ok {
				cmds = append(cmds, m.imageCmds(s)...)
			}
			cmd = tea.Batch(cmds...)
		}

	case "r":
		if m.refreshing || m.refresher == nil {
			return m, nil
		}
		m.refreshing = true
		m.status = ""
		m.syncViewport()
		return m, tea.Batch(m.spinner.Tick, refreshCmd(m.ctx, m.refresher))

	case "esc":
		m.status = ""

	case "pgup", "pgdown", "ctrl+u", "ctrl+d", "home", "end":
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		return m, nil
	}

	m.syncViewport()
	return m, cmd
}

func (m *Model) moveCursor(delta int) {
	visible := m.Visible()
	if len(visible) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(visible)) % len(visible)
	m.button = -1
}

// cycleButton walks the focus from the card body through its buttons.
func (m *Model) cycleButton(delta int) {
	card, ok := m.Selected()
	if !ok {
		return
	}
	n := min(len(content.ButtonsOf(card.Template)), maxButtons)
	if n == 0 {
		m.button = -1
		return
	}
	// positions: -1 (body), 0..n-1
	pos := (m.button + 1 + delta + n + 1) % (n + 1)
	m.button = pos - 1
}

func (m *Model) clickCard() tea.Cmd {
	card, ok := m.Selected()
	if !ok || !m.renderer.CardEnabled(card) {
		return nil
	}
	return m.dispatch(events.Interact{Action: events.Click{ActionURL: content.ActionURLOf(card.Template)}}, card)
}

func (m *Model) clickButton(i int) tea.Cmd {
	card, ok := m.Selected()
	if !ok || !m.renderer.CardEnabled(card) || !m.renderer.ButtonEnabled(card, i) {
		return nil
	}
	b := content.ButtonsOf(card.Template)[i]
	return m.dispatch(events.Interact{Action: events.Click{ID: b.ID, ActionURL: b.ActionURL}}, card)
}

// dispatch runs the observer inline so card state only changes on the
// update goroutine. A failure is shown on the status line.
func (m *Model) dispatch(ev events.Event, card *content.Card) tea.Cmd {
	if m.observer == nil {
		return nil
	}
	if err := m.observer.OnEvent(m.ctx, ev, card); err != nil {
		m.log.Error(err, "card event failed", "card_id", card.ID)
		return m.setStatus(err.Error())
	}
	return nil
}

// displayVisible reports Display for every card on screen. The handler
// drops repeats.
func (m *Model) displayVisible() tea.Cmd {
	var cmds []tea.Cmd
	for _, card := range m.Visible() {
		cmds = append(cmds, m.dispatch(events.Display{}, card))
	}
	return tea.Batch(cmds...)
}

// setStatus shows s and schedules it to clear after statusTimeout.
func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	return clearStatusCmd(m.statusSeq, statusTimeout)
}

func (m *Model) clampCursor() {
	visible := m.Visible()
	if m.cursor >= len(visible) {
		m.cursor = len(visible) - 1
		m.button = -1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) imageCmds(s state.Success) []tea.Cmd {
	if m.loader == nil {
		return nil
	}
	dark := m.renderer.Dark()

	var urls []string
	for _, card := range s.Visible() {
		if img := content.ImageOf(card.Template); img != nil {
			urls = append(urls, img.Source(dark))
		}
	}
	if img := s.Template.EmptyImage; img != nil {
		urls = append(urls, img.Source(dark))
	}

	var cmds []tea.Cmd
	for _, url := range urls {
		if url == "" || m.requested[url] {
			continue
		}
		m.requested[url] = true
		cmds = append(cmds, loadImageCmd(m.ctx, m.loader, url))
	}
	return cmds
}
