// Package tui is the interactive presentation layer: a catalog pane for
// picking items and a checklist pane for working them, with live
// progress at the bottom. It only issues the engine's operations and
// re-reads state after every mutation.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/checklist"
	"github.com/rmks1216/mobicheck/pkg/glyph"
	"github.com/rmks1216/mobicheck/pkg/store"
)

const (
	focusCatalog = iota
	focusChecklist
)

// refreshMsg tells the model the persisted state changed behind us.
type refreshMsg struct{}

// Model is the bubbletea state for the two-pane checklist UI.
type Model struct {
	svc *app.Service
	ctx context.Context

	rows     []row
	expanded map[string]bool

	focus       int
	cursor      int
	listCursor  int
	bar         progress.Model
	watchEvents <-chan store.Event

	width  int
	height int
	status string
}

// New builds a model over the service. The catalog starts fully
// expanded.
func New(ctx context.Context, svc *app.Service) Model {
	expanded := make(map[string]bool)
	expandAll(svc.Forest, expanded)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	m := Model{
		svc:      svc,
		ctx:      ctx,
		expanded: expanded,
		rows:     flatten(svc.Forest, expanded),
		bar:      bar,
	}
	// Subscribe up front; Init just arms the first wait. A failed
	// subscription leaves the UI working without live refresh.
	if events, err := svc.Watch(ctx); err == nil {
		m.watchEvents = events
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.waitWatch()
}

func (m Model) waitWatch() tea.Cmd {
	events := m.watchEvents
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return refreshMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = clamp(msg.Width-30, 10, 60)
		return m, nil

	case refreshMsg:
		// Another process saved; reload the document.
		if st, err := m.svc.Persistence.Load(m.ctx); err == nil {
			m.svc.State = st
			m.clampCursors()
		}
		return m, m.waitWatch()

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.focus = (m.focus + 1) % 2
		return m, nil

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "left", "h":
		if m.focus == focusCatalog {
			if r := m.currentRow(); r != nil && r.Category && m.expanded[r.ID] {
				delete(m.expanded, r.ID)
				m.rows = flatten(m.svc.Forest, m.expanded)
				m.clampCursors()
			}
		}
		return m, nil

	case "right", "l":
		if m.focus == focusCatalog {
			if r := m.currentRow(); r != nil && r.Category && !m.expanded[r.ID] {
				m.expanded[r.ID] = true
				m.rows = flatten(m.svc.Forest, m.expanded)
			}
		}
		return m, nil

	case "enter", " ", "space":
		m.activate()
		return m, nil

	case "x", "delete":
		if m.focus == focusChecklist {
			if it := m.currentItem(); it != nil {
				m.svc.RemoveItem(it.ID)
				m.clampCursors()
				m.status = "removed"
			}
		}
		return m, nil

	case "+", "=":
		if it := m.currentItem(); it != nil && it.Mode == checklist.ModeRepeat {
			m.svc.IncrementCount(it.ID)
		}
		return m, nil

	case "-", "_":
		if it := m.currentItem(); it != nil && it.Mode == checklist.ModeRepeat {
			m.svc.DecrementCount(it.ID)
		}
		return m, nil

	case "m":
		if it := m.currentItem(); it != nil {
			next := checklist.ModeRepeat
			if it.Mode == checklist.ModeRepeat {
				next = checklist.ModeSimple
			}
			m.svc.SetItemMode(it.ID, next)
			m.status = "mode: " + next.String()
		}
		return m, nil

	case ">":
		if it := m.currentItem(); it != nil && it.Mode == checklist.ModeRepeat {
			m.svc.SetTargetCount(it.ID, it.TargetCount+1)
		}
		return m, nil

	case "<":
		if it := m.currentItem(); it != nil && it.Mode == checklist.ModeRepeat {
			m.svc.SetTargetCount(it.ID, it.TargetCount-1)
		}
		return m, nil

	case "u":
		if c := m.svc.State.Active(); c != nil {
			m.svc.UncheckAll(c.ID)
			m.status = "unchecked all"
		}
		return m, nil

	case "n":
		m.svc.NewChecklist("")
		m.listCursor = 0
		m.status = "new checklist"
		return m, nil

	case "]":
		m.cycleActive(1)
		return m, nil

	case "[":
		m.cycleActive(-1)
		return m, nil
	}
	return m, nil
}

// activate is enter/space: in the catalog it adds or toggles the node,
// in the checklist it toggles the selected row.
func (m *Model) activate() {
	switch m.focus {
	case focusCatalog:
		r := m.currentRow()
		if r == nil {
			return
		}
		c := m.svc.State.Active()
		if c == nil {
			c = m.svc.NewChecklist("")
		}
		if c.Has(r.ID) {
			m.svc.Toggle(r.ID)
		} else {
			m.svc.AddSubtree(r.ID)
			m.status = "added " + r.Name
		}
	case focusChecklist:
		if it := m.currentItem(); it != nil {
			m.svc.Toggle(it.ID)
		}
	}
}

func (m *Model) cycleActive(dir int) {
	st := m.svc.State
	if len(st.Checklists) == 0 {
		return
	}
	idx := 0
	for i, c := range st.Checklists {
		if c.ID == st.ActiveID {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(st.Checklists)) % len(st.Checklists)
	m.svc.SetActive(st.Checklists[idx].ID)
	m.listCursor = 0
}

func (m *Model) moveCursor(dir int) {
	if m.focus == focusCatalog {
		m.cursor = clamp(m.cursor+dir, 0, len(m.rows)-1)
		return
	}
	if c := m.svc.State.Active(); c != nil {
		m.listCursor = clamp(m.listCursor+dir, 0, len(c.Items)-1)
	}
}

func (m *Model) clampCursors() {
	m.cursor = clamp(m.cursor, 0, len(m.rows)-1)
	n := 0
	if c := m.svc.State.Active(); c != nil {
		n = len(c.Items)
	}
	m.listCursor = clamp(m.listCursor, 0, n-1)
}

func (m *Model) currentRow() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return &m.rows[m.cursor]
}

// anyDescendantChecked backs the display-only "partially done" mark.
func (m Model) anyDescendantChecked(c *checklist.Checklist, id string) bool {
	for _, d := range m.svc.Index.Descendants[id] {
		if it := c.Item(d); it != nil && it.Checked {
			return true
		}
	}
	return false
}

func (m *Model) currentItem() *checklist.Item {
	c := m.svc.State.Active()
	if c == nil || m.listCursor < 0 || m.listCursor >= len(c.Items) {
		return nil
	}
	return &c.Items[m.listCursor]
}

func (m Model) View() string {
	left := m.viewCatalog()
	right := m.viewChecklist()

	leftPanel := panelStyle(m.focus == focusCatalog).Render(left)
	rightPanel := panelStyle(m.focus == focusChecklist).Render(right)
	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, " ", rightPanel)

	return body + "\n" + m.viewFooter()
}

func (m Model) viewCatalog() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("카탈로그"))
	b.WriteString("\n")

	c := m.svc.State.Active()
	for i, r := range m.rows {
		mark := glyph.Open
		if r.Category {
			mark = glyph.Category
		}
		style := normalStyle
		if c != nil && c.Has(r.ID) {
			it := c.Item(r.ID)
			switch {
			case it.Checked:
				mark = glyph.Done
				style = doneStyle
			case r.Category && m.anyDescendantChecked(c, r.ID):
				mark = glyph.Partial
				style = partialStyle
			default:
				style = trackedStyle
			}
		}
		line := strings.Repeat("  ", r.Depth) + mark.String() + " " + r.Name
		if m.focus == focusCatalog && i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = style.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewChecklist() string {
	var b strings.Builder
	c := m.svc.State.Active()
	if c == nil {
		b.WriteString(titleStyle.Render("체크리스트 없음"))
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("press n to create one"))
		return b.String()
	}
	b.WriteString(titleStyle.Render(c.Name))
	b.WriteString("\n")
	if len(c.Items) == 0 {
		b.WriteString(faintStyle.Render("empty · add items from the catalog"))
		return b.String()
	}

	for i := range c.Items {
		it := &c.Items[i]
		mark := glyph.Open
		style := normalStyle
		if it.Checked {
			mark = glyph.Done
			style = doneStyle
		}
		name := strings.Repeat("  ", m.svc.Index.Depth(it.ID)) + m.svc.Index.Name(it.ID)
		line := mark.String() + " " + name
		if it.Mode == checklist.ModeRepeat {
			line += faintStyle.Render(fmt.Sprintf("  %s %d/%d", glyph.Counter, it.CurrentCount, it.TargetCount))
		}
		if m.focus == focusChecklist && i == m.listCursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = style.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewFooter() string {
	var b strings.Builder
	if c := m.svc.State.Active(); c != nil {
		info := m.svc.ProgressInfo(c.ID)
		b.WriteString(m.bar.ViewAs(float64(info.Progress) / 100))
		b.WriteString(fmt.Sprintf(" %d%% ", info.Progress))
		b.WriteString(faintStyle.Render(info.Description))
		b.WriteString("\n")
	}
	help := "tab pane · space add/check · x remove · m mode · +/- count · </> target · u reset · [/] list · n new · q quit"
	if m.status != "" {
		help = m.status + "  ·  " + help
	}
	b.WriteString(faintStyle.Render(help))
	return b.String()
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Run starts the program.
func Run(ctx context.Context, svc *app.Service) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
