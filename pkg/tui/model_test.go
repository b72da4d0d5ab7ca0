package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rmks1216/mobicheck/pkg/app"
	"github.com/rmks1216/mobicheck/pkg/catalog"
	"github.com/rmks1216/mobicheck/pkg/checklist"
)

func testService() *app.Service {
	forest := []catalog.Node{
		{
			ID:   "A",
			Name: "Alpha",
			Children: []catalog.Node{
				{ID: "B", Name: "Beta"},
				{ID: "C", Name: "Gamma"},
			},
		},
		{ID: "D", Name: "Delta"},
	}
	return &app.Service{
		State:  checklist.NewState(),
		Index:  catalog.BuildIndex(forest),
		Forest: forest,
	}
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestFlatten(t *testing.T) {
	svc := testService()
	expanded := map[string]bool{}
	rows := flatten(svc.Forest, expanded)
	if len(rows) != 2 {
		t.Fatalf("collapsed rows = %d, want 2 roots", len(rows))
	}

	expandAll(svc.Forest, expanded)
	rows = flatten(svc.Forest, expanded)
	if len(rows) != 4 {
		t.Fatalf("expanded rows = %d, want 4", len(rows))
	}
	if rows[1].ID != "B" || rows[1].Depth != 1 {
		t.Errorf("rows[1] = %+v, want B at depth 1", rows[1])
	}
	if !rows[0].Category || rows[3].Category {
		t.Error("A is a category, D is not")
	}
}

func TestCursorNavigation(t *testing.T) {
	m := New(context.Background(), testService())

	m = press(t, m, "k") // cannot go above the first row
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.cursor)
	}
	m = press(t, m, "j", "j")
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
	for i := 0; i < 10; i++ {
		m = press(t, m, "j")
	}
	if m.cursor != len(m.rows)-1 {
		t.Errorf("cursor = %d, want clamped at last row", m.cursor)
	}
}

func TestCollapseHidesSubtree(t *testing.T) {
	m := New(context.Background(), testService())
	if len(m.rows) != 4 {
		t.Fatalf("rows = %d, want 4 expanded", len(m.rows))
	}
	m = press(t, m, "h") // collapse A under the cursor
	if len(m.rows) != 2 {
		t.Errorf("rows = %d, want 2 after collapse", len(m.rows))
	}
	m = press(t, m, "l")
	if len(m.rows) != 4 {
		t.Errorf("rows = %d, want 4 after re-expand", len(m.rows))
	}
}

func TestEnterAddsThenToggles(t *testing.T) {
	svc := testService()
	m := New(context.Background(), svc)

	// No checklist yet: activating creates one and adds the subtree.
	m = press(t, m, "enter")
	c := svc.State.Active()
	if c == nil {
		t.Fatal("enter should create a checklist")
	}
	for _, id := range []string{"A", "B", "C"} {
		if !c.Has(id) {
			t.Errorf("missing %s after subtree add", id)
		}
	}

	// Second activation toggles the tracked category through the tree.
	m = press(t, m, "enter")
	if !c.Item("A").Checked || !c.Item("B").Checked {
		t.Error("second enter should cascade-check the subtree")
	}
	_ = m
}

func TestChecklistPaneToggleAndRemove(t *testing.T) {
	svc := testService()
	m := New(context.Background(), svc)
	m = press(t, m, "enter") // add A,B,C

	m = press(t, m, "tab") // focus checklist pane
	if m.focus != focusChecklist {
		t.Fatalf("focus = %d, want checklist", m.focus)
	}
	m = press(t, m, "j", "enter") // toggle B (row 1)
	c := svc.State.Active()
	if !c.Item("B").Checked {
		t.Error("B should toggle from the checklist pane")
	}
	if c.Item("A").Checked {
		t.Error("A needs C checked too before rolling up")
	}

	m = press(t, m, "x") // remove B
	if c.Has("B") {
		t.Error("x should remove the selected item")
	}
}

func TestRepeatKeysOnlyTouchRepeatItems(t *testing.T) {
	svc := testService()
	m := New(context.Background(), svc)
	m = press(t, m, "enter", "tab", "j") // track A,B,C; select B

	m = press(t, m, "+")
	c := svc.State.Active()
	if c.Item("B").CurrentCount != 0 {
		t.Error("+ must not touch a simple item")
	}

	m = press(t, m, "m") // switch B to repeat
	if c.Item("B").Mode != checklist.ModeRepeat {
		t.Fatalf("mode = %q, want repeat", c.Item("B").Mode)
	}
	m = press(t, m, ">", "+", "+")
	it := c.Item("B")
	if it.TargetCount != 2 || it.CurrentCount != 2 || !it.Checked {
		t.Errorf("B = %+v, want 2/2 checked", it)
	}
	m = press(t, m, "-")
	if it := c.Item("B"); it.CurrentCount != 1 || it.Checked {
		t.Errorf("B = %+v, want 1/2 unchecked", it)
	}
}

func TestNewAndCycleChecklists(t *testing.T) {
	svc := testService()
	m := New(context.Background(), svc)

	m = press(t, m, "n", "n")
	if len(svc.State.Checklists) != 2 {
		t.Fatalf("checklists = %d, want 2", len(svc.State.Checklists))
	}
	second := svc.State.ActiveID

	m = press(t, m, "]")
	if svc.State.ActiveID == second {
		t.Error("] should cycle to the other checklist")
	}
	m = press(t, m, "[")
	if svc.State.ActiveID != second {
		t.Error("[ should cycle back")
	}
}

func TestViewRendersState(t *testing.T) {
	svc := testService()
	m := New(context.Background(), svc)
	m = press(t, m, "enter") // track A,B,C
	m, _ = toModel(m.Update(tea.WindowSizeMsg{Width: 100, Height: 40}))

	out := m.View()
	if !strings.Contains(out, "Alpha") || !strings.Contains(out, "Beta") {
		t.Error("view should render catalog names")
	}
	if !strings.Contains(out, checklist.DefaultName) {
		t.Error("view should render the active checklist title")
	}
	if !strings.Contains(out, "0%") {
		t.Errorf("view should render progress, got:\n%s", out)
	}
}

func toModel(m tea.Model, _ tea.Cmd) (Model, tea.Cmd) {
	return m.(Model), nil
}
