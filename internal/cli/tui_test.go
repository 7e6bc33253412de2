package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/registry"
)

func newTestModel(t *testing.T) BoardModel {
	t.Helper()

	b := board.New(grid.Config{Columns: 4, Rows: 4}.Normalize())
	widgets := []board.Widget{
		{ID: "clock", Title: "Clock", Size: grid.SizeMedium, Enabled: true},
		{ID: "sys", Title: "System", Size: grid.SizeSmall, Enabled: true},
	}
	for _, w := range widgets {
		if err := b.Add(w); err != nil {
			t.Fatalf("Add(%s): %v", w.ID, err)
		}
	}
	return NewBoardModel(b, "test", registry.Builtin())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m BoardModel, msgs ...tea.Msg) BoardModel {
	t.Helper()
	var model tea.Model = m
	for _, msg := range msgs {
		model, _ = model.Update(msg)
	}
	bm, ok := model.(BoardModel)
	if !ok {
		t.Fatalf("Update returned %T, want BoardModel", model)
	}
	return bm
}

func TestBoardModelMove(t *testing.T) {
	m := newTestModel(t)

	// Clock starts at (0,0); the rows below it are free.
	m = update(t, m, key("down"))

	w, err := m.Board.Widget("clock")
	if err != nil {
		t.Fatalf("Widget(clock): %v", err)
	}
	if w.Position != (grid.Position{Row: 1, Column: 0}) {
		t.Errorf("clock at %+v, want (1,0)", w.Position)
	}
	if m.statusErr {
		t.Errorf("successful move should not set error status: %q", m.status)
	}
}

func TestBoardModelMoveRejected(t *testing.T) {
	m := newTestModel(t)

	// Clock occupies (0,0)-(1,1); moving left leaves the grid.
	m = update(t, m, key("left"))

	w, err := m.Board.Widget("clock")
	if err != nil {
		t.Fatalf("Widget(clock): %v", err)
	}
	if w.Position != (grid.Position{Row: 0, Column: 0}) {
		t.Errorf("rejected move should leave clock at (0,0), got %+v", w.Position)
	}
	if !m.statusErr {
		t.Error("rejected move should set an error status")
	}
	if m.status == "" {
		t.Error("rejected move should explain why")
	}
}

func TestBoardModelMoveCollisionRejected(t *testing.T) {
	m := newTestModel(t)

	// System sits at (0,2). Select it and push it into the clock.
	m = update(t, m, key("tab"), key("left"))

	w, err := m.Board.Widget("sys")
	if err != nil {
		t.Fatalf("Widget(sys): %v", err)
	}
	if w.Position != (grid.Position{Row: 0, Column: 2}) {
		t.Errorf("colliding move should leave sys at (0,2), got %+v", w.Position)
	}
	if !m.statusErr {
		t.Error("colliding move should set an error status")
	}
}

func TestBoardModelToggle(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("e"))
	w, _ := m.Board.Widget("clock")
	if w.Enabled {
		t.Error("toggle should disable the selected widget")
	}

	m = update(t, m, key("e"))
	w, _ = m.Board.Widget("clock")
	if !w.Enabled {
		t.Error("second toggle should re-enable the widget")
	}
	if w.Position != (grid.Position{Row: 0, Column: 0}) {
		t.Errorf("re-enabled widget should restore (0,0), got %+v", w.Position)
	}
}

func TestBoardModelAdd(t *testing.T) {
	m := newTestModel(t)
	before := m.Board.Len()

	m = update(t, m, key("a"))

	if m.Board.Len() != before+1 {
		t.Errorf("board has %d widgets after add, want %d", m.Board.Len(), before+1)
	}
}

func TestBoardModelRemove(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, key("d"))

	if m.Board.Len() != 1 {
		t.Errorf("board has %d widgets after delete, want 1", m.Board.Len())
	}
	if _, err := m.Board.Widget("clock"); err == nil {
		t.Error("selected widget should have been removed")
	}
}

func TestBoardModelRecompute(t *testing.T) {
	m := newTestModel(t)

	// Scatter system away from the packed position, then repack.
	m = update(t, m, key("tab"), key("down"), key("down"))
	m = update(t, m, key("r"))

	w, _ := m.Board.Widget("sys")
	if w.Position != (grid.Position{Row: 0, Column: 2}) {
		t.Errorf("recompute should repack sys to (0,2), got %+v", w.Position)
	}
}

func TestBoardModelQuit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestBoardModelView(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	if !strings.Contains(out, "Gridboard") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(out, "Clock") {
		t.Error("view legend should list widgets")
	}
}

func TestPadCell(t *testing.T) {
	if got := padCell("AB"); len(got) != cellWidth {
		t.Errorf("padCell width = %d, want %d", len(got), cellWidth)
	}
	if got := padCell("toolongvalue"); len(got) != cellWidth {
		t.Errorf("padCell should truncate, got %d chars", len(got))
	}
}
