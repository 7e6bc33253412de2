package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridboard/gridboard/pkg/board"
	"github.com/gridboard/gridboard/pkg/errors"
	"github.com/gridboard/gridboard/pkg/grid"
	"github.com/gridboard/gridboard/pkg/registry"
)

// Board canvas styles
var (
	boardSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	boardEmptyStyle    = lipgloss.NewStyle().Foreground(colorDim)
	boardStatusOK      = lipgloss.NewStyle().Foreground(colorGreen)
	boardStatusErr     = lipgloss.NewStyle().Foreground(colorRed)
)

// widgetPalette cycles widget cell colors by sort key.
var widgetPalette = []lipgloss.Color{
	colorCyan, colorGreen, colorYellow, colorBlue, colorRed, colorGray,
}

// cellWidth is the rendered width of one grid cell in characters.
const cellWidth = 6

// =============================================================================
// BoardModel - Interactive dashboard editing
// =============================================================================

// BoardModel is the bubbletea model for the interactive dashboard editor.
type BoardModel struct {
	Board    *board.Board
	Name     string
	Registry *registry.Registry

	cursor    int    // index into Placements
	kindIdx   int    // catalog entry the next add uses
	status    string // last operation feedback
	statusErr bool
	height    int
}

// NewBoardModel creates a board editor model over b.
func NewBoardModel(b *board.Board, name string, reg *registry.Registry) BoardModel {
	return BoardModel{
		Board:    b,
		Name:     name,
		Registry: reg,
		height:   24,
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			if n := m.Board.Len(); n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
			m.status = ""
		case "shift+tab":
			if n := m.Board.Len(); n > 0 {
				m.cursor = (m.cursor + n - 1) % n
			}
			m.status = ""
		case "up", "k":
			m = m.moveSelected(-1, 0)
		case "down", "j":
			m = m.moveSelected(1, 0)
		case "left", "h":
			m = m.moveSelected(0, -1)
		case "right", "l":
			m = m.moveSelected(0, 1)
		case "e":
			m = m.toggleSelected()
		case "s":
			m = m.resizeSelected()
		case "d":
			m = m.removeSelected()
		case "a":
			m = m.addKind()
		case "n":
			kinds := m.Registry.Kinds()
			if len(kinds) > 0 {
				m.kindIdx = (m.kindIdx + 1) % len(kinds)
				m.status = fmt.Sprintf("next add: %s", kinds[m.kindIdx].Name)
				m.statusErr = false
			}
		case "r":
			if err := m.Board.Recompute(); err != nil {
				m.status = errors.UserMessage(err)
				m.statusErr = true
			} else {
				m.status = "layout recomputed"
				m.statusErr = false
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
	}
	return m, nil
}

// selected returns the widget under the cursor, in registration order.
func (m BoardModel) selected() (board.Widget, bool) {
	ws := m.Board.Widgets()
	if len(ws) == 0 {
		return board.Widget{}, false
	}
	if m.cursor >= len(ws) {
		m.cursor = len(ws) - 1
	}
	return ws[m.cursor], true
}

// moveSelected shifts the selected widget by one cell. A rejected move
// leaves the widget where it was and surfaces the rejection reason.
func (m BoardModel) moveSelected(dr, dc int) BoardModel {
	w, ok := m.selected()
	if !ok {
		return m
	}
	if !w.Enabled || !w.Placed {
		m.status = fmt.Sprintf("%s is not on the grid", w.Title)
		m.statusErr = true
		return m
	}

	target := grid.Position{Row: w.Position.Row + dr, Column: w.Position.Column + dc}
	if err := m.Board.Move(w.ID, target); err != nil {
		m.status = errors.UserMessage(err)
		m.statusErr = true
		return m
	}
	m.status = fmt.Sprintf("%s → (%d,%d)", w.Title, target.Row, target.Column)
	m.statusErr = false
	return m
}

// toggleSelected flips the selected widget's enabled state.
func (m BoardModel) toggleSelected() BoardModel {
	w, ok := m.selected()
	if !ok {
		return m
	}
	if err := m.Board.SetEnabled(w.ID, !w.Enabled); err != nil {
		m.status = errors.UserMessage(err)
		m.statusErr = true
		return m
	}
	if w.Enabled {
		m.status = fmt.Sprintf("%s disabled", w.Title)
	} else {
		m.status = fmt.Sprintf("%s enabled", w.Title)
	}
	m.statusErr = false
	return m
}

// resizeSelected cycles the selected widget through the size catalog.
func (m BoardModel) resizeSelected() BoardModel {
	w, ok := m.selected()
	if !ok {
		return m
	}

	classes := grid.SizeClasses()
	next := classes[0]
	for i, cl := range classes {
		if cl == w.Size {
			next = classes[(i+1)%len(classes)]
			break
		}
	}

	if err := m.Board.Resize(w.ID, next); err != nil {
		m.status = errors.UserMessage(err)
		m.statusErr = true
		return m
	}
	m.status = fmt.Sprintf("%s resized to %s", w.Title, next)
	m.statusErr = false
	return m
}

// removeSelected deletes the selected widget.
func (m BoardModel) removeSelected() BoardModel {
	w, ok := m.selected()
	if !ok {
		return m
	}
	if err := m.Board.Remove(w.ID); err != nil {
		m.status = errors.UserMessage(err)
		m.statusErr = true
		return m
	}
	if m.cursor > 0 {
		m.cursor--
	}
	m.status = fmt.Sprintf("%s removed", w.Title)
	m.statusErr = false
	return m
}

// addKind instantiates the current catalog entry onto the board.
func (m BoardModel) addKind() BoardModel {
	kinds := m.Registry.Kinds()
	if len(kinds) == 0 {
		return m
	}
	k := kinds[m.kindIdx%len(kinds)]

	w, err := m.Registry.Instantiate(k.Name)
	if err != nil {
		m.status = errors.UserMessage(err)
		m.statusErr = true
		return m
	}
	if err := m.Board.Add(w); err != nil {
		m.status = errors.UserMessage(err)
		m.statusErr = true
		return m
	}
	m.status = fmt.Sprintf("added %s", k.Title)
	m.statusErr = false
	return m
}

// =============================================================================
// Rendering
// =============================================================================

func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Gridboard · " + m.Name))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑↓←→ move  tab select  a add  n next kind  s size  e toggle  d delete  r repack  q quit"))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n")

	if m.status != "" {
		if m.statusErr {
			b.WriteString(boardStatusErr.Render(iconError + " " + m.status))
		} else {
			b.WriteString(boardStatusOK.Render(iconSuccess + " " + m.status))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderGrid draws the occupancy as rows of colored cell blocks.
func (m BoardModel) renderGrid() string {
	cfg := m.Board.Config()
	occ := m.Board.Occupancy()

	rows := occ.MaxRow() + 2
	if cfg.Bounded() {
		rows = cfg.Rows
	}
	if rows < 3 {
		rows = 3
	}

	sel, hasSel := m.selected()
	labels := m.cellLabels()

	var b strings.Builder
	for r := 0; r < rows; r++ {
		for col := 0; col < cfg.Columns; col++ {
			id, occupied := occ[grid.Position{Row: r, Column: col}]
			if !occupied {
				b.WriteString(boardEmptyStyle.Render(padCell("·")))
				continue
			}

			w, err := m.Board.Widget(id)
			if err != nil {
				b.WriteString(boardEmptyStyle.Render(padCell("?")))
				continue
			}

			style := lipgloss.NewStyle().Foreground(widgetPalette[w.SortKey%len(widgetPalette)])
			if hasSel && sel.ID == id {
				style = boardSelectedStyle
			}

			label := labels[id]
			if w.Position.Row != r || w.Position.Column != col {
				// Continuation cell of a multi-cell widget.
				label = strings.Repeat("─", cellWidth-2)
			}
			b.WriteString(style.Render(padCell(label)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderLegend lists widgets with their state below the canvas.
func (m BoardModel) renderLegend() string {
	sel, hasSel := m.selected()
	labels := m.cellLabels()

	var parts []string
	for _, w := range m.Board.Widgets() {
		entry := fmt.Sprintf("%s %s", labels[w.ID], w.Title)
		switch {
		case !w.Enabled:
			entry = styleDisabled.Render(entry + " (off)")
		case !w.Placed:
			entry = StyleWarning.Render(entry + " (no room)")
		default:
			entry = StyleValue.Render(entry)
		}
		if hasSel && sel.ID == w.ID {
			entry = boardSelectedStyle.Render("▸") + entry
		} else {
			entry = " " + entry
		}
		parts = append(parts, entry)
	}
	if len(parts) == 0 {
		return StyleDim.Render("  empty board · press a to add a widget")
	}
	return strings.Join(parts, StyleDim.Render("  ·"))
}

// cellLabels assigns each widget a short label derived from its title.
func (m BoardModel) cellLabels() map[string]string {
	labels := make(map[string]string)
	for _, w := range m.Board.Widgets() {
		label := strings.ToUpper(w.Title)
		if label == "" {
			label = strings.ToUpper(w.ID)
		}
		if runes := []rune(label); len(runes) > 2 {
			label = string(runes[:2])
		}
		labels[w.ID] = label
	}
	return labels
}

// padCell centers s within a fixed-width cell. Width is counted in runes
// so box-drawing characters line up.
func padCell(s string) string {
	runes := []rune(s)
	if len(runes) >= cellWidth {
		return string(runes[:cellWidth])
	}
	left := (cellWidth - len(runes)) / 2
	right := cellWidth - len(runes) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
