package cli

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/fengshui/pkg/appeal"
	"github.com/matzehuels/fengshui/pkg/furniture"
	"github.com/matzehuels/fengshui/pkg/interaction"
	"github.com/matzehuels/fengshui/pkg/layout"
)

// Terminal cells are mapped to layout units at a fixed scale, roughly the
// pixel size of a monospace glyph.
const (
	cellWidth  = 8.0
	cellHeight = 16.0

	panelWidth  = 22 // meter panel, including its border
	headerLines = 2  // title and help
	footerLines = 1  // status line
	meterHeight = 16 // rows of the vertical bar
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1).
			Width(panelWidth - 2)
	canvasStyle = lipgloss.NewStyle().Background(lipgloss.Color("254"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("16"))
	activeStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// =============================================================================
// PlayModel - Interactive furniture arrangement
// =============================================================================

// PlayModel is the bubbletea model behind `fengshui play`.
type PlayModel struct {
	drag   *interaction.Session
	scorer *appeal.Scorer
	rng    *rand.Rand
	count  int

	Width  int // terminal columns
	Height int // terminal rows
	Status string
}

// NewPlayModel creates a model driving l. rng and count are used when the
// user asks for a fresh arrangement.
func NewPlayModel(l *layout.Layout, scorer *appeal.Scorer, rng *rand.Rand, count int) PlayModel {
	return PlayModel{
		drag:   interaction.New(l),
		scorer: scorer,
		rng:    rng,
		count:  count,
		Width:  int(l.Bounds().Width/cellWidth) + panelWidth,
		Height: int(l.Bounds().Height/cellHeight) + headerLines + footerLines,
	}
}

// Layout returns the layout being arranged.
func (m PlayModel) Layout() *layout.Layout { return m.drag.Layout() }

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			if !m.drag.Dragging() {
				m.regenerate()
			}
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
	}
	return m, nil
}

func (m *PlayModel) handleMouse(msg tea.MouseMsg) {
	p, inCanvas := m.toCanvas(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inCanvas {
			return
		}
		if id, ok := m.Layout().ItemAt(p); ok && m.drag.Press(id, p) {
			m.Status = "moving " + id
		}
	case tea.MouseActionMotion:
		m.drag.Move(p)
	case tea.MouseActionRelease:
		id := m.drag.ActiveID()
		if m.drag.Release() {
			m.Status = fmt.Sprintf("placed %s, score %.0f", id, m.Layout().Score())
		}
	}
}

func (m *PlayModel) regenerate() {
	cols, rows := m.canvasSize()
	bounds := furniture.Bounds{Width: float64(cols) * cellWidth, Height: float64(rows) * cellHeight}
	m.drag = interaction.New(layout.Generate(m.count, bounds, m.rng, m.scorer))
	m.Status = fmt.Sprintf("new arrangement, score %.0f", m.Layout().Score())
}

// canvasSize returns the canvas extent in cells.
func (m PlayModel) canvasSize() (cols, rows int) {
	return max(1, m.Width-panelWidth), max(1, m.Height-headerLines-footerLines)
}

// toCanvas maps a terminal cell to the layout point at its center. The
// second result is false for cells outside the canvas area; motion outside
// the canvas still moves the dragged item.
func (m PlayModel) toCanvas(x, y int) (furniture.Point, bool) {
	cols, rows := m.canvasSize()
	row := y - headerLines
	p := furniture.Point{
		X: (float64(x) + 0.5) * cellWidth,
		Y: (float64(row) + 0.5) * cellHeight,
	}
	return p, x >= 0 && x < cols && row >= 0 && row < rows
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Feng Shui"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("drag tiles with the mouse  r reshuffle  q quit"))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.viewCanvas(), m.viewMeter()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(m.Status))

	return b.String()
}

// viewCanvas paints every cell whose center falls inside an item. Later
// items are painted over earlier ones, matching hit testing.
func (m PlayModel) viewCanvas() string {
	cols, rows := m.canvasSize()
	items := m.Layout().Items()

	owner := make([][]int, rows)
	for r := range owner {
		owner[r] = make([]int, cols)
		for c := range owner[r] {
			owner[r][c] = -1
		}
	}
	for i, it := range items {
		c0 := max(0, int(it.X/cellWidth))
		c1 := min(cols-1, int((it.X+it.Width)/cellWidth))
		r0 := max(0, int(it.Y/cellHeight))
		r1 := min(rows-1, int((it.Y+it.Height)/cellHeight))
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				center := furniture.Point{X: (float64(c) + 0.5) * cellWidth, Y: (float64(r) + 0.5) * cellHeight}
				if it.Contains(center) {
					owner[r][c] = i
				}
			}
		}
	}

	labelRow := make([]int, len(items))
	colors := make([]lipgloss.Color, len(items))
	for i, it := range items {
		labelRow[i] = int((it.Y + it.Height/2) / cellHeight)
		colors[i] = tileColor(it.Color)
	}
	active := m.drag.ActiveID()

	lines := make([]string, rows)
	for r := range rows {
		var line strings.Builder
		labeled := make(map[int]bool)
		for c := 0; c < cols; {
			i := owner[r][c]
			start := c
			for c < cols && owner[r][c] == i {
				c++
			}
			run := []rune(strings.Repeat(" ", c-start))
			if i < 0 {
				line.WriteString(canvasStyle.Render(string(run)))
				continue
			}
			if r == labelRow[i] && !labeled[i] {
				labeled[i] = true
				copy(run[min(1, len(run)-1):], []rune(string(items[i].Shape)))
			}
			style := labelStyle.Background(colors[i])
			if items[i].ID == active {
				style = style.Inherit(activeStyle)
			}
			line.WriteString(style.Render(string(run)))
		}
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}

// tileColor converts an item color to a terminal color. Unparseable colors
// are drawn gray.
func tileColor(s string) lipgloss.Color {
	c, err := furniture.ParseColor(s)
	if err != nil {
		return colorGray
	}
	return lipgloss.Color(c.Hex())
}

func (m PlayModel) viewMeter() string {
	score := m.Layout().Score()
	filled := meterCells(score, meterHeight)

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Feng Shui Meter"))
	b.WriteString("\n\n")
	for row := range meterHeight {
		bar := strings.Repeat(iconBlock, 6)
		if meterHeight-row <= filled {
			b.WriteString("      " + styleMeterFill.Render(bar))
		} else {
			b.WriteString("      " + styleMeterTrack.Render(bar))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%8.0f%%", score)))
	return panelStyle.Render(b.String())
}
