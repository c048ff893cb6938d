package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	day       time.Time
	blocks    []engine.TimeBlock
	stats     engine.DailyStatistics
	character engine.Character

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	day       time.Time
	blocks    []engine.TimeBlock
	stats     engine.DailyStatistics
	character engine.Character
}

type actionMsg struct {
	log string
	err error
}

type eventMsg struct {
	ev engine.Event
}

func newBoardModel(ctx context.Context, svc *engine.Service, day time.Time) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		day:     engine.StartOfDay(day, svc.Location()),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	day := m.day
	return func() tea.Msg {
		sched, _ := m.svc.Scheduler().Schedule(day)
		return loadedMsg{
			day:       day,
			blocks:    sched.SortedBlocks(),
			stats:     engine.ComputeStatistics(sched),
			character: m.svc.Character(),
		}
	}
}

func (m boardModel) toggleCmd(b engine.TimeBlock) tea.Cmd {
	day := m.day
	return func() tea.Msg {
		err := m.svc.Scheduler().ToggleCompletion(m.ctx, day, b.ID)
		state := "done"
		if b.Completed {
			state = "open"
		}
		return actionMsg{log: fmt.Sprintf("%s marked %s.", b.Title, state), err: err}
	}
}

func (m boardModel) removeCmd(b engine.TimeBlock) tea.Cmd {
	day := m.day
	return func() tea.Msg {
		err := m.svc.Scheduler().RemoveTimeBlock(m.ctx, day, b.ID)
		return actionMsg{log: fmt.Sprintf("Removed %s.", b.Title), err: err}
	}
}

func (m boardModel) refreshScoresCmd() tea.Cmd {
	return func() tea.Msg {
		c, err := m.svc.RefreshScores(m.ctx)
		return actionMsg{log: fmt.Sprintf("Scores refreshed: overall %.0f.", c.TotalScore()), err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		if !msg.day.Equal(m.day) {
			return m, nil
		}
		m.loading = false
		m.blocks = msg.blocks
		m.stats = msg.stats
		m.character = msg.character
		if m.selected >= len(m.blocks) {
			m.selected = len(m.blocks) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil
	case actionMsg:
		if msg.err != nil {
			m.lastLog = "Save failed: " + msg.err.Error()
		} else {
			m.lastLog = msg.log
		}
		return m, m.loadCmd()
	case eventMsg:
		switch msg.ev.Kind {
		case engine.EventLevelUp:
			m.lastLog = fmt.Sprintf("%s Level %d!", ui.BadgeLevelUp, msg.ev.Level)
		case engine.EventExperienceAwarded:
			m.lastLog = fmt.Sprintf("+%d XP", msg.ev.XP)
		}
		return m, m.loadCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.blocks)-1 {
				m.selected++
			}
			return m, nil
		case "left", "h":
			return m.moveDay(-1)
		case "right", "l":
			return m.moveDay(1)
		case "t":
			m.day = m.svc.Today()
			m.selected = 0
			m.loading = true
			return m, m.loadCmd()
		case "c", " ":
			b, ok := m.current()
			if !ok {
				m.lastLog = "No block selected."
				return m, nil
			}
			return m, m.toggleCmd(b)
		case "d":
			b, ok := m.current()
			if !ok {
				m.lastLog = "No block selected."
				return m, nil
			}
			return m, m.removeCmd(b)
		case "s":
			return m, m.refreshScoresCmd()
		}
	}
	return m, nil
}

func (m boardModel) moveDay(delta int) (tea.Model, tea.Cmd) {
	m.day = m.day.AddDate(0, 0, delta)
	m.selected = 0
	m.loading = true
	return m, m.loadCmd()
}

func (m boardModel) current() (engine.TimeBlock, bool) {
	if m.selected < 0 || m.selected >= len(m.blocks) {
		return engine.TimeBlock{}, false
	}
	return m.blocks[m.selected], true
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	c := m.character
	if c.Level == 0 {
		return "LifeOS | loading…"
	}
	bar := ui.Bar(float64(c.Experience), float64(c.ExperienceForNextLevel()), 30)
	return fmt.Sprintf("LifeOS | %s | Level %d | XP %d/%d %s",
		m.day.Format("Mon 02 Jan 2006"), c.Level, c.Experience, c.ExperienceForNextLevel(), bar)
}

func (m boardModel) renderSidebar() string {
	c := m.character
	lines := []string{"Dimensions"}
	if c.Level > 0 {
		for _, d := range c.Dimensions.All() {
			lines = append(lines, fmt.Sprintf("- %-9s %3.0f %s", d.Name, d.Score, ui.Bar(d.Score, 100, 10)))
		}
		lines = append(lines, fmt.Sprintf("  Overall %.0f", c.TotalScore()))
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- ←/→ or h/l: day")
	lines = append(lines, "- t: today")
	lines = append(lines, "- c/space: toggle")
	lines = append(lines, "- d: delete")
	lines = append(lines, "- s: rescore")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	st := m.stats
	out := []string{
		"Blocks",
		fmt.Sprintf("%d/%d done | %.1fh planned | %.1fh done | %s",
			st.CompletedBlocks, st.TotalBlocks, st.TotalHours(), st.CompletedHours(), ui.Percent(st.CompletionRate)),
		"",
	}
	if len(m.blocks) == 0 {
		out = append(out, "(no blocks planned)")
		return strings.Join(out, "\n")
	}
	for i, b := range m.blocks {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		check := "[ ]"
		if b.Completed {
			check = "[x]"
		}
		out = append(out, fmt.Sprintf("%s%s %s %s %s (%s)", cursor, check, b.TimeRangeString(), b.Category.Icon(), b.Title, b.DurationString()))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
