package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
	"github.com/jhitchenor/hungerford-holdings/internal/engine"
)

type boardModel struct {
	ctx context.Context
	eng *engine.Engine

	width  int
	height int

	state engine.ProgressionState
	done  map[string]bool
	rows  []questRow

	selected int
	lastLog  string
	loading  bool
}

type questRow struct {
	def     catalog.QuestDefinition
	heading string // non-empty when this row starts a new group
}

type refreshedMsg struct {
	state engine.ProgressionState
	done  map[string]bool
}

type committedMsg struct {
	id  string
	res *engine.CommitResult
	err error
}

func newBoardModel(ctx context.Context, eng *engine.Engine) boardModel {
	m := boardModel{
		ctx:     ctx,
		eng:     eng,
		done:    map[string]bool{},
		loading: true,
		lastLog: "Loaded.",
	}

	cat := eng.Catalog()
	prev := ""
	for _, q := range cat.All() {
		row := questRow{def: q}
		if q.Group != prev {
			row.heading = q.Group
			prev = q.Group
		}
		m.rows = append(m.rows, row)
	}
	return m
}

func (m boardModel) Init() tea.Cmd {
	return m.refreshCmd()
}

func (m boardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		done := make(map[string]bool, len(m.rows))
		for _, r := range m.rows {
			done[r.def.ID] = m.eng.IsDone(r.def.ID, now)
		}
		return refreshedMsg{state: m.eng.CurrentState(), done: done}
	}
}

func (m boardModel) commitCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.eng.Commit(m.ctx, id, time.Now())
		return committedMsg{id: id, res: res, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case refreshedMsg:
		m.loading = false
		m.state = msg.state
		m.done = msg.done
		return m, nil
	case committedMsg:
		if msg.err != nil {
			m.lastLog = commitErrorLine(msg.err)
			return m, m.refreshCmd()
		}
		m.lastLog = fmt.Sprintf("Committed %s: +%d XP, +%d credits (level %d → %d)",
			msg.id, msg.res.XPAwarded, msg.res.CreditsAwarded, msg.res.LevelBefore, msg.res.LevelAfter)
		if msg.res.SnapshotStale {
			m.lastLog += " [snapshot stale]"
		}
		return m, m.refreshCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.refreshCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.rows)-1 {
				m.selected++
			}
			return m, nil
		case "c", " ", "enter":
			if m.selected < 0 || m.selected >= len(m.rows) {
				return m, nil
			}
			row := m.rows[m.selected]
			if row.def.Score != nil {
				m.lastLog = fmt.Sprintf("%s takes a score: use `hh score %s <score>`.", row.def.ID, row.def.ID)
				return m, nil
			}
			if m.done[row.def.ID] {
				m.lastLog = "Already done."
				return m, nil
			}
			m.lastLog = fmt.Sprintf("Committing %s…", row.def.ID)
			return m, m.commitCmd(row.def.ID)
		}
	}
	return m, nil
}

func commitErrorLine(err error) string {
	var already engine.AlreadyCompletedError
	if errors.As(err, &already) {
		return "Already done."
	}
	var pe engine.PersistenceError
	if errors.As(err, &pe) {
		return "NOT SAVED: " + pe.Error()
	}
	var unavailable engine.StoreUnavailableError
	if errors.As(err, &unavailable) {
		return "Read-only: store unavailable."
	}
	return "Commit failed: " + err.Error()
}
