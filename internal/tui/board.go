package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jhitchenor/hungerford-holdings/internal/catalog"
	"github.com/jhitchenor/hungerford-holdings/internal/engine"
	"github.com/jhitchenor/hungerford-holdings/internal/ui"
)

// RunBoard starts the interactive quest board.
func RunBoard(ctx context.Context, eng *engine.Engine) error {
	p := tea.NewProgram(newBoardModel(ctx, eng), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m boardModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(ui.Muted.Render("Loading…"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	st := m.state
	title := ui.Heading(ui.IconLedger, "Boardroom")
	if m.eng.ReadOnly() {
		title += "  " + ui.Bad.Render("[read-only]")
	}
	next := engine.XPRequiredForLevel(st.Level)
	stats := fmt.Sprintf("%s %d  %s %d/%d XP  %s %d RP  %s %d  %s %s",
		ui.Key.Render("Lvl"), st.Level,
		ui.Key.Render("XP"), st.TotalXP, next,
		ui.Key.Render("RP"), st.TotalRP,
		ui.Key.Render(ui.IconCoin), st.Credits,
		ui.Key.Render("Rank"), ui.Gold.Render(st.Rank),
	)
	return title + "\n" + stats
}

func (m boardModel) renderRows() string {
	var b strings.Builder
	for i, row := range m.rows {
		if row.heading != "" {
			b.WriteString(ui.H2.Render(strings.ToUpper(row.heading)))
			b.WriteString("\n")
		}

		line := fmt.Sprintf("%s %s %-32s %s",
			ui.DoneMark(m.done[row.def.ID]),
			ui.UrgentMark(row.def.Urgent),
			row.def.Name,
			rewardLabel(row.def),
		)
		if i == m.selected {
			line = ui.SelectedRow.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m boardModel) renderFooter() string {
	help := ui.Muted.Render("↑/↓ move · space commit · r refresh · q quit")
	return m.lastLog + "\n" + help
}

func rewardLabel(def catalog.QuestDefinition) string {
	if def.Score != nil {
		return ui.Muted.Render(fmt.Sprintf("%s %d+", ui.IconGolf, def.Score.BaseXP))
	}
	label := fmt.Sprintf("+%d XP", def.RewardXP)
	if def.RewardRP > 0 {
		label += fmt.Sprintf(" +%d RP", def.RewardRP)
	}
	return ui.Muted.Render(label)
}
