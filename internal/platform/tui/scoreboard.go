package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyland/internal/storage"
)

// maxRuns is the number of runs listed on the scoreboard.
const maxRuns = 10

// Scoreboard is the overlay listing this session's runs, best first.
type Scoreboard struct {
	store  *storage.Store
	gameID string
	runs   []storage.Run
	best   int
	err    error
	table  table.Model
	help   help.Model
	keys   KeyMap
}

// NewScoreboard creates a scoreboard for gameID backed by store.
// A nil store yields an always-empty board.
func NewScoreboard(store *storage.Store, gameID string, keys KeyMap) Scoreboard {
	b := Scoreboard{
		store:  store,
		gameID: gameID,
		help:   help.New(),
		keys:   keys,
	}
	b.table = newRunTable()
	return b
}

func newRunTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 7},
		{Title: "Alive", Width: 8},
		{Title: "Ended", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxRuns+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// Refresh reloads runs from the store.
func (b *Scoreboard) Refresh() {
	b.runs, b.best, b.err = nil, 0, nil
	if b.store != nil {
		b.runs, b.err = b.store.TopRuns(b.gameID, maxRuns)
		if b.err == nil {
			b.best, b.err = b.store.Best(b.gameID)
		}
	}

	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
			r.EndedAt.Format("15:04:05"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// Runs returns the runs currently shown.
func (b Scoreboard) Runs() []storage.Run {
	return b.runs
}

// View renders the scoreboard box.
func (b Scoreboard) View() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sb.WriteString(titleStyle.Render(fmt.Sprintf("RUNS THIS SESSION  best %d", b.best)))
	sb.WriteString("\n\n")

	switch {
	case b.err != nil:
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("run log unavailable"))
	case len(b.runs) == 0:
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
		sb.WriteString(emptyStyle.Render("No runs yet. Eat something!"))
	default:
		sb.WriteString(b.table.View())
	}

	sb.WriteString("\n\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sb.WriteString(helpStyle.Render(b.help.View(b.keys)))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return boxStyle.Render(sb.String())
}
