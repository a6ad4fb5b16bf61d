package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ballgame/internal/ballgame"
	"github.com/vovakirdan/tui-ballgame/internal/core"
)

// historyRows is the number of high-score entries shown in menus.
const historyRows = 8

// menuItem is one selectable entry; selecting it presses action.
type menuItem struct {
	label  string
	action core.Action
}

// menuItems returns the entries of the menu shown for snap, or nil while the
// game is running.
func menuItems(snap ballgame.Snapshot) []menuItem {
	switch snap.App {
	case ballgame.StateMainMenu:
		return []menuItem{
			{"Play", core.ActionConfirm},
			{"Quit", core.ActionQuit},
		}
	case ballgame.StateGame:
		if snap.Sim == ballgame.SimPaused {
			return []menuItem{
				{"Resume", core.ActionPause},
				{"Main Menu", core.ActionMenu},
			}
		}
	case ballgame.StateGameOver:
		return []menuItem{
			{"New Game", core.ActionConfirm},
			{"Main Menu", core.ActionMenu},
			{"Quit", core.ActionQuit},
		}
	}
	return nil
}

func itemLabels(items []menuItem) []string {
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.label
	}
	return labels
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 3)

	gameOverTitleStyle = titleStyle.
				Foreground(lipgloss.Color("9")).
				BorderForeground(lipgloss.Color("1"))

	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// menuView renders the MainMenu and GameOver screens.
func menuView(snap ballgame.Snapshot, cursor int, history table.Model, width, height int) string {
	var parts []string

	switch snap.App {
	case ballgame.StateGameOver:
		parts = append(parts, gameOverTitleStyle.Render("G A M E   O V E R"), "")
		if last, ok := snap.LastHighScore(); ok {
			parts = append(parts, subtitleStyle.Render(fmt.Sprintf("%s final score: %d", last.Label, last.Score)), "")
		}
	default:
		parts = append(parts, titleStyle.Render("B A L L   G A M E"), "")
		parts = append(parts, dimStyle.Render("dodge the red balls, grab the stars"), "")
	}

	for i, it := range menuItems(snap) {
		if i == cursor {
			parts = append(parts, selectedStyle.Render("> "+it.label+" <"))
		} else {
			parts = append(parts, itemStyle.Render("  "+it.label+"  "))
		}
	}

	parts = append(parts, "")
	if len(snap.History) > 0 {
		parts = append(parts, dimStyle.Render("High scores"), history.View())
	} else {
		parts = append(parts, dimStyle.Render("No games played yet"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// newHistoryTable creates the high-score table.
func newHistoryTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(historyRows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyTableRows lists the most recent entries first.
func historyTableRows(history []ballgame.HighScore) []table.Row {
	rows := make([]table.Row, 0, historyRows)
	for i := len(history) - 1; i >= 0 && len(rows) < historyRows; i-- {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			history[i].Label,
			strconv.Itoa(history[i].Score),
		})
	}
	return rows
}
