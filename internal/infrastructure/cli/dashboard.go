package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/felixgeelhaar/clearwater/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive TUI for action priorities and quote scoring",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}
		m := newDashboardModel(cmd.Context(), services, time.Now())
		if m.err != nil {
			return MapError(m.err)
		}
		if os.Getenv("CLEARWATER_SKIP_DASHBOARD_RUN") == "true" {
			return nil
		}
		p := tea.NewProgram(m)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("dashboard run failed: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dashboardCmd)
}

// Styles
var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#1F6FB2")).
	PaddingLeft(1).
	PaddingRight(1)

var tabActive = lipgloss.NewStyle().Bold(true).Underline(true)
var tabIdle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
var statusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
var statusWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
var statusErr = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

type dashboardTab int

const (
	tabActions dashboardTab = iota
	tabProcurement
)

type dashboardModel struct {
	ctx         context.Context
	actions     *application.ActionService
	procurement *application.ProcurementService
	now         time.Time

	tab dashboardTab

	filter       action.Filter
	board        *action.Board
	counts       application.CountsView
	actionsTable table.Model

	comparisons []procurement.Comparison
	current     int
	criteria    procurement.Criteria
	selected    procurement.Criterion
	result      *procurement.Result
	quoteTable  table.Model

	status string
	err    error
}

func newDashboardModel(ctx context.Context, services *wiring.AppServices, now time.Time) dashboardModel {
	m := dashboardModel{
		ctx:          ctx,
		actions:      services.Actions,
		procurement:  services.Procurement,
		now:          now,
		filter:       action.FilterAll,
		selected:     procurement.CriterionPrice,
		actionsTable: newTable(actionColumns()),
		quoteTable:   newTable(quoteColumns()),
	}

	if err := m.reloadBoard(); err != nil {
		m.err = err
		return m
	}

	comparisons, err := m.procurement.ListComparisons(ctx)
	if err != nil {
		m.err = err
		return m
	}
	criteria, err := m.procurement.GetCriteria(ctx)
	if err != nil {
		m.err = err
		return m
	}
	m.comparisons = comparisons
	m.criteria = criteria
	m.rescore()
	return m
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229"))
	t.SetStyles(s)
	return t
}

func actionColumns() []table.Column {
	return []table.Column{
		{Title: "Pri", Width: 4},
		{Title: "Urgency", Width: 9},
		{Title: "Type", Width: 20},
		{Title: "Project", Width: 18},
		{Title: "Action", Width: 40},
		{Title: "Due", Width: 14},
	}
}

func quoteColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 2},
		{Title: "Quote", Width: 16},
		{Title: "Supplier", Width: 18},
		{Title: "Price", Width: 10},
		{Title: "Lead time", Width: 12},
		{Title: "AI rating", Width: 18},
		{Title: "Prc", Width: 6},
		{Title: "Qual", Width: 6},
		{Title: "Deliv", Width: 6},
		{Title: "Supp", Width: 6},
		{Title: "Total", Width: 6},
	}
}

func toRows(cells [][]string) []table.Row {
	rows := make([]table.Row, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, table.Row(c))
	}
	return rows
}

// reloadBoard ranks the action items under the current filter.
func (m *dashboardModel) reloadBoard() error {
	board, err := m.actions.Board(m.ctx, application.BoardOptions{Filter: m.filter, Now: m.now})
	if err != nil {
		return err
	}
	counts, err := m.actions.Counts(m.ctx, m.now)
	if err != nil {
		return err
	}
	m.board = board
	m.counts = application.NewCountsView(counts)
	m.refreshActionRows()
	return nil
}

func (m *dashboardModel) refreshActionRows() {
	m.actionsTable.SetRows(toRows(actionRows(m.board.Visible(), m.now)))
}

// rescore scores the current comparison in memory with the unsaved weights.
func (m *dashboardModel) rescore() {
	if len(m.comparisons) == 0 {
		m.result = nil
		m.quoteTable.SetRows(nil)
		return
	}
	result, err := procurement.Compare(m.comparisons[m.current], m.criteria)
	if err != nil {
		m.result = nil
		m.quoteTable.SetRows(nil)
		m.status = statusErr.Render(err.Error())
		return
	}
	m.result = result
	m.quoteTable.SetRows(toRows(resultRows(result)))
}

func (m dashboardModel) Init() tea.Cmd { return nil }

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.tab == tabActions {
				m.tab = tabProcurement
			} else {
				m.tab = tabActions
			}
			return m, nil
		}

		if m.tab == tabActions {
			if m.updateActions(key.String()) {
				return m, nil
			}
			m.actionsTable, cmd = m.actionsTable.Update(msg)
			return m, cmd
		}
		if m.updateProcurement(key.String()) {
			return m, nil
		}
		m.quoteTable, cmd = m.quoteTable.Update(msg)
		return m, cmd
	}

	if m.tab == tabActions {
		m.actionsTable, cmd = m.actionsTable.Update(msg)
	} else {
		m.quoteTable, cmd = m.quoteTable.Update(msg)
	}
	return m, cmd
}

// updateActions handles action tab keys and reports whether the key was consumed.
func (m *dashboardModel) updateActions(key string) bool {
	switch key {
	case "f":
		m.filter = m.filter.Next()
		if err := m.reloadBoard(); err != nil {
			m.status = statusErr.Render(err.Error())
		} else {
			m.status = ""
		}
		return true
	case "a":
		m.board.Toggle()
		m.refreshActionRows()
		return true
	}
	return false
}

func (m *dashboardModel) updateProcurement(key string) bool {
	criteria := procurement.AllCriteria()
	switch key {
	case "1", "2", "3", "4":
		idx, _ := strconv.Atoi(key)
		m.selected = criteria[idx-1]
		return true
	case "+", "=":
		m.step(1)
		return true
	case "-":
		m.step(-1)
		return true
	case "n":
		if len(m.comparisons) > 0 {
			m.current = (m.current + 1) % len(m.comparisons)
			m.rescore()
		}
		return true
	case "w":
		if _, err := m.procurement.UpdateCriteria(m.ctx, m.criteria, currentActor()); err != nil {
			m.status = statusErr.Render(err.Error())
		} else {
			m.status = statusOK.Render("Weights saved.")
		}
		return true
	}
	return false
}

func (m *dashboardModel) step(steps int) {
	next, err := m.criteria.Step(m.selected, steps)
	if err != nil {
		m.status = statusErr.Render(err.Error())
		return
	}
	m.criteria = next
	m.status = ""
	m.rescore()
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error loading dashboard: %v\nPress q to quit.", m.err)
	}

	tabs := []string{tabIdle.Render("Actions"), tabIdle.Render("Procurement")}
	tabs[m.tab] = tabActive.Render([]string{"Actions", "Procurement"}[m.tab])
	header := headerStyle.Render("clearwater") + "  " + strings.Join(tabs, "  ")

	var body string
	if m.tab == tabActions {
		body = m.actionsView()
	} else {
		body = m.procurementView()
	}

	parts := []string{header, body}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return baseStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)) + "\n"
}

func (m dashboardModel) actionsView() string {
	lines := []string{
		filterBar(m.filter, m.counts),
		m.actionsTable.View(),
	}
	if hidden := m.board.HiddenCount(); hidden > 0 {
		lines = append(lines, statusWarn.Render(fmt.Sprintf("%d more hidden", hidden)))
	}
	lines = append(lines, "\n[f] Filter  [a] Show all/less  [tab] Procurement  [q] Quit")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m dashboardModel) procurementView() string {
	if len(m.comparisons) == 0 {
		return "No comparisons in this workspace.\n\n[tab] Actions  [q] Quit"
	}
	if m.result == nil {
		c := m.comparisons[m.current]
		return fmt.Sprintf("%s (%d/%d) could not be scored.\n\n[n] Next  [tab] Actions  [q] Quit",
			c.Title, m.current+1, len(m.comparisons))
	}

	weights := make([]string, 0, 4)
	for i, c := range procurement.AllCriteria() {
		label := fmt.Sprintf("%d:%s %d", i+1, c, m.criteria.Weight(c))
		if c == m.selected {
			label = tabActive.Render(label)
		}
		weights = append(weights, label)
	}

	lines := []string{
		fmt.Sprintf("%s (%d/%d)", m.result.Title, m.current+1, len(m.comparisons)),
		strings.Join(weights, "  ") + fmt.Sprintf("  sum %d", m.criteria.Sum()),
		m.quoteTable.View(),
		"Best score: " + m.result.BestScoreID,
	}
	if primary := m.result.Recommendation.Primary; primary != "" && primary != m.result.BestScoreID {
		lines = append(lines, statusWarn.Render("Recommended: "+primary+" (differs from best score)"))
	}
	for _, s := range m.result.Ranked {
		for _, w := range s.Warnings {
			lines = append(lines, statusWarn.Render(s.ID+": "+w))
		}
	}
	lines = append(lines, "\n[1-4] Criterion  [+/-] Adjust  [n] Next  [w] Save  [tab] Actions  [q] Quit")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
