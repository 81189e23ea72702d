package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/felixgeelhaar/clearwater/pkg/application"
	"github.com/felixgeelhaar/clearwater/pkg/domain/action"
	"github.com/felixgeelhaar/clearwater/pkg/domain/procurement"
)

var printer = message.NewPrinter(language.English)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatPrice(p float64) string {
	return printer.Sprintf("$%.0f", p)
}

func formatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', 1, 64)
}

func formatDue(item action.Item, now time.Time) string {
	if !item.HasDueDate() {
		return "-"
	}
	due := item.DueDate.In(now.Location())
	switch {
	case item.IsOverdue(now):
		return "overdue " + due.Format("Jan 2")
	case item.IsDueToday(now):
		return "today " + due.Format("15:04")
	default:
		return due.Format("Jan 2")
	}
}

func formatTitle(item action.Item) string {
	title := item.Title
	if item.Progress != nil {
		title = fmt.Sprintf("%s (%d%%)", title, *item.Progress)
	}
	if item.ClientFacing {
		title += " *"
	}
	return title
}

func filterBar(active action.Filter, counts application.CountsView) string {
	values := map[action.Filter]int{
		action.FilterAll:     counts.All,
		action.FilterUrgent:  counts.Urgent,
		action.FilterOverdue: counts.Overdue,
		action.FilterToday:   counts.Today,
	}
	parts := make([]string, 0, len(values))
	for _, f := range action.AllFilters() {
		label := fmt.Sprintf("%s %d", f, values[f])
		if f == active {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func actionRows(items []action.Ranked, now time.Time) [][]string {
	rows := make([][]string, 0, len(items))
	for _, r := range items {
		rows = append(rows, []string{
			strconv.Itoa(r.Priority),
			r.Urgency.DisplayName(),
			r.Kind.DisplayName(),
			r.ProjectName,
			formatTitle(r.Item),
			formatDue(r.Item, now),
		})
	}
	return rows
}

func renderBoard(w io.Writer, view application.BoardView, counts application.CountsView, now time.Time) {
	fmt.Fprintln(w, filterBar(view.Filter, counts))
	if len(view.Items) == 0 {
		fmt.Fprintln(w, "No action items match this filter.")
		return
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("PRI", "URGENCY", "TYPE", "PROJECT", "ACTION", "DUE").
		Rows(actionRows(view.Items, now)...)
	fmt.Fprintln(w, t.String())

	if view.Hidden > 0 {
		fmt.Fprintf(w, "%d more hidden (use --all to show everything)\n", view.Hidden)
	}
}

func criteriaLine(c procurement.Criteria) string {
	line := fmt.Sprintf("price %d  quality %d  delivery %d  support %d  (sum %d)",
		c.Price, c.Quality, c.Delivery, c.Support, c.Sum())
	if c.CheckSum() != nil {
		line += " - not normalized"
	}
	return line
}

func resultRows(result *procurement.Result) [][]string {
	rows := make([][]string, 0, len(result.Ranked))
	for i, s := range result.Ranked {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.ID,
			s.Supplier,
			formatPrice(s.Price),
			s.LeadTime,
			s.Rating.DisplayName(),
			formatScore(s.Scores.Price),
			formatScore(s.Scores.Quality),
			formatScore(s.Scores.Delivery),
			formatScore(s.Scores.Support),
			formatScore(s.Scores.Total),
		})
	}
	return rows
}

func renderResult(w io.Writer, result *procurement.Result) {
	fmt.Fprintf(w, "%s (%s)\n", result.Title, result.ComparisonID)
	fmt.Fprintf(w, "Weights: %s\n", criteriaLine(result.Criteria))
	if len(result.Ranked) == 0 {
		fmt.Fprintln(w, "No quotes in this comparison.")
		return
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "QUOTE", "SUPPLIER", "PRICE", "LEAD TIME", "AI RATING", "PRC", "QUAL", "DELIV", "SUPP", "TOTAL").
		Rows(resultRows(result)...)
	fmt.Fprintln(w, t.String())

	fmt.Fprintf(w, "Best score: %s\n", result.BestScoreID)
	if primary := result.Recommendation.Primary; primary != "" {
		note := ""
		if primary != result.BestScoreID {
			note = " (differs from best score)"
		}
		fmt.Fprintf(w, "Recommended: %s%s\n", primary, note)
		if result.Recommendation.Reasoning != "" {
			fmt.Fprintf(w, "  %s\n", result.Recommendation.Reasoning)
		}
	}
	for _, s := range result.Ranked {
		for _, warning := range s.Warnings {
			fmt.Fprintf(w, "Warning: %s: %s\n", s.ID, warning)
		}
	}
}

func renderHistory(w io.Writer, history *application.CriteriaHistory) {
	if len(history.Changes) == 0 {
		fmt.Fprintln(w, "No weight changes recorded.")
	} else {
		rows := make([][]string, 0, len(history.Changes))
		for _, c := range history.Changes {
			before := "-"
			if c.Previous != nil {
				before = criteriaLine(*c.Previous)
			}
			rows = append(rows, []string{
				c.At.Local().Format("2006-01-02 15:04"),
				c.Actor,
				c.Type,
				before,
				criteriaLine(c.Criteria),
			})
		}
		t := ltable.New().
			Border(lipgloss.NormalBorder()).
			Headers("WHEN", "ACTOR", "EVENT", "BEFORE", "AFTER").
			Rows(rows...)
		fmt.Fprintln(w, t.String())
	}

	if history.Intact {
		fmt.Fprintln(w, "Audit log verified.")
		return
	}
	fmt.Fprintf(w, "Audit log has %d problem(s):\n", len(history.Violations))
	for _, v := range history.Violations {
		fmt.Fprintf(w, "  %s\n", v)
	}
}
