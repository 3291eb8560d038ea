package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/cleanhub/internal/core/domain"
)

// Theme is the colour palette for terminal tables.
type Theme struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() Theme {
	return Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Error:   lipgloss.Color("#F38BA8"), // Red
		Border:  lipgloss.Color("#45475A"), // Border gray
	}
}

// renderer prints tables, styled when writing to a terminal.
type renderer struct {
	out    io.Writer
	styled bool
	lg     *lipgloss.Renderer
	theme  Theme
}

func newRenderer(cmd *cobra.Command) *renderer {
	out := cmd.OutOrStdout()
	return &renderer{
		out:    out,
		styled: isTerminal(out),
		lg:     lipgloss.NewRenderer(out),
		theme:  DefaultTheme(),
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (r *renderer) table(headers []string, rows [][]string) string {
	cell := r.lg.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	t := table.New().
		Headers(headers...).
		Rows(rows...)

	if r.styled {
		header = header.Foreground(r.theme.Primary)
		t = t.Border(lipgloss.RoundedBorder()).
			BorderStyle(r.lg.NewStyle().Foreground(r.theme.Border))
	} else {
		t = t.BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderColumn(false).
			BorderHeader(false)
	}

	return t.StyleFunc(func(row, _ int) lipgloss.Style {
		if row == table.HeaderRow {
			return header
		}
		return cell
	}).String()
}

func (r *renderer) title(s string) string {
	if !r.styled {
		return s
	}
	return r.lg.NewStyle().Bold(true).Foreground(r.theme.Primary).Render(s)
}

func (r *renderer) status(s domain.RunStatus) string {
	if !r.styled {
		return string(s)
	}
	colour := r.theme.Success
	if s == domain.RunStatusFailed {
		colour = r.theme.Error
	}
	return r.lg.NewStyle().Foreground(colour).Render(string(s))
}

// metrics prints accuracy followed by a per-class report.
func (r *renderer) metrics(m *domain.Metrics) {
	fmt.Fprintln(r.out, r.title(fmt.Sprintf("Accuracy: %.4f", m.Accuracy)))
	fmt.Fprintln(r.out)

	labels := make([]string, 0, len(m.Report))
	for label := range m.Report {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	rows := make([][]string, 0, len(labels)+2)
	for _, label := range labels {
		rows = append(rows, metricsRow(label, m.Report[label]))
	}
	rows = append(rows,
		metricsRow("macro avg", m.MacroAvg),
		metricsRow("weighted avg", m.WeightedAvg),
	)

	fmt.Fprintln(r.out, r.table([]string{"class", "precision", "recall", "f1-score", "support"}, rows))
}

func metricsRow(label string, c domain.ClassMetrics) []string {
	return []string{
		label,
		fmt.Sprintf("%.2f", c.Precision),
		fmt.Sprintf("%.2f", c.Recall),
		fmt.Sprintf("%.2f", c.F1),
		fmt.Sprintf("%d", c.Support),
	}
}

// runs prints the run history.
func (r *renderer) runs(runs []domain.RunRecord) {
	rows := make([][]string, 0, len(runs))
	for i := range runs {
		run := &runs[i]
		rows = append(rows, []string{
			shortID(run.ID),
			run.Command,
			r.status(run.Status),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			formatDuration(run.Duration()),
			preview(run.Detail, 60),
		})
	}
	fmt.Fprintln(r.out, r.table([]string{"ID", "COMMAND", "STATUS", "STARTED", "DURATION", "DETAIL"}, rows))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	return d.Round(time.Millisecond).String()
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
