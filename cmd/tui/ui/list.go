package ui

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/billow-app/billow/cmd/tui/client"
	"github.com/billow-app/billow/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pageSize = 10

type invoicesLoadedMsg struct {
	page *client.InvoicePage
}

type invoicesErrorMsg struct {
	err error
}

type sessionExpiredMsg struct{}

type openDetailMsg struct {
	id string
}

type ListModel struct {
	page    *client.InvoicePage
	rows    []client.Invoice
	cursor  int
	pageNum int
	loading bool
	err     error
	api     *client.Client
	state   *ViewState
	loaded  bool
}

func NewListModel(state *ViewState) *ListModel {
	return &ListModel{state: state}
}

func (m *ListModel) SetClient(c *client.Client) {
	m.api = c
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func listInvoicesCmd(c *client.Client, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := c.ListInvoices("", page, pageSize)
		if err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return invoicesErrorMsg{err: err}
		}
		return invoicesLoadedMsg{page: result}
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// applyView filters and sorts the fetched page per the view state.
func (m *ListModel) applyView() {
	if m.page == nil {
		m.rows = nil
		return
	}

	rows := make([]client.Invoice, 0, len(m.page.Invoices))
	for _, inv := range m.page.Invoices {
		if m.state.Matches(inv.Status) {
			rows = append(rows, inv)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		var less bool
		switch m.state.SortBy {
		case SortByAmount:
			less = rows[i].Amount < rows[j].Amount
		case SortByDueDate:
			less = rows[i].DueDate < rows[j].DueDate
		default:
			less = rows[i].CreatedAt.Before(rows[j].CreatedAt)
		}
		if m.state.SortAscending {
			return less
		}
		return !less
	})

	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = 0
	}
}

func (m *ListModel) visibleIDs() []string {
	ids := make([]string, 0, len(m.rows))
	for _, inv := range m.rows {
		ids = append(ids, inv.ID)
	}
	return ids
}

func (m *ListModel) reload() tea.Cmd {
	m.loading = true
	m.err = nil
	return listInvoicesCmd(m.api, m.pageNum)
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case invoicesLoadedMsg:
		m.loading = false
		m.page = msg.page
		m.err = nil
		m.loaded = true
		m.applyView()
		return m, nil

	case invoicesErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case "left", "h":
			if m.pageNum > 0 {
				m.pageNum--
				m.cursor = 0
				return m, m.reload()
			}
		case "right", "l":
			if m.page != nil && m.pageNum < m.page.TotalPages-1 {
				m.pageNum++
				m.cursor = 0
				return m, m.reload()
			}
		case " ":
			if m.cursor < len(m.rows) {
				m.state.ToggleSelect(m.rows[m.cursor].ID)
			}
		case "a":
			m.state.SelectAll(m.visibleIDs())
		case "c":
			m.state.ClearSelection()
		case "f":
			m.state.CycleFilter()
			m.applyView()
		case "s":
			m.state.CycleSortBy()
			m.applyView()
		case "d":
			m.state.ToggleSortDirection()
			m.applyView()
		case "enter":
			if m.cursor < len(m.rows) {
				id := m.rows[m.cursor].ID
				return m, func() tea.Msg { return openDetailMsg{id: id} }
			}
		case "r":
			if !m.loading {
				m.api.Invalidate("invoices")
				return m, m.reload()
			}
		}
	}

	if !m.loaded && !m.loading && m.api != nil {
		return m, m.reload()
	}

	return m, nil
}

func statusStyle(status models.Status) lipgloss.Style {
	switch status {
	case models.StatusPaid:
		return PaidStyle
	case models.StatusOverdue:
		return OverdueStyle
	default:
		return PendingStyle
	}
}

func (m *ListModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("YOUR INVOICES")
	b.WriteString(lipgloss.NewStyle().
		Width(100).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(1).
		Render(header))
	b.WriteString("\n")

	filterLine := InfoStyle.Render(fmt.Sprintf("filter: %s  •  sort: %s %s  •  selected: %d",
		m.state.Filter, m.state.SortBy, directionLabel(m.state.SortAscending), m.state.SelectedCount()))
	b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(filterLine))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		loading := lipgloss.NewStyle().
			Foreground(Accent).
			Render("⏳ Loading invoices...")
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).MarginTop(2).Render(loading))
		b.WriteString("\n")
	case m.err != nil:
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).MarginTop(2).Render(errMsg))
		b.WriteString("\n")
	case len(m.rows) == 0:
		empty := lipgloss.NewStyle().
			Foreground(Muted).
			Render("📝 No invoices match. Create one or change the filter.")
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).MarginTop(2).Render(empty))
		b.WriteString("\n")
	default:
		headerStyle := lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Padding(0, 1)

		tableHeader := lipgloss.JoinHorizontal(lipgloss.Left,
			headerStyle.Width(4).Render(""),
			headerStyle.Width(26).Render("Client"),
			headerStyle.Width(12).Render("Amount"),
			headerStyle.Width(13).Render("Due"),
			headerStyle.Width(10).Render("Status"),
			headerStyle.Width(28).Render("Description"),
		)
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(tableHeader))
		b.WriteString("\n")

		separator := lipgloss.NewStyle().
			Foreground(Muted).
			Render(strings.Repeat("─", 92))
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(separator))
		b.WriteString("\n")

		for i, inv := range m.rows {
			rowStyle := lipgloss.NewStyle().Padding(0, 1)
			if i == m.cursor {
				rowStyle = rowStyle.Foreground(Accent).Bold(true)
			} else {
				rowStyle = rowStyle.Foreground(Text)
			}

			mark := " "
			if m.state.IsSelected(inv.ID) {
				mark = "✓"
			}

			row := lipgloss.JoinHorizontal(lipgloss.Left,
				rowStyle.Width(4).Render(mark),
				rowStyle.Width(26).Render(truncate(inv.ClientName, 24)),
				rowStyle.Width(12).Render(fmt.Sprintf("$%.2f", inv.Amount)),
				rowStyle.Width(13).Render(inv.DueDate),
				statusStyle(inv.Status).Padding(0, 1).Width(10).Render(string(inv.Status)),
				rowStyle.Width(28).Render(truncate(inv.Description, 26)),
			)
			b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(row))
			b.WriteString("\n")
		}

		if m.page != nil {
			b.WriteString("\n")
			pagination := InfoStyle.Render(fmt.Sprintf("Page %d/%d  •  %d invoices total",
				m.pageNum+1, max(m.page.TotalPages, 1), m.page.Total))
			b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(pagination))
		}
	}

	b.WriteString("\n\n")
	help := InfoStyle.Render("↑/↓ move  •  ←/→ page  •  space select  •  a all  •  c clear  •  f filter  •  s sort  •  d direction  •  enter open  •  r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(100).Render(b.String())
}

func directionLabel(ascending bool) string {
	if ascending {
		return "asc"
	}
	return "desc"
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
