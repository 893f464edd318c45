package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/billow-app/billow/cmd/tui/client"
	"github.com/billow-app/billow/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardLoadedMsg struct {
	page *client.InvoicePage
}

type dashboardErrorMsg struct {
	err error
}

type statusSummary struct {
	count int
	total float64
}

type DashboardModel struct {
	summaries map[models.Status]statusSummary
	total     int
	loading   bool
	err       error
	api       *client.Client
	loaded    bool
}

func NewDashboardModel() *DashboardModel {
	return &DashboardModel{}
}

func (m *DashboardModel) SetClient(c *client.Client) {
	m.api = c
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func loadDashboardCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		page, err := c.ListInvoices("", 0, 100)
		if err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return dashboardErrorMsg{err: err}
		}
		return dashboardLoadedMsg{page: page}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		m.loading = false
		m.err = nil
		m.loaded = true

		summaries := make(map[models.Status]statusSummary)
		for _, inv := range msg.page.Invoices {
			s := summaries[inv.Status]
			s.count++
			s.total += inv.Amount
			summaries[inv.Status] = s
		}
		m.summaries = summaries
		m.total = len(msg.page.Invoices)
		return m, nil

	case dashboardErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			m.err = nil
			m.api.Invalidate("invoices")
			return m, loadDashboardCmd(m.api)
		}
	}

	if !m.loaded && !m.loading && m.api != nil {
		m.loading = true
		return m, loadDashboardCmd(m.api)
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	icon := lipgloss.NewStyle().Foreground(Success).Render("📊")
	header := icon + " " + TitleStyle.Render("DASHBOARD") + " " + icon
	b.WriteString(lipgloss.NewStyle().
		Width(90).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		loading := lipgloss.NewStyle().
			Foreground(Accent).
			Render("⏳ Loading summary...")
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	case m.err != nil:
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	default:
		var cards []string
		for _, status := range []models.Status{models.StatusPaid, models.StatusPending, models.StatusOverdue} {
			s := m.summaries[status]

			title := statusStyle(status).Render(string(status))
			count := ValueStyle.Render(fmt.Sprintf("%d invoices", s.count))
			total := lipgloss.NewStyle().Foreground(Secondary).Bold(true).Render(fmt.Sprintf("$%.2f", s.total))

			card := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Muted).
				Padding(1, 3).
				Align(lipgloss.Center).
				Render(lipgloss.JoinVertical(lipgloss.Center, title, count, total))
			cards = append(cards, card)
		}

		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(row))
		b.WriteString("\n\n")

		totalLine := InfoStyle.Render(fmt.Sprintf("%d invoices in view", m.total))
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(totalLine))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(86).Render(b.String())
}
