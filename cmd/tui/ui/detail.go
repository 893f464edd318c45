package ui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/billow-app/billow/cmd/tui/client"
	"github.com/billow-app/billow/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type detailLoadedMsg struct {
	invoice *client.Invoice
}

type detailErrorMsg struct {
	err error
}

type detailUpdatedMsg struct {
	invoice *client.Invoice
}

type detailDeletedMsg struct{}

type pdfSavedMsg struct {
	path string
}

type DetailModel struct {
	id      string
	invoice *client.Invoice
	loading bool
	status  string
	err     error
	api     *client.Client
}

func NewDetailModel() *DetailModel {
	return &DetailModel{}
}

func (m *DetailModel) SetClient(c *client.Client) {
	m.api = c
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

// Open resets the model for a fresh invoice and kicks off the load.
func (m *DetailModel) Open(id string) tea.Cmd {
	m.id = id
	m.invoice = nil
	m.loading = true
	m.status = ""
	m.err = nil
	return loadDetailCmd(m.api, id)
}

func loadDetailCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		inv, err := c.GetInvoice(id)
		if err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return detailErrorMsg{err: err}
		}
		return detailLoadedMsg{invoice: inv}
	}
}

func togglePaidCmd(c *client.Client, id string, paid bool) tea.Cmd {
	return func() tea.Msg {
		inv, err := c.UpdateInvoice(id, &models.UpdateInvoiceRequest{Paid: &paid})
		if err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return detailErrorMsg{err: err}
		}
		return detailUpdatedMsg{invoice: inv}
	}
}

func deleteInvoiceCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		if err := c.DeleteInvoice(id); err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return detailErrorMsg{err: err}
		}
		return detailDeletedMsg{}
	}
}

func savePDFCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		data, err := c.DownloadInvoicePDF(id)
		if err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return detailErrorMsg{err: err}
		}

		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path := filepath.Join(home, fmt.Sprintf("invoice-%s.pdf", id))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return detailErrorMsg{err: err}
		}
		return pdfSavedMsg{path: path}
	}
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		m.loading = false
		m.invoice = msg.invoice
		m.err = nil
		return m, nil

	case detailUpdatedMsg:
		m.loading = false
		m.invoice = msg.invoice
		m.status = "Invoice updated."
		m.err = nil
		return m, nil

	case pdfSavedMsg:
		m.loading = false
		m.status = "PDF saved to " + msg.path
		m.err = nil
		return m, nil

	case detailErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading || m.invoice == nil {
			return m, nil
		}

		switch msg.String() {
		case "p":
			m.loading = true
			m.status = ""
			return m, togglePaidCmd(m.api, m.id, !m.invoice.Paid)
		case "x":
			m.loading = true
			m.status = ""
			return m, deleteInvoiceCmd(m.api, m.id)
		case "s":
			m.loading = true
			m.status = ""
			return m, savePDFCmd(m.api, m.id)
		}
	}
	return m, nil
}

func (m *DetailModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("INVOICE DETAIL")
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
			Render("⏳ Working...")
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	case m.err != nil:
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	case m.invoice != nil:
		inv := m.invoice
		rows := []struct {
			label string
			value string
		}{
			{"Client", inv.ClientName},
			{"Amount", fmt.Sprintf("$%.2f", inv.Amount)},
			{"Due date", inv.DueDate},
			{"Description", inv.Description},
			{"Created", inv.CreatedAt.Format("2006-01-02")},
		}

		var lines []string
		for _, row := range rows {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
				LabelStyle.Render(row.label+":"),
				ValueStyle.Render(row.value),
			))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left,
			LabelStyle.Render("Status:"),
			statusStyle(inv.Status).Render(string(inv.Status)),
		))

		card := BoxStyle.Width(70).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(card))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(SuccessStyle.Render("✓ " + m.status)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("p toggle paid  •  s save PDF  •  x delete  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(90).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(86).Render(b.String())
}
