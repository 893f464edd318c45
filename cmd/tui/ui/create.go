package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/billow-app/billow/cmd/tui/client"
	"github.com/billow-app/billow/internal/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type createSuccessMsg struct {
	invoice *client.Invoice
}

type createErrorMsg struct {
	err error
}

type CreateModel struct {
	clientInput      string
	amountInput      string
	dueDateInput     string
	descriptionInput string
	focusedInput     int
	loading          bool
	created          *client.Invoice
	err              error
	api              *client.Client
}

func NewCreateModel() *CreateModel {
	return &CreateModel{}
}

func (m *CreateModel) SetClient(c *client.Client) {
	m.api = c
}

func (m *CreateModel) Init() tea.Cmd {
	return nil
}

func (m *CreateModel) validate() error {
	if m.clientInput == "" {
		return fmt.Errorf("client name cannot be empty")
	}
	amount, err := strconv.ParseFloat(m.amountInput, 64)
	if err != nil {
		return fmt.Errorf("amount must be a number")
	}
	if amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if _, err := time.Parse("2006-01-02", m.dueDateInput); err != nil {
		return fmt.Errorf("due date must be YYYY-MM-DD")
	}
	if m.descriptionInput == "" {
		return fmt.Errorf("description cannot be empty")
	}
	return nil
}

func createInvoiceCmd(c *client.Client, req *models.CreateInvoiceRequest) tea.Cmd {
	return func() tea.Msg {
		inv, err := c.CreateInvoice(req)
		if err != nil {
			if errors.Is(err, client.ErrSessionExpired) {
				return sessionExpiredMsg{}
			}
			return createErrorMsg{err: err}
		}
		return createSuccessMsg{invoice: inv}
	}
}

func (m *CreateModel) input(i int) *string {
	switch i {
	case 0:
		return &m.clientInput
	case 1:
		return &m.amountInput
	case 2:
		return &m.dueDateInput
	default:
		return &m.descriptionInput
	}
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createSuccessMsg:
		m.loading = false
		m.created = msg.invoice
		m.err = nil
		return m, nil

	case createErrorMsg:
		m.loading = false
		m.err = msg.err
		m.created = nil
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab":
			m.focusedInput = (m.focusedInput + 1) % 4
		case "shift+tab":
			m.focusedInput = (m.focusedInput + 3) % 4
		case "enter":
			if err := m.validate(); err != nil {
				m.err = err
				return m, nil
			}

			if m.api != nil {
				amount, _ := strconv.ParseFloat(m.amountInput, 64)
				req := &models.CreateInvoiceRequest{
					VendorName:  m.clientInput,
					Amount:      amount,
					DueDate:     m.dueDateInput,
					Description: m.descriptionInput,
				}
				m.loading = true
				m.err = nil
				m.created = nil
				return m, createInvoiceCmd(m.api, req)
			}
			m.err = fmt.Errorf("client not connected")
		case "backspace":
			field := m.input(m.focusedInput)
			if len(*field) > 0 {
				*field = (*field)[:len(*field)-1]
			}
		case "ctrl+l":
			m.clientInput = ""
			m.amountInput = ""
			m.dueDateInput = ""
			m.descriptionInput = ""
			m.created = nil
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				field := m.input(m.focusedInput)
				*field += msg.String()
			}
		}
	}
	return m, nil
}

func (m *CreateModel) View() string {
	var b strings.Builder

	icon := lipgloss.NewStyle().Foreground(Accent).Render("🧾")
	header := icon + " " + TitleStyle.Render("NEW INVOICE") + " " + icon
	b.WriteString(lipgloss.NewStyle().
		Width(100).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
		hint  string
	}{
		{"Client:", m.clientInput, ""},
		{"Amount:", m.amountInput, " (e.g. 149.99)"},
		{"Due date:", m.dueDateInput, " (YYYY-MM-DD)"},
		{"Description:", m.descriptionInput, ""},
	}

	for i, f := range fields {
		label := LabelStyle.Render(f.label)
		style := InputStyle
		if m.focusedInput == i {
			style = FocusedInputStyle
		}
		value := style.Width(50).Render(f.value)
		hint := InfoStyle.Render(f.hint)
		field := lipgloss.JoinHorizontal(lipgloss.Left, label, value, hint)
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(field))
		b.WriteString("\n\n")
	}

	if m.loading {
		loading := InfoStyle.Render("Creating invoice...")
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	}

	if m.created != nil {
		label := SuccessStyle.Render("✓ Invoice created for " + m.created.ClientName)
		detail := InfoStyle.Render(fmt.Sprintf("$%.2f due %s", m.created.Amount, m.created.DueDate))
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(label + "\n" + detail))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		errMsg := ErrorStyle.Render("Error: " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	}

	help := InfoStyle.Render("tab switch  •  enter submit  •  ctrl+l clear  •  q back")
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(100).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(96).Render(b.String())
}
