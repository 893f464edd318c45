package ui

import (
	"fmt"
	"strings"

	"github.com/billow-app/billow/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type signupSuccessMsg struct {
	userID string
	email  string
	name   string
}

type signupErrorMsg struct {
	err error
}

type SignupModel struct {
	nameInput     string
	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
	api           *client.Client
}

func NewSignupModel() *SignupModel {
	return &SignupModel{
		focusedInput: 0,
	}
}

func (m *SignupModel) SetClient(c *client.Client) {
	m.api = c
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

func signupCmd(c *client.Client, email, name, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := c.Register(email, name, password)
		if err != nil {
			return signupErrorMsg{err: err}
		}

		return signupSuccessMsg{
			userID: session.User.ID,
			email:  session.User.Email,
			name:   session.User.Name,
		}
	}
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signupSuccessMsg:
		m.loading = false
		m.err = nil
		return m, nil

	case signupErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "enter":
			if m.nameInput == "" {
				m.err = fmt.Errorf("name cannot be empty")
				return m, nil
			}
			if m.emailInput == "" {
				m.err = fmt.Errorf("email cannot be empty")
				return m, nil
			}
			if len(m.passwordInput) < 8 {
				m.err = fmt.Errorf("password must be at least 8 characters")
				return m, nil
			}

			if m.api != nil {
				m.loading = true
				m.err = nil
				return m, signupCmd(m.api, m.emailInput, m.nameInput, m.passwordInput)
			}
			m.err = fmt.Errorf("client not connected")
		case "backspace":
			if m.focusedInput == 0 && len(m.nameInput) > 0 {
				m.nameInput = m.nameInput[:len(m.nameInput)-1]
			} else if m.focusedInput == 1 && len(m.emailInput) > 0 {
				m.emailInput = m.emailInput[:len(m.emailInput)-1]
			} else if m.focusedInput == 2 && len(m.passwordInput) > 0 {
				m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
			}
		case "ctrl+l":
			m.nameInput = ""
			m.emailInput = ""
			m.passwordInput = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				if m.focusedInput == 0 {
					m.nameInput += msg.String()
				} else if m.focusedInput == 1 {
					m.emailInput += msg.String()
				} else {
					m.passwordInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Success).
		Bold(true).
		Render("✨ SIGN UP")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Create an account to start tracking invoices.")

	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginBottom(3).
		Render(subtitle))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
		mask  bool
	}{
		{"Name:", m.nameInput, false},
		{"Email:", m.emailInput, false},
		{"Password:", m.passwordInput, true},
	}

	for i, f := range fields {
		label := LabelStyle.Width(15).Render(f.label)
		style := InputStyle
		if m.focusedInput == i {
			style = FocusedInputStyle
		}
		value := f.value
		if f.mask {
			value = strings.Repeat("•", len(value))
		}
		field := lipgloss.JoinHorizontal(lipgloss.Left, label, style.Width(50).Render(value))
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(field))
		b.WriteString("\n\n")
	}

	passHint := InfoStyle.Render("(password: min 8 characters)")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(passHint))
	b.WriteString("\n\n")

	if m.loading {
		loading := InfoStyle.Render("🔄 Creating account...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	}

	if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter signup  •  ctrl+l clear  •  ctrl+s login  •  q quit")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}
