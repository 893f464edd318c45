package ui

import (
	"github.com/billow-app/billow/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type View int

const (
	LoginView View = iota
	SignupView
	MenuView
	ListView
	CreateView
	DashboardView
	DetailView
)

type Model struct {
	currentView View
	login       *LoginModel
	signup      *SignupModel
	menu        *MenuModel
	list        *ListModel
	create      *CreateModel
	dashboard   *DashboardModel
	detail      *DetailModel
	api         *client.Client
	state       *ViewState
	width       int
	height      int

	isAuthenticated bool
	userName        string
	userEmail       string
	notice          string
}

func NewModel(api *client.Client, startAuthenticated bool, userName, userEmail string) Model {
	state := NewViewState()

	loginModel := NewLoginModel()
	loginModel.SetClient(api)

	signupModel := NewSignupModel()
	signupModel.SetClient(api)

	listModel := NewListModel(state)
	listModel.SetClient(api)

	createModel := NewCreateModel()
	createModel.SetClient(api)

	dashboardModel := NewDashboardModel()
	dashboardModel.SetClient(api)

	detailModel := NewDetailModel()
	detailModel.SetClient(api)

	currentView := LoginView
	if startAuthenticated {
		currentView = MenuView
	}

	return Model{
		currentView:     currentView,
		login:           loginModel,
		signup:          signupModel,
		menu:            NewMenuModel(),
		list:            listModel,
		create:          createModel,
		dashboard:       dashboardModel,
		detail:          detailModel,
		api:             api,
		state:           state,
		isAuthenticated: startAuthenticated,
		userName:        userName,
		userEmail:       userEmail,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) logout() Model {
	m.api.Logout()
	m.isAuthenticated = false
	m.userName = ""
	m.userEmail = ""
	m.state.ClearSelection()
	m.list.loading = false
	m.list.loaded = false
	m.dashboard.loading = false
	m.dashboard.loaded = false
	m.currentView = LoginView
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginSuccessMsg:
		m.isAuthenticated = true
		m.userName = msg.name
		m.userEmail = msg.email
		m.notice = ""
		m.currentView = MenuView
		return m, nil

	case signupSuccessMsg:
		m.isAuthenticated = true
		m.userName = msg.name
		m.userEmail = msg.email
		m.notice = ""
		m.currentView = MenuView
		return m, nil

	case sessionExpiredMsg:
		m = m.logout()
		m.notice = "Session expired, please log in again."
		return m, nil

	case openDetailMsg:
		m.currentView = DetailView
		return m, m.detail.Open(msg.id)

	case detailDeletedMsg:
		m.currentView = ListView
		m.list.loaded = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			switch m.currentView {
			case MenuView, LoginView, SignupView:
				return m, tea.Quit
			case DetailView:
				m.currentView = ListView
				return m, nil
			default:
				m.currentView = MenuView
				return m, nil
			}

		case "ctrl+s":
			if m.currentView == LoginView {
				m.currentView = SignupView
				return m, nil
			} else if m.currentView == SignupView {
				m.currentView = LoginView
				return m, nil
			}

		case "ctrl+m":
			if m.isAuthenticated {
				m.currentView = MenuView
				return m, nil
			}
		}
	}

	switch m.currentView {
	case LoginView:
		updated, cmd := m.login.Update(msg)
		m.login = updated.(*LoginModel)
		return m, cmd

	case SignupView:
		updated, cmd := m.signup.Update(msg)
		m.signup = updated.(*SignupModel)
		return m, cmd

	case MenuView:
		updated, cmd := m.menu.Update(msg)
		m.menu = updated.(*MenuModel)
		if m.menu.selected != -1 {
			switch m.menu.selected {
			case 0:
				m.currentView = ListView
				m.list.loaded = false
			case 1:
				m.currentView = CreateView
			case 2:
				m.currentView = DashboardView
				m.dashboard.loaded = false
			case 3:
				m = m.logout()
			}
			m.menu.selected = -1
		}
		return m, cmd

	case ListView:
		updated, cmd := m.list.Update(msg)
		m.list = updated.(*ListModel)
		return m, cmd

	case CreateView:
		updated, cmd := m.create.Update(msg)
		m.create = updated.(*CreateModel)
		return m, cmd

	case DashboardView:
		updated, cmd := m.dashboard.Update(msg)
		m.dashboard = updated.(*DashboardModel)
		return m, cmd

	case DetailView:
		updated, cmd := m.detail.Update(msg)
		m.detail = updated.(*DetailModel)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var statusBar string
	if m.isAuthenticated && m.currentView != LoginView && m.currentView != SignupView {
		userInfo := lipgloss.NewStyle().
			Foreground(Success).
			Render("👤 " + m.userName)

		emailInfo := lipgloss.NewStyle().
			Foreground(Muted).
			Render(" (" + m.userEmail + ")")

		statusBar = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Left).
			Background(BgDark).
			Padding(0, 2).
			Render(userInfo + emailInfo)
	}

	var notice string
	if m.notice != "" && (m.currentView == LoginView || m.currentView == SignupView) {
		notice = lipgloss.NewStyle().
			Width(80).
			Align(lipgloss.Center).
			Foreground(Warning).
			Render(m.notice)
	}

	var mainContent string
	switch m.currentView {
	case LoginView:
		mainContent = m.login.View()
	case SignupView:
		mainContent = m.signup.View()
	case MenuView:
		mainContent = m.menu.View()
	case ListView:
		mainContent = m.list.View()
	case CreateView:
		mainContent = m.create.View()
	case DashboardView:
		mainContent = m.dashboard.View()
	case DetailView:
		mainContent = m.detail.View()
	}

	sections := make([]string, 0, 3)
	if statusBar != "" {
		sections = append(sections, statusBar, "")
	}
	if notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, mainContent)

	if len(sections) == 1 {
		return mainContent
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
